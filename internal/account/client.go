package account

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"

	"pickaxe/internal/crypto"
	"pickaxe/internal/domain"
)

// DefaultBaseURL is the production account service endpoint.
const DefaultBaseURL = "https://api.pickaxe.dev"

// Machine-auth request headers. The signature covers the request method,
// path, timestamp and a SHA-256 digest of the body.
const (
	headerDeviceID  = "X-Pickaxe-Device-Id"
	headerPubKey    = "X-Machine-Auth-Pubkey"
	headerTimestamp = "X-Machine-Auth-Timestamp"
	headerSignature = "X-Machine-Auth-Signature"
)

const requestTimeout = 30 * time.Second

// HTTPClient talks JSON over HTTP to the account service, signing every
// request with the machine identity.
type HTTPClient struct {
	Base string
	HTTP *http.Client
	Auth domain.MachineIdentity

	// MaxRetries bounds transport-level retries per call.
	MaxRetries uint64
}

// NewHTTP returns a client for the service at base, authenticated as auth.
func NewHTTP(base string, auth domain.MachineIdentity) *HTTPClient {
	return &HTTPClient{
		Base:       base,
		HTTP:       &http.Client{Timeout: requestTimeout},
		Auth:       auth,
		MaxRetries: 3,
	}
}

var _ domain.AccountClient = (*HTTPClient)(nil)

type accountInfoResponse struct {
	Usernames []string `json:"usernames"`
}

// AccountInfo fetches the usernames bound to this machine identity, in
// the order the service reports them.
func (c *HTTPClient) AccountInfo(ctx context.Context) (domain.AccountSet, error) {
	var out accountInfoResponse
	q := url.Values{"public_key": {crypto.B64(c.Auth.PublicKeyFingerprint())}}
	if err := c.do(ctx, http.MethodGet, "/accounts?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return domain.AccountSet(out.Usernames), nil
}

// CreateAccount registers username for this device/wallet pair.
func (c *HTTPClient) CreateAccount(ctx context.Context, username string) error {
	in := struct {
		Username  string `json:"username"`
		DeviceID  string `json:"device_id"`
		PublicKey string `json:"public_key"`
	}{
		Username:  username,
		DeviceID:  c.Auth.DeviceID,
		PublicKey: crypto.B64(c.Auth.PublicKeyFingerprint()),
	}
	return c.do(ctx, http.MethodPost, "/accounts", in, nil)
}

// Login authenticates username with password.
func (c *HTTPClient) Login(ctx context.Context, username, password string) error {
	in := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}
	return c.do(ctx, http.MethodPost, "/login", in, nil)
}

// UpdatePassword sets a new password for username.
func (c *HTTPClient) UpdatePassword(ctx context.Context, username, newPassword string) error {
	in := struct {
		Password string `json:"password"`
	}{Password: newPassword}
	return c.do(ctx, http.MethodPost, "/accounts/"+url.PathEscape(username)+"/password", in, nil)
}

// do runs one signed JSON request with retries. Transport failures and
// 5xx answers are retried with exponential backoff and surface as the
// typed provider errors; 4xx answers are permanent.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		var err error
		if body, err = json.Marshal(in); err != nil {
			return err
		}
	}

	attempt := func() error {
		req, err := http.NewRequestWithContext(ctx, method, c.Base+path, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		if in != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		c.sign(req, method, path, body)

		resp, err := c.HTTP.Do(req)
		if err != nil {
			log.Debugf("account service %s %s: %v", method, path, err)
			return fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode/100 == 2:
			if out != nil {
				if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
					return backoff.Permanent(fmt.Errorf("%w: decode %s: %v", domain.ErrProviderError, path, err))
				}
			}
			return nil
		case resp.StatusCode/100 == 5:
			return fmt.Errorf("%w: %s %s: %s", domain.ErrProviderError, method, path, resp.Status)
		default:
			return backoff.Permanent(fmt.Errorf("account service %s %s: %s", method, path, resp.Status))
		}
	}

	var bo backoff.BackOff
	if c.MaxRetries == 0 {
		bo = &backoff.StopBackOff{}
	} else {
		bo = backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.MaxRetries)
	}
	return backoff.Retry(attempt, backoff.WithContext(bo, ctx))
}

// sign attaches the machine-auth headers to req.
func (c *HTTPClient) sign(req *http.Request, method, path string, body []byte) {
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	digest := sha256.Sum256(body)
	msg := method + "\n" + path + "\n" + ts + "\n" + hex.EncodeToString(digest[:])

	req.Header.Set(headerDeviceID, c.Auth.DeviceID)
	req.Header.Set(headerPubKey, crypto.B64(c.Auth.PublicKeyFingerprint()))
	req.Header.Set(headerTimestamp, ts)
	req.Header.Set(headerSignature, crypto.B64(c.Auth.Sign([]byte(msg))))
}

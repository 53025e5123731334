package account_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"pickaxe/internal/account"
	"pickaxe/internal/crypto"
	"pickaxe/internal/domain"
)

func newIdentity(t *testing.T) domain.MachineIdentity {
	t.Helper()
	id, err := crypto.NewMachineIdentity()
	require.NoError(t, err)
	return id
}

func TestAccountInfo_ParsesUsernamesInOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/accounts", r.URL.Path)
		require.NotEmpty(t, r.URL.Query().Get("public_key"))
		_ = json.NewEncoder(w).Encode(map[string][]string{
			"usernames": {"alice", "bob", "carol"},
		})
	}))
	defer srv.Close()

	c := account.NewHTTP(srv.URL, newIdentity(t))
	set, err := c.AccountInfo(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.AccountSet{"alice", "bob", "carol"}, set)
}

func TestRequestsAreSigned(t *testing.T) {
	id := newIdentity(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		require.Equal(t, id.DeviceID, r.Header.Get("X-Pickaxe-Device-Id"))
		require.Equal(t, crypto.B64(id.PublicKeyFingerprint()), r.Header.Get("X-Machine-Auth-Pubkey"))

		ts := r.Header.Get("X-Machine-Auth-Timestamp")
		require.NotEmpty(t, ts)

		digest := sha256.Sum256(body)
		msg := r.Method + "\n" + r.URL.RequestURI() + "\n" + ts + "\n" + hex.EncodeToString(digest[:])
		sig, err := crypto.FromB64(r.Header.Get("X-Machine-Auth-Signature"))
		require.NoError(t, err)
		require.True(t, crypto.Verify(id.Pub, []byte(msg), sig))

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := account.NewHTTP(srv.URL, id)
	require.NoError(t, c.CreateAccount(context.Background(), "alice"))
}

func TestServerError_IsTyped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := account.NewHTTP(srv.URL, newIdentity(t))
	c.MaxRetries = 0

	_, err := c.AccountInfo(context.Background())
	require.ErrorIs(t, err, domain.ErrProviderError)
}

func TestUnreachable_IsTyped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := account.NewHTTP(srv.URL, newIdentity(t))
	c.MaxRetries = 0

	_, err := c.AccountInfo(context.Background())
	require.ErrorIs(t, err, domain.ErrProviderUnavailable)
}

func TestClientError_IsPermanentAndUntyped(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c := account.NewHTTP(srv.URL, newIdentity(t))

	err := c.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrProviderError)
	require.NotErrorIs(t, err, domain.ErrProviderUnavailable)
	require.Equal(t, 1, calls, "4xx answers must not be retried")
}

func TestUpdatePassword_Path(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/accounts/alice/password", r.URL.Path)
		var in struct {
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Equal(t, "s3cret", in.Password)
	}))
	defer srv.Close()

	c := account.NewHTTP(srv.URL, newIdentity(t))
	require.NoError(t, c.UpdatePassword(context.Background(), "alice", "s3cret"))
}

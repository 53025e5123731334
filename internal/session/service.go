package session

import (
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"pickaxe/internal/config"
	"pickaxe/internal/crypto"
	"pickaxe/internal/domain"
	"pickaxe/internal/ux"
)

// ClientFactory builds an account client authenticated as the given
// machine identity.
type ClientFactory func(domain.MachineIdentity) domain.AccountClient

// Deps carries the collaborators the service is wired with.
type Deps struct {
	Wallet    domain.WalletStore
	Config    *config.Store
	Prompt    domain.Prompter
	Out       io.Writer
	NewClient ClientFactory

	// Bootstrap runs the wallet-and-account creation flow. The service
	// triggers it when no wallet file exists or the account set is empty
	// and does not re-enter login afterwards; the user retries on the
	// next invocation.
	Bootstrap func(ctx context.Context) error

	// Passphrase decrypts the wallet file.
	Passphrase string
}

// Service resolves the active username and binds it as the session.
type Service struct {
	deps Deps

	// auth caches the resolved identity for the rest of the invocation.
	auth *domain.MachineIdentity
}

// New returns a Service over deps.
func New(deps Deps) *Service { return &Service{deps: deps} }

// ResolveMachineAuth returns the machine identity, loading it from the
// wallet file on first use. When no wallet exists it runs the bootstrap
// instead and reports ok=false: the caller stops without a session change.
func (s *Service) ResolveMachineAuth(ctx context.Context) (domain.MachineIdentity, bool, error) {
	if s.auth != nil {
		return *s.auth, true, nil
	}
	if !s.deps.Wallet.Exists() {
		log.Debug("no wallet file, starting onboarding")
		if err := s.deps.Bootstrap(ctx); err != nil {
			return domain.MachineIdentity{}, false, err
		}
		return domain.MachineIdentity{}, false, nil
	}
	id, err := s.deps.Wallet.LoadIdentity(s.deps.Passphrase)
	if err != nil {
		return domain.MachineIdentity{}, false, fmt.Errorf("load wallet: %w", err)
	}
	s.auth = &id
	return id, true, nil
}

// ResolveUsername determines the active username per the login flow:
// fetch the account set, then pick via explicit argument or interactive
// numbered selection, then bind. It returns the bound username and
// whether a session change happened; bootstrap paths report bound=false
// with no error.
func (s *Service) ResolveUsername(ctx context.Context, explicit string) (string, bool, error) {
	snap, err := s.deps.Config.Load()
	if err != nil {
		return "", false, err
	}
	if current, ok := snap.Username(); ok {
		fmt.Fprintln(s.deps.Out, ux.CurrentlyLoggedIn(current))
	}

	auth, ok, err := s.ResolveMachineAuth(ctx)
	if err != nil || !ok {
		return "", false, err
	}

	accounts, err := s.deps.NewClient(auth).AccountInfo(ctx)
	if err != nil {
		return "", false, err
	}
	if len(accounts) == 0 {
		log.Debug("no accounts bound to this wallet, starting onboarding")
		if err := s.deps.Bootstrap(ctx); err != nil {
			return "", false, err
		}
		return "", false, nil
	}

	username := explicit
	if explicit != "" {
		if !accounts.Contains(explicit) {
			return "", false, &domain.UserNotFoundError{Username: explicit}
		}
	} else {
		fmt.Fprintln(s.deps.Out, ux.RegisteredTitle())
		for i, u := range accounts {
			fmt.Fprintf(s.deps.Out, "%d- %s\n", i+1, u)
		}
		idx, err := s.deps.Prompt.Index(ux.PromptSelection, len(accounts))
		if err != nil {
			return "", false, err
		}
		username = accounts[idx-1]
	}

	if err := s.BindSession(auth, username); err != nil {
		return "", false, err
	}
	return username, true, nil
}

// BindSession persists username and the wallet's public key as the active
// session. Both keys go through one commit, so no reader ever observes
// one field updated without the other; repeating the call is a no-op.
func (s *Service) BindSession(id domain.MachineIdentity, username string) error {
	fmt.Fprintln(s.deps.Out, ux.LoggingIn(username))
	return s.deps.Config.Commit(
		config.Patch{Key: config.KeyUsername, Value: username},
		config.Patch{Key: config.KeyMiningAuthPubKey, Value: crypto.B64(id.PublicKeyFingerprint())},
	)
}

// SetPassword updates the account password for the bound username. With
// no username in the config it fails fast, before any network call; a
// cancelled prompt is a silent no-op.
func (s *Service) SetPassword(ctx context.Context) error {
	snap, err := s.deps.Config.Load()
	if err != nil {
		return err
	}
	username, ok := snap.Username()
	if !ok {
		return domain.ErrNoAccountConfigured
	}

	auth, ok, err := s.ResolveMachineAuth(ctx)
	if err != nil || !ok {
		return err
	}

	password, cancelled, err := s.promptNewPassword()
	if err != nil {
		return err
	}
	if cancelled {
		return nil
	}

	if err := s.deps.NewClient(auth).UpdatePassword(ctx, username, password); err != nil {
		return err
	}
	fmt.Fprintln(s.deps.Out, ux.PasswordUpdated)
	return nil
}

// LoginWithPassword authenticates username/password against the service
// and binds the session. Empty arguments are prompted for; a cancelled
// password prompt is a silent no-op.
func (s *Service) LoginWithPassword(ctx context.Context, username, password string) error {
	if username == "" {
		u, err := s.deps.Prompt.Line(ux.PromptUsername)
		if err != nil {
			return err
		}
		username = u
	}
	if password == "" {
		p, cancelled, err := s.deps.Prompt.Password(ux.PromptPassword)
		if err != nil {
			return err
		}
		if cancelled {
			return nil
		}
		password = p
	}

	auth, ok, err := s.ResolveMachineAuth(ctx)
	if err != nil || !ok {
		return err
	}
	if err := s.deps.NewClient(auth).Login(ctx, username, password); err != nil {
		return err
	}
	fmt.Fprintln(s.deps.Out, ux.LoginOK)
	return s.BindSession(auth, username)
}

// promptNewPassword asks for the new password twice until both entries
// match. Cancelling either prompt abandons the update.
func (s *Service) promptNewPassword() (string, bool, error) {
	for {
		first, cancelled, err := s.deps.Prompt.Password(ux.PromptNewPassword)
		if err != nil || cancelled {
			return "", cancelled, err
		}
		second, cancelled, err := s.deps.Prompt.Password(ux.PromptConfirmPassword)
		if err != nil || cancelled {
			return "", cancelled, err
		}
		if first == second {
			return first, false, nil
		}
		fmt.Fprintln(s.deps.Out, ux.PasswordMismatch)
	}
}

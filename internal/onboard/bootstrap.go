package onboard

import (
	"context"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"pickaxe/internal/crypto"
	"pickaxe/internal/domain"
	"pickaxe/internal/prompt"
	"pickaxe/internal/ux"
)

// Bootstrap creates a wallet when none exists and registers an account
// for it with the account service.
type Bootstrap struct {
	Wallet     domain.WalletStore
	Prompt     domain.Prompter
	Out        io.Writer
	NewClient  func(domain.MachineIdentity) domain.AccountClient
	Passphrase string
}

// Run performs the wallet-and-account creation flow once.
func (b *Bootstrap) Run(ctx context.Context) error {
	id, err := b.ensureWallet()
	if err != nil {
		return err
	}

	username, err := b.Prompt.Line(ux.PromptChooseUsername)
	if err != nil {
		if errors.Is(err, prompt.ErrInputClosed) {
			return domain.ErrUnauthenticated
		}
		return err
	}
	if username == "" {
		return domain.ErrUnauthenticated
	}

	if err := b.NewClient(id).CreateAccount(ctx, username); err != nil {
		switch {
		case errors.Is(err, domain.ErrProviderUnavailable):
			return &domain.CommandError{Message: ux.ErrorConnection, Err: err}
		case errors.Is(err, domain.ErrProviderError):
			return &domain.CommandError{Message: ux.ErrorServer, Err: err}
		default:
			return err
		}
	}

	fmt.Fprintln(b.Out, ux.AccountCreated)
	return nil
}

// ensureWallet loads the wallet, generating and saving a fresh identity
// when the file is absent.
func (b *Bootstrap) ensureWallet() (domain.MachineIdentity, error) {
	if b.Wallet.Exists() {
		return b.Wallet.LoadIdentity(b.Passphrase)
	}

	fmt.Fprintln(b.Out, ux.WalletCreating)
	id, err := crypto.NewMachineIdentity()
	if err != nil {
		return domain.MachineIdentity{}, err
	}
	if err := b.Wallet.SaveIdentity(b.Passphrase, id); err != nil {
		return domain.MachineIdentity{}, fmt.Errorf("save wallet: %w", err)
	}
	log.Debugf("created wallet, fingerprint %s", crypto.Fingerprint(id.PublicKeyFingerprint()))
	return id, nil
}

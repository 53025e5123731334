package domain

import "context"

// WalletStore persists the machine identity, encrypted under a passphrase.
type WalletStore interface {
	SaveIdentity(passphrase string, id MachineIdentity) error
	LoadIdentity(passphrase string) (MachineIdentity, error)

	// Exists reports whether a wallet file is present at all. Absence is
	// not an error; it is the branch into account creation.
	Exists() bool
}

// AccountClient is how we talk to the remote account service. Transport,
// retry policy and auth-header construction are the client's concern; the
// caller only supplies the MachineIdentity used to sign requests.
type AccountClient interface {
	// AccountInfo returns the usernames bound to the client's machine
	// identity, in service order.
	AccountInfo(ctx context.Context) (AccountSet, error)

	// CreateAccount registers a new username for the machine identity.
	CreateAccount(ctx context.Context, username string) error

	// Login authenticates a username with a password.
	Login(ctx context.Context, username, password string) error

	// UpdatePassword sets a new password for username.
	UpdatePassword(ctx context.Context, username, newPassword string) error
}

// Prompter blocks on interactive terminal input.
//
// Password reports cancellation as an explicit result rather than an
// error: a user abort during password entry is a valid outcome the caller
// branches on, not a failure.
type Prompter interface {
	// Line reads one line of input after printing label.
	Line(label string) (string, error)

	// Index prints label and reads an integer until it falls in [1, n],
	// re-prompting on anything else.
	Index(label string, n int) (int, error)

	// Password reads hidden input. cancelled is true when the user
	// aborted entry.
	Password(label string) (value string, cancelled bool, err error)
}

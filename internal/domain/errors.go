package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderUnavailable means the account service could not be
	// reached at all.
	ErrProviderUnavailable = errors.New("account service unreachable")

	// ErrProviderError means the account service was reached but answered
	// with a server-side failure.
	ErrProviderError = errors.New("account service error")

	// ErrNoAccountConfigured means an operation that needs a bound
	// username found none in the config.
	ErrNoAccountConfigured = errors.New("no account configured")

	// ErrWalletMissing means no wallet file exists at the configured path.
	ErrWalletMissing = errors.New("wallet file not found")

	// ErrUnauthenticated is the distinguished terminal error for an
	// aborted or failed account-creation bootstrap. Only main maps it to
	// a process exit code; nothing below the command layer exits.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// UserNotFoundError reports an explicitly requested username that is not
// among the accounts bound to this machine identity.
type UserNotFoundError struct {
	Username string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user %q does not exist or is not bound to this wallet", e.Username)
}

// CommandError carries a fixed user-facing message for failures that are
// rendered verbatim, without the underlying cause.
type CommandError struct {
	Message string
	Err     error
}

func (e *CommandError) Error() string { return e.Message }

func (e *CommandError) Unwrap() error { return e.Err }

// Package onboard creates the wallet and registers the first account.
//
// The login flow delegates here when no wallet file exists or when the
// service reports no usernames for the wallet. On success the user is told
// to run login again; the flow never re-enters login within the same
// invocation. Provider failures are re-raised with fixed user-facing
// messages, and an abandoned registration surfaces as
// domain.ErrUnauthenticated for main to turn into exit status 1.
package onboard

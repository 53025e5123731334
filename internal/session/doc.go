// Package session implements identity resolution and session binding.
//
// Given the machine identity from the local wallet, the service fetches
// the set of usernames the account service has bound to it, resolves
// exactly one of them (explicit argument, single candidate, or interactive
// numbered choice) and commits the result atomically to the config file as
// the active session. Every failure before the final commit leaves the
// previous session untouched.
package session

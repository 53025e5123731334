// Package commands defines the pickaxe CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - login    Resolve and bind the active account (plus --setpassword,
//     --switchuser/--accounts sub-modes)
//   - whoami   Print the active account and wallet fingerprint
//
// # Implementation
//
// The root command builds the dependency graph (config store, wallet
// store, prompter, account-client factory, onboarding, session service)
// before any subcommand runs. Only cmd/pickaxe/main.go decides process
// exit codes.
package commands

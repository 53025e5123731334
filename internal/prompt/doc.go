// Package prompt implements the interactive terminal prompts.
//
// The terminal prompter reads lines from an injected reader so the
// selection and entry loops are testable without a TTY; hidden password
// input switches to golang.org/x/term only when standard input really is a
// terminal. Cancellation of a password prompt (EOF, Ctrl-D) is reported as
// an explicit result, not an error.
package prompt

package ux

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	actionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

// Prompt labels.
const (
	PromptUsername        = "Username"
	PromptPassword        = "Password"
	PromptNewPassword     = "New password"
	PromptConfirmPassword = "Confirm password"
	PromptSelection       = "Please select the number associated with your username"
	PromptChooseUsername  = "Choose a username for your new account"
)

// Fixed messages.
const (
	NoAccountFound   = "No pickaxe account found. Run `pickaxe login` to create one."
	NotLoggedIn      = "Not logged in. Run `pickaxe login` first."
	ErrorConnection  = "could not connect to the pickaxe service, check your internet connection and try again"
	ErrorServer      = "the pickaxe service returned an error, please try again later"
	AccountCreated   = "Account created. Run `pickaxe login` to select it."
	PasswordUpdated  = "Password updated."
	PasswordMismatch = "Passwords do not match, try again."
	WalletCreating   = "No wallet found, creating one."
	RegisteredANames = "Usernames registered to this wallet:"
	LoginOK          = "Login successful."
)

// RegisteredTitle is the heading above the numbered account list.
func RegisteredTitle() string { return titleStyle.Render(RegisteredANames) }

// CurrentlyLoggedIn formats the already-active-session notice.
func CurrentlyLoggedIn(username string) string {
	return infoStyle.Render(fmt.Sprintf("Currently logged in as: %s", username))
}

// LoggingIn formats the session-switch notice.
func LoggingIn(username string) string {
	return actionStyle.Render(fmt.Sprintf("Logging in %s", username))
}

// InvalidSelection formats the bounded re-prompt for an out-of-range pick.
func InvalidSelection(lo, hi int) string {
	return fmt.Sprintf("Please enter a number between %d and %d.", lo, hi)
}

// UserDoesNotExist formats the unknown explicit-username message.
func UserDoesNotExist(username string) string {
	return fmt.Sprintf("Username %s does not exist on this wallet.", username)
}

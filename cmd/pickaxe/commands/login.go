package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pickaxe/internal/domain"
	"pickaxe/internal/ux"
)

func loginCmd() *cobra.Command {
	var (
		accounts    bool
		switchUser  string
		setPassword bool
		username    string
		password    string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to your pickaxe accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			switch {
			case setPassword:
				err := svc.SetPassword(ctx)
				if errors.Is(err, domain.ErrNoAccountConfigured) {
					fmt.Fprintln(cmd.OutOrStdout(), ux.NoAccountFound)
					return nil
				}
				return err
			case switchUser != "" || accounts:
				_, _, err := svc.ResolveUsername(ctx, switchUser)
				return err
			default:
				return svc.LoginWithPassword(ctx, username, password)
			}
		},
	}

	cmd.Flags().BoolVarP(&accounts, "accounts", "a", false, "list your pickaxe accounts and pick one")
	cmd.Flags().StringVar(&switchUser, "switchuser", "", "switch the active user")
	cmd.Flags().BoolVar(&setPassword, "setpassword", false, "set/update your pickaxe password")
	cmd.Flags().StringVarP(&username, "username", "u", "", "the username to log in with")
	cmd.Flags().StringVarP(&password, "password", "p", "", "the password to log in with")
	return cmd
}

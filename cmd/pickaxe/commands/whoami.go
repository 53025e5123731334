package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pickaxe/internal/crypto"
	"pickaxe/internal/ux"
)

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the active account and wallet fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := cfgStore.Load()
			if err != nil {
				return err
			}
			sess, ok := snap.Session()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), ux.NotLoggedIn)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), sess.Username)
			if raw, err := crypto.FromB64(sess.MachineAuthPubKey); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "wallet fingerprint: %s\n", crypto.Fingerprint(raw))
			}
			return nil
		},
	}
}

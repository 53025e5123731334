package commands

import (
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"pickaxe/internal/account"
	"pickaxe/internal/config"
	"pickaxe/internal/domain"
	"pickaxe/internal/onboard"
	"pickaxe/internal/prompt"
	"pickaxe/internal/session"
	"pickaxe/internal/wallet"
)

var (
	home       string
	passphrase string
	apiURL     string
	logLevel   string

	cfgStore *config.Store
	svc      *session.Service
)

func Execute() error {
	root := &cobra.Command{
		Use:           "pickaxe",
		Short:         "Command-line client for the pickaxe mining marketplace",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)

			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".pickaxe")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			cfgStore = config.NewStore(filepath.Join(home, config.Filename))
			ws := wallet.NewFileStore(filepath.Join(home, wallet.Filename))
			pr := prompt.New(cmd.InOrStdin(), out)
			newClient := func(id domain.MachineIdentity) domain.AccountClient {
				return account.NewHTTP(apiURL, id)
			}
			boot := &onboard.Bootstrap{
				Wallet:     ws,
				Prompt:     pr,
				Out:        out,
				NewClient:  newClient,
				Passphrase: passphrase,
			}
			svc = session.New(session.Deps{
				Wallet:     ws,
				Config:     cfgStore,
				Prompt:     pr,
				Out:        out,
				NewClient:  newClient,
				Bootstrap:  boot.Run,
				Passphrase: passphrase,
			})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.pickaxe)")
	root.PersistentFlags().StringVar(&passphrase, "passphrase", "", "passphrase protecting the wallet file")
	root.PersistentFlags().StringVar(&apiURL, "api", account.DefaultBaseURL, "account service base URL")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level (debug, info, warn, error)")

	root.AddCommand(loginCmd(), whoamiCmd())
	return root.Execute()
}

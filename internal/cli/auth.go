package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mkellner/spmirror/internal/auth"
	"github.com/mkellner/spmirror/internal/utils"
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage stored credentials",
}

var authSecretFlag string

var authSetSecretCmd = &cobra.Command{
	Use:   "set-secret",
	Short: "Store the app client secret in the system keyring",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cfg.Site.ClientID == "" {
			exitWithError("auth set-secret", utils.NewCLIError(utils.ErrCodeConfigInvalid,
				"site.client_id is required").Build())
		}

		secret := authSecretFlag
		if secret == "" {
			fmt.Fprint(os.Stderr, "Client secret: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				exitWithError("auth set-secret", utils.NewCLIError(utils.ErrCodeInvalidArgument,
					"failed to read secret from stdin").Build())
			}
			secret = strings.TrimSpace(line)
		}
		if secret == "" {
			exitWithError("auth set-secret", utils.NewCLIError(utils.ErrCodeInvalidArgument,
				"client secret must not be empty").Build())
		}

		if err := auth.StoreClientSecret(cfg.Site.ClientID, secret); err != nil {
			exitWithError("auth set-secret", utils.NewCLIError(utils.ErrCodeUnknown, err.Error()).Build())
		}
		fmt.Println("Client secret stored")
	},
}

var authClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored client secret",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cfg.Site.ClientID == "" {
			exitWithError("auth clear", utils.NewCLIError(utils.ErrCodeConfigInvalid,
				"site.client_id is required").Build())
		}
		if err := auth.DeleteClientSecret(cfg.Site.ClientID); err != nil {
			exitWithError("auth clear", utils.NewCLIError(utils.ErrCodeUnknown, err.Error()).Build())
		}
		fmt.Println("Client secret removed")
	},
}

func init() {
	authSetSecretCmd.Flags().StringVar(&authSecretFlag, "secret", "", "Client secret value (prompted when omitted)")

	authCmd.AddCommand(authSetSecretCmd)
	authCmd.AddCommand(authClearCmd)
	rootCmd.AddCommand(authCmd)
}

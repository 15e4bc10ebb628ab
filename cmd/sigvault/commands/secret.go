package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sigvault/internal/crypto"
)

func secretCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "secret",
		Short: "Print a fresh random master secret",
		Long: "Prints 32 random bytes in base64. Store the value in vault.master_secret, " +
			"SIGVAULT_MASTER_SECRET or the file named by vault.master_secret_file. " +
			"Keys sealed under one secret cannot be opened with another.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := crypto.GenerateMasterSecret()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

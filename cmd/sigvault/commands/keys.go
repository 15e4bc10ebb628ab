package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sigvault/internal/app"
	"sigvault/internal/domain"
)

func keysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage key pairs",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "generate [nif]",
		Short: "Issue the key pair of an identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nif := domain.NIF(args[0])
			return withApp(func(a *app.App) error {
				fp, err := a.Gateway.GenerateKeys(cmd.Context(), nif)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Keys generated for user: %s\n", nif.Normalize())
				if fp != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
				}
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show [nif]",
		Short: "Print the public key of an identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				info, err := a.Gateway.PublicKey(cmd.Context(), domain.NIF(args[0]))
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "NIF:         %s\n", info.NIF)
				fmt.Fprintf(out, "Fingerprint: %s\n", info.Fingerprint)
				fmt.Fprintf(out, "Created:     %s\n", info.CreatedAt.Format(time.RFC3339))
				fmt.Fprintf(out, "Public key:  %s\n", info.PublicKey)
				return nil
			})
		},
	})
	return cmd
}

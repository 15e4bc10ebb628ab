package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sigvault/internal/app"
	"sigvault/internal/crypto"
	"sigvault/internal/domain"
)

func verifyCmd() *cobra.Command {
	var file, text, signature string
	cmd := &cobra.Command{
		Use:   "verify [nif]",
		Short: "Verify a base64 signature and print true or false",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := crypto.FromB64(signature)
			if err != nil {
				return fmt.Errorf("--signature: %w", err)
			}
			doc, err := readDocument(cmd, file, text)
			if err != nil {
				return err
			}
			return withApp(func(a *app.App) error {
				ok, err := a.Gateway.Verify(cmd.Context(), domain.NIF(args[0]), doc, sig)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ok)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&signature, "signature", "", "base64 signature")
	cmd.Flags().StringVar(&file, "file", "", "document file (\"-\" for stdin)")
	cmd.Flags().StringVar(&text, "text", "", "document given inline")
	_ = cmd.MarkFlagRequired("signature")
	return cmd
}

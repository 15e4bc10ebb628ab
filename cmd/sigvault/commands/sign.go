package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sigvault/internal/app"
	"sigvault/internal/crypto"
	"sigvault/internal/domain"
)

func signCmd() *cobra.Command {
	var file, text string
	cmd := &cobra.Command{
		Use:   "sign [nif]",
		Short: "Sign a document and print the base64 signature",
		Long:  "Signs --text, or the contents of --file, or standard input.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, file, text)
			if err != nil {
				return err
			}
			return withApp(func(a *app.App) error {
				sig, err := a.Gateway.Sign(cmd.Context(), domain.NIF(args[0]), doc)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), crypto.B64(sig))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "document file (\"-\" for stdin)")
	cmd.Flags().StringVar(&text, "text", "", "document given inline")
	return cmd
}

// readDocument returns text when set, else the file contents, else stdin.
func readDocument(cmd *cobra.Command, file, text string) ([]byte, error) {
	switch {
	case text != "" && file != "":
		return nil, fmt.Errorf("use either --text or --file, not both")
	case text != "":
		return []byte(text), nil
	case file != "" && file != "-":
		return os.ReadFile(file)
	default:
		return io.ReadAll(cmd.InOrStdin())
	}
}

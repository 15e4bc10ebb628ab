package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sigvault/internal/app"
	"sigvault/internal/domain"
)

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage identities",
	}
	cmd.AddCommand(userCreateCmd(), userShowCmd(), userDeleteCmd())
	return cmd
}

func userCreateCmd() *cobra.Command {
	var first, last string
	cmd := &cobra.Command{
		Use:   "create [nif]",
		Short: "Register an identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				in := domain.NewIdentity{FirstName: first, LastName: last, NIF: domain.NIF(args[0])}
				if err := a.Gateway.CreateIdentity(cmd.Context(), in); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created user %s\n", domain.NIF(args[0]).Normalize())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&first, "first-name", "", "first name")
	cmd.Flags().StringVar(&last, "last-name", "", "last name")
	return cmd
}

func userShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [nif]",
		Short: "Print an identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				id, err := a.Gateway.LookupIdentity(cmd.Context(), domain.NIF(args[0]))
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "NIF:        %s\n", id.NIF)
				fmt.Fprintf(out, "Name:       %s %s\n", id.FirstName, id.LastName)
				fmt.Fprintf(out, "ID:         %s\n", id.ID)
				fmt.Fprintf(out, "Registered: %s\n", id.CreatedAt.Format("2006-01-02 15:04:05 MST"))
				return nil
			})
		},
	}
}

func userDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [nif]",
		Short: "Remove an identity and its key pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(a *app.App) error {
				if err := a.Gateway.DeleteIdentity(cmd.Context(), domain.NIF(args[0])); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted user %s\n", domain.NIF(args[0]).Normalize())
				return nil
			})
		},
	}
}

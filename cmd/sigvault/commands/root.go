package commands

import (
	"github.com/spf13/cobra"

	"sigvault/internal/app"
)

var (
	cfgPath   string
	serverURL string
	logLevel  string

	cfg app.Config
)

func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "sigvault",
		Short:        "RSA key custody and document signing",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = app.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			if serverURL != "" {
				cfg.Server = serverURL
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			return app.SetupLogging(cfg.LogLevel)
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.sigvault/config.yaml)")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "sigvault server base URL (e.g. http://127.0.0.1:8080); local when empty")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(serveCmd(), userCmd(), keysCmd(), signCmd(), verifyCmd(), secretCmd())
	return root
}

// withApp opens the app for the duration of fn.
func withApp(fn func(a *app.App) error) error {
	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

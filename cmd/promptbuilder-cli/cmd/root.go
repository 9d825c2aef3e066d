package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"promptbuilder/internal/adapters/sqlite"
	"promptbuilder/internal/application"
	"promptbuilder/internal/bootstrap"
	"promptbuilder/internal/config"
	"promptbuilder/internal/debug"
)

var (
	configPath string
	dataDir    string
	verbose    bool
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "promptbuilder-cli",
	Short: "CLI for browsing prompt tags",
	Long: `promptbuilder-cli browses the tag categories used by the prompt builder
and assembles prompts from them.

Paths name a category and its subgroups joined by '>', for example
"Jobs>Fantasy". Quote them in the shell.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		if verbose {
			debug.SetEnabled(true)
		}

		var err error
		cfg, err = config.LoadFrom(configPath)
		if err != nil {
			return err
		}
		if dataDir != "" {
			cfg.DataDir = dataDir
			cfg.DataURL = ""
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.ConfigPath(), "path to the config file")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", "", "directory holding the category files (overrides the config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logging")
}

// loadWidget fetches the category data into a fresh widget
func loadWidget(ctx context.Context) (*application.Widget, error) {
	widget := application.NewWidget(bootstrap.Source(cfg))
	if err := widget.Load(ctx); err != nil {
		return nil, err
	}
	return widget, nil
}

// openStore opens the settings database
func openStore() (*sqlite.Store, error) {
	return sqlite.Open(cfg.DatabasePath)
}

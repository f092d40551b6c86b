// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lcampos/quill/internal/api"
	"github.com/lcampos/quill/internal/config"
	"github.com/lcampos/quill/internal/ui"
)

var (
	// Global flags
	configPathFlag string

	// Resolved values
	cfg    *config.Config
	client *api.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "Quill - a workspace client for your terminal",
	Long: `Quill is a command-line client for your hosted workspace: pages,
databases, blocks, users and comments, driven from the shell.

Filters can be written three ways: explicit flags, compact where-clauses
("Status=Done,Priority!=Low"), or plain language ("overdue urgent tasks").
Quill resolves them against the live database schema before querying.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadGlobalConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg == nil {
			cfg = &config.Config{}
		}
		ui.ConfigureTheme(cfg.UI.Accent)

		// Commands that never touch the service don't need a token.
		if !commandNeedsClient(cmd) {
			return nil
		}

		token := cfg.ResolveToken()
		if token == "" {
			return fmt.Errorf(`no API token configured

Either:
  1. Set the %s environment variable
  2. Run 'quill config set-token <token>'
  3. Add token = "..." to %s`, config.EnvToken, config.DefaultPath())
		}

		client = api.New(api.Options{
			BaseURL: cfg.BaseURL,
			Token:   token,
		})
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

func commandNeedsClient(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "config", "completion", "help", "version", "docs":
		return false
	}
	if cmd.Parent() != nil {
		switch cmd.Parent().Name() {
		case "config", "completion", "help":
			return false
		}
	}
	return true
}

// getClient returns the API client built in PersistentPreRunE.
func getClient() *api.Client {
	return client
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	return cfg
}

func loadGlobalConfig() (*config.Config, error) {
	if strings.TrimSpace(configPathFlag) != "" {
		return config.LoadFrom(configPathFlag)
	}
	return config.Load()
}

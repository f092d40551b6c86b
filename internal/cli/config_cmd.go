package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lcampos/quill/internal/config"
	"github.com/lcampos/quill/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage quill configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefault()
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]any{"path": path}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Created %s", path))
		fmt.Println(ui.Hint("Edit it to add your token and databases, or run 'quill config set-token'"))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadGlobalConfig()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}

		tokenState := "not set"
		if loaded.Token != "" {
			tokenState = "set (config)"
		}
		if os.Getenv(config.EnvToken) != "" {
			tokenState = "set (" + config.EnvToken + ")"
		}

		if isJSONOutput() {
			outputSuccess(map[string]any{
				"config_path":      config.DefaultPath(),
				"token":            tokenState,
				"base_url":         loaded.BaseURL,
				"default_database": loaded.DefaultDatabase,
				"databases":        loaded.Databases,
				"ui": map[string]any{
					"accent": loaded.UI.Accent,
				},
			}, nil)
			return nil
		}

		fmt.Println(ui.Header("Configuration"))
		fmt.Printf("path:             %s\n", config.DefaultPath())
		fmt.Printf("token:            %s\n", tokenState)
		if loaded.BaseURL != "" {
			fmt.Printf("base_url:         %s\n", loaded.BaseURL)
		}
		if loaded.DefaultDatabase != "" {
			fmt.Printf("default_database: %s\n", loaded.DefaultDatabase)
		}
		if len(loaded.Databases) > 0 {
			fmt.Println("databases:")
			table := ui.NewTable(2)
			for name, id := range loaded.Databases {
				table.AddRow("  "+name, ui.ID(id))
			}
			fmt.Print(table.String())
		}
		return nil
	},
}

var configSetTokenCmd = &cobra.Command{
	Use:   "set-token <token>",
	Short: "Store the API token in the config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultPath()
		loaded, err := loadGlobalConfig()
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		loaded.Token = args[0]
		if err := config.Save(path, loaded); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]any{"path": path}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Token saved to %s", path))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetTokenCmd)
	rootCmd.AddCommand(configCmd)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lcampos/quill/internal/api"
	"github.com/lcampos/quill/internal/export"
	"github.com/lcampos/quill/internal/ui"
	"github.com/lcampos/quill/internal/workspace"
)

var exportOutDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export pages to local markdown files",
}

var exportPageCmd = &cobra.Command{
	Use:   "page <id>",
	Short: "Export one page to a markdown file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		page, err := getClient().Page(ctx, args[0])
		if err != nil {
			return handleError(apiErrorCode(err), err, "")
		}

		var schema *workspace.Schema
		if page.Parent.DatabaseID != "" {
			schema, _ = getClient().Schema(ctx, page.Parent.DatabaseID)
		}

		blocks, err := getClient().BlockChildren(ctx, page.ID)
		if err != nil {
			return handleError(apiErrorCode(err), err, "")
		}

		result, err := export.WritePage(page, schema, blocks, exportOutDir)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]any{"files": []string{result.FilePath}}, &Meta{Count: 1})
			return nil
		}
		fmt.Println(ui.Successf("Exported %s", result.FilePath))
		return nil
	},
}

var exportDBCmd = &cobra.Command{
	Use:   "db [database]",
	Short: "Export every page of a database",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string
		if len(args) > 0 {
			name = args[0]
		}
		databaseID, err := getConfig().ResolveDatabase(name)
		if err != nil {
			return handleError(ErrDatabaseNotFound, err, "Pass a database name or id, or set default_database")
		}

		ctx := cmd.Context()
		schema, err := getClient().Schema(ctx, databaseID)
		if err != nil {
			return handleError(apiErrorCode(err), err, "")
		}

		pages, err := getClient().QueryAll(ctx, databaseID, api.QueryRequest{})
		if err != nil {
			return handleError(apiErrorCode(err), err, "")
		}

		var files []string
		for i := range pages {
			page := &pages[i]
			blocks, err := getClient().BlockChildren(ctx, page.ID)
			if err != nil {
				return handleError(apiErrorCode(err), err, "")
			}
			result, err := export.WritePage(page, schema, blocks, exportOutDir)
			if err != nil {
				return handleError(ErrFileWriteError, err, "")
			}
			files = append(files, result.FilePath)
		}

		if isJSONOutput() {
			outputSuccess(map[string]any{"files": files}, &Meta{Count: len(files)})
			return nil
		}
		for _, f := range files {
			fmt.Println(ui.Successf("Exported %s", f))
		}
		fmt.Println(ui.Hint(ui.Count(len(files), "page", "pages")))
		return nil
	},
}

func init() {
	exportCmd.PersistentFlags().StringVarP(&exportOutDir, "out", "o", ".", "Output directory")

	exportCmd.AddCommand(exportPageCmd)
	exportCmd.AddCommand(exportDBCmd)
	rootCmd.AddCommand(exportCmd)
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lcampos/quill/internal/compile"
	"github.com/lcampos/quill/internal/export"
	"github.com/lcampos/quill/internal/ui"
	"github.com/lcampos/quill/internal/workspace"
)

var (
	pageGetRender    bool
	pageGetRaw       bool
	pageCreateParent string
	pageCreateTitle  string
	pageCreateProps  []string
	pageUpdateProps  []string
)

var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "Read and write pages",
}

var pageGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a page and its content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		page, err := getClient().Page(ctx, args[0])
		if err != nil {
			return handleError(apiErrorCode(err), err, "Check the page id and your token's access")
		}

		if pageGetRaw {
			data, _ := json.MarshalIndent(page, "", "  ")
			fmt.Println(string(data))
			return nil
		}

		blocks, err := getClient().BlockChildren(ctx, page.ID)
		if err != nil {
			return handleError(apiErrorCode(err), err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]any{
				"page":   page,
				"blocks": blocks,
			}, nil)
			return nil
		}

		fmt.Println(ui.Header(page.Title()))
		fmt.Println(ui.ID(page.ID))
		fmt.Println()

		body := export.RenderBlocks(blocks)
		if pageGetRender {
			display := ui.NewDisplayContext()
			rendered, err := ui.RenderMarkdown(body, display.AvailableWidth(ui.MarkdownRenderMargin))
			if err != nil {
				return handleError(ErrInternal, err, "")
			}
			fmt.Print(rendered)
			return nil
		}
		fmt.Print(body)
		return nil
	},
}

var pageCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a page in a database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		databaseID, err := getConfig().ResolveDatabase(pageCreateParent)
		if err != nil {
			return handleError(ErrDatabaseNotFound, err, "Pass --parent or set default_database in config")
		}

		if pageCreateTitle == "" && len(pageCreateProps) == 0 {
			return handleErrorMsg(ErrMissingArgument, "nothing to create", "Pass --title and/or --prop key=value")
		}

		props, err := compile.EncodeWritePayload(pageCreateProps)
		if err != nil {
			return handleError(ErrInvalidInput, err, "Properties are passed as --prop key=value")
		}
		if pageCreateTitle != "" {
			// The title key must match the schema's title property name.
			name := titlePropertyName(cmd, databaseID)
			if name == "" {
				name = "title"
			}
			props[name] = workspace.TitleValue(pageCreateTitle)
		}

		page, err := getClient().CreatePage(cmd.Context(), databaseID, props)
		if err != nil {
			return handleError(apiErrorCode(err), err, "")
		}

		if isJSONOutput() {
			outputSuccess(page, nil)
			return nil
		}
		fmt.Println(ui.Successf("Created %s", page.Title()))
		fmt.Println(ui.ID(page.ID))
		return nil
	},
}

var pageUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update page properties",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(pageUpdateProps) == 0 {
			return handleErrorMsg(ErrMissingArgument, "no properties to update", "Pass at least one --prop key=value")
		}
		props, err := compile.EncodeWritePayload(pageUpdateProps)
		if err != nil {
			return handleError(ErrInvalidInput, err, "Properties are passed as --prop key=value")
		}

		page, err := getClient().UpdatePage(cmd.Context(), args[0], props)
		if err != nil {
			return handleError(apiErrorCode(err), err, "")
		}

		if isJSONOutput() {
			outputSuccess(page, nil)
			return nil
		}
		fmt.Println(ui.Successf("Updated %s", page.Title()))
		return nil
	},
}

var pageArchiveCmd = &cobra.Command{
	Use:   "archive <id>",
	Short: "Archive a page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := getClient().ArchivePage(cmd.Context(), args[0])
		if err != nil {
			return handleError(apiErrorCode(err), err, "")
		}

		if isJSONOutput() {
			outputSuccess(page, nil)
			return nil
		}
		fmt.Println(ui.Successf("Archived %s", page.ID))
		return nil
	},
}

// titlePropertyName looks up the database's title property name, best
// effort. Callers fall back to the literal "title" key when it is empty.
func titlePropertyName(cmd *cobra.Command, databaseID string) string {
	schema, err := getClient().Schema(cmd.Context(), databaseID)
	if err != nil || schema == nil {
		return ""
	}
	if prop, ok := schema.Title(); ok {
		return prop.Name
	}
	return ""
}

func init() {
	pageGetCmd.Flags().BoolVar(&pageGetRender, "render", false, "Render page content as styled markdown")
	pageGetCmd.Flags().BoolVar(&pageGetRaw, "raw", false, "Print the raw page JSON")
	pageCreateCmd.Flags().StringVarP(&pageCreateParent, "parent", "p", "", "Parent database (name or id)")
	pageCreateCmd.Flags().StringVarP(&pageCreateTitle, "title", "t", "", "Page title")
	pageCreateCmd.Flags().StringArrayVar(&pageCreateProps, "prop", nil, "Property as key=value (repeatable)")
	pageUpdateCmd.Flags().StringArrayVar(&pageUpdateProps, "prop", nil, "Property as key=value (repeatable)")

	pageCmd.AddCommand(pageGetCmd)
	pageCmd.AddCommand(pageCreateCmd)
	pageCmd.AddCommand(pageUpdateCmd)
	pageCmd.AddCommand(pageArchiveCmd)
	rootCmd.AddCommand(pageCmd)
}

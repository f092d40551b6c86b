package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lcampos/quill/internal/markdown"
	"github.com/lcampos/quill/internal/ui"
)

var (
	blockAppendText string
	blockAppendFile string
)

var blockCmd = &cobra.Command{
	Use:   "block",
	Short: "Work with page content blocks",
}

var blockChildrenCmd = &cobra.Command{
	Use:   "children <id>",
	Short: "List the child blocks of a page or block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		blocks, err := getClient().BlockChildren(cmd.Context(), args[0])
		if err != nil {
			return handleError(apiErrorCode(err), err, "")
		}

		if isJSONOutput() {
			outputSuccess(blocks, &Meta{Count: len(blocks)})
			return nil
		}

		if len(blocks) == 0 {
			fmt.Println("No blocks.")
			return nil
		}
		table := ui.NewTable(3)
		for i := range blocks {
			b := &blocks[i]
			table.AddRow(ui.ID(b.ID), b.Type, b.PlainText())
		}
		fmt.Print(table.String())
		return nil
	},
}

var blockAppendCmd = &cobra.Command{
	Use:   "append <id>",
	Short: "Append content to a page or block",
	Long: `Appends blocks to a page or block. Content comes from --text (one
paragraph) or --file (a markdown document converted block by block:
headings, lists, code fences, quotes and dividers all map to their
service equivalents).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if blockAppendText == "" && blockAppendFile == "" {
			return handleErrorMsg(ErrMissingArgument, "nothing to append", "Pass --text or --file")
		}
		if blockAppendText != "" && blockAppendFile != "" {
			return handleErrorMsg(ErrInvalidInput, "--text and --file are mutually exclusive", "")
		}

		var children []map[string]any
		if blockAppendText != "" {
			children = []map[string]any{paragraphBlock(blockAppendText)}
		} else {
			content, err := os.ReadFile(blockAppendFile)
			if err != nil {
				return handleError(ErrFileReadError, fmt.Errorf("failed to read %s: %w", blockAppendFile, err), "")
			}
			children, err = markdown.ToBlocks(content)
			if err != nil {
				return handleError(ErrInvalidInput, err, "")
			}
		}
		if len(children) == 0 {
			return handleErrorMsg(ErrInvalidInput, "no blocks to append", "")
		}

		if err := getClient().AppendBlocks(cmd.Context(), args[0], children); err != nil {
			return handleError(apiErrorCode(err), err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]any{"appended": len(children)}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Appended %d block(s)", len(children)))
		return nil
	},
}

var blockDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().DeleteBlock(cmd.Context(), args[0]); err != nil {
			return handleError(apiErrorCode(err), err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]any{"deleted": args[0]}, nil)
			return nil
		}
		fmt.Println(ui.Successf("Deleted %s", args[0]))
		return nil
	},
}

func paragraphBlock(text string) map[string]any {
	return map[string]any{
		"object": "block",
		"type":   "paragraph",
		"paragraph": map[string]any{
			"rich_text": []map[string]any{
				{"type": "text", "text": map[string]any{"content": text}},
			},
		},
	}
}

func init() {
	blockAppendCmd.Flags().StringVar(&blockAppendText, "text", "", "Paragraph text to append")
	blockAppendCmd.Flags().StringVar(&blockAppendFile, "file", "", "Markdown file to convert and append")

	blockCmd.AddCommand(blockChildrenCmd)
	blockCmd.AddCommand(blockAppendCmd)
	blockCmd.AddCommand(blockDeleteCmd)
	rootCmd.AddCommand(blockCmd)
}

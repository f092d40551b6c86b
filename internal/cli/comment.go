package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lcampos/quill/internal/ui"
)

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Read and write page comments",
}

var commentListCmd = &cobra.Command{
	Use:   "list <page>",
	Short: "List the comments on a page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		comments, err := getClient().Comments(cmd.Context(), args[0])
		if err != nil {
			return handleError(apiErrorCode(err), err, "")
		}

		if isJSONOutput() {
			outputSuccess(comments, &Meta{Count: len(comments)})
			return nil
		}

		if len(comments) == 0 {
			fmt.Println("No comments.")
			return nil
		}
		for i := range comments {
			c := &comments[i]
			author := c.CreatedBy.Name
			if author == "" {
				author = c.CreatedBy.ID
			}
			fmt.Printf("%s %s\n", ui.AccentBold.Render(author), ui.Hint(c.CreatedTime))
			fmt.Printf("  %s\n", c.Text())
		}
		return nil
	},
}

var commentAddCmd = &cobra.Command{
	Use:   "add <page> <text>",
	Short: "Add a comment to a page",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args[1:], " ")
		comment, err := getClient().CreateComment(cmd.Context(), args[0], text)
		if err != nil {
			return handleError(apiErrorCode(err), err, "")
		}

		if isJSONOutput() {
			outputSuccess(comment, nil)
			return nil
		}
		fmt.Println(ui.Success("Comment added"))
		fmt.Println(ui.ID(comment.ID))
		return nil
	},
}

func init() {
	commentCmd.AddCommand(commentListCmd)
	commentCmd.AddCommand(commentAddCmd)
	rootCmd.AddCommand(commentCmd)
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lcampos/quill/internal/ui"
	"github.com/lcampos/quill/internal/workspace"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Search pages and databases by title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := getClient().Search(cmd.Context(), args[0], searchLimit)
		if err != nil {
			return handleError(apiErrorCode(err), err, "")
		}

		if isJSONOutput() {
			outputSuccess(result.Results, &Meta{Count: len(result.Results)})
			return nil
		}

		if len(result.Results) == 0 {
			fmt.Println("No results.")
			return nil
		}
		table := ui.NewTable(3)
		for _, raw := range result.Results {
			object, title, id := searchHit(raw)
			table.AddRow(ui.Title(title), object, ui.ID(id))
		}
		fmt.Print(table.String())
		if result.HasMore {
			fmt.Println(ui.Hint("More results available; raise --limit"))
		}
		return nil
	},
}

// searchHit decodes the common fields of a mixed page/database search hit.
func searchHit(raw json.RawMessage) (object, title, id string) {
	var probe struct {
		Object string `json:"object"`
		ID     string `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return "", "", ""
	}

	switch probe.Object {
	case "database":
		var db workspace.Database
		if err := json.Unmarshal(raw, &db); err == nil {
			return probe.Object, db.TitleText(), probe.ID
		}
	case "page":
		var page workspace.Page
		if err := json.Unmarshal(raw, &page); err == nil {
			return probe.Object, page.Title(), probe.ID
		}
	}
	return probe.Object, "", probe.ID
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Page size (max 100)")
	rootCmd.AddCommand(searchCmd)
}

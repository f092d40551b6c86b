package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lcampos/quill/internal/api"
	"github.com/lcampos/quill/internal/compile"
	"github.com/lcampos/quill/internal/ui"
)

var (
	findDatabase string
	findExplain  bool
	findLimit    int
	findAll      bool
)

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Query a database with plain language",
	Long: `Finds pages matching a free-text query. The query is scanned for
facets - status words, assignee mentions, date phrases, priority words and
tag lists - in English or Spanish, and each facet is resolved against the
database schema into a typed filter.

  quill find "overdue urgent tasks" -d tasks
  quill find "tareas terminadas esta semana" -d tasks

Facets that cannot be resolved against the schema are dropped and the rest
of the query still runs. Use --explain to see the extracted facets and the
composed filter without querying.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		databaseID, err := getConfig().ResolveDatabase(findDatabase)
		if err != nil {
			return handleError(ErrDatabaseNotFound, err, "Pass -d/--database or set default_database in config")
		}

		ctx := cmd.Context()
		schema, err := getClient().Schema(ctx, databaseID)
		if err != nil {
			return handleError(apiErrorCode(err), err, "")
		}

		result := compile.CompileFind(args[0], schema, time.Now())

		if findExplain {
			return explainFind(result)
		}

		req := api.QueryRequest{
			Filter:   result.Filter,
			PageSize: api.PageSizeOrDefault(findLimit),
		}
		if findAll {
			all, err := getClient().QueryAll(ctx, databaseID, req)
			if err != nil {
				return handleError(apiErrorCode(err), err, "")
			}
			if isJSONOutput() {
				outputSuccess(pageRows(all, schema), &Meta{Count: len(all)})
				return nil
			}
			printPageTable(all, schema)
			return nil
		}

		resp, err := getClient().QueryDatabase(ctx, databaseID, req)
		if err != nil {
			return handleError(apiErrorCode(err), err, "")
		}
		if isJSONOutput() {
			outputSuccess(pageRows(resp.Results, schema), &Meta{Count: len(resp.Results)})
			return nil
		}
		printPageTable(resp.Results, schema)
		return nil
	},
}

// explainFind prints the extracted facets and composed filter and exits
// without querying.
func explainFind(result compile.FindResult) error {
	filterJSON := []byte("null")
	if result.Filter != nil {
		var err error
		filterJSON, err = json.MarshalIndent(result.Filter, "", "  ")
		if err != nil {
			return handleError(ErrInternal, err, "")
		}
	}

	if isJSONOutput() {
		facets := make([]map[string]any, 0, len(result.Facets))
		for _, f := range result.Facets {
			facets = append(facets, facetJSON(f))
		}
		dropped := make([]map[string]any, 0, len(result.Dropped))
		for _, f := range result.Dropped {
			dropped = append(dropped, facetJSON(f))
		}
		outputSuccess(map[string]any{
			"facets":  facets,
			"dropped": dropped,
			"filter":  json.RawMessage(filterJSON),
		}, nil)
		return nil
	}

	fmt.Println(ui.Header("Facets"))
	if len(result.Facets) == 0 {
		fmt.Println("  (none)")
	}
	for _, f := range result.Facets {
		fmt.Printf("  %s %s\n", ui.Accent.Render(f.Kind.String()), facetDetail(f))
	}
	if len(result.Dropped) > 0 {
		fmt.Println(ui.Header("Dropped"))
		for _, f := range result.Dropped {
			fmt.Printf("  %s %s\n", f.Kind.String(), facetDetail(f))
		}
	}
	fmt.Println(ui.Header("Filter"))
	fmt.Println(string(filterJSON))
	return nil
}

func facetJSON(f compile.Facet) map[string]any {
	m := map[string]any{"kind": f.Kind.String()}
	if f.Value != "" {
		m["value"] = f.Value
	}
	if len(f.Values) > 0 {
		m["values"] = f.Values
	}
	return m
}

func facetDetail(f compile.Facet) string {
	switch {
	case len(f.Values) > 0:
		return fmt.Sprintf("%v", f.Values)
	case f.Value != "":
		return f.Value
	default:
		return ""
	}
}

func init() {
	findCmd.Flags().StringVarP(&findDatabase, "database", "d", "", "Database to search (name or id)")
	findCmd.Flags().BoolVar(&findExplain, "explain", false, "Print facets and filter without querying")
	findCmd.Flags().IntVar(&findLimit, "limit", 0, "Page size (max 100)")
	findCmd.Flags().BoolVar(&findAll, "all", false, "Follow cursors and fetch every result")
	rootCmd.AddCommand(findCmd)
}

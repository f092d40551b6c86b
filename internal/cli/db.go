package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lcampos/quill/internal/api"
	"github.com/lcampos/quill/internal/compile"
	"github.com/lcampos/quill/internal/ui"
	"github.com/lcampos/quill/internal/workspace"
)

var (
	dbQueryWhere      string
	dbQueryFilterProp string
	dbQueryFilterType string
	dbQueryFilterVal  string
	dbQueryPropType   string
	dbQueryFilterJSON string
	dbQuerySorts      []string
	dbQueryLimit      int
	dbQueryAll        bool
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Inspect and query databases",
}

var dbSchemaCmd = &cobra.Command{
	Use:   "schema [database]",
	Short: "Show a database's properties",
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

		db, err := getClient().Database(cmd.Context(), databaseID)
		if err != nil {
			return handleError(apiErrorCode(err), err, "")
		}

		if isJSONOutput() {
			outputSuccess(db, nil)
			return nil
		}

		fmt.Println(ui.Header(db.TitleText()))
		fmt.Println(ui.ID(db.ID))
		fmt.Println()

		if db.Properties == nil || db.Properties.Len() == 0 {
			fmt.Println("No properties.")
			return nil
		}
		table := ui.NewTable(3)
		table.SetHeader("Property", "Type", "Options")
		for _, prop := range db.Properties.Properties() {
			options := ""
			if prop.IsSelectLike() {
				names := make([]string, len(prop.Options))
				for i, o := range prop.Options {
					names[i] = o.Name
				}
				options = strings.Join(names, ", ")
			}
			table.AddRow(prop.Name, string(prop.Type), options)
		}
		fmt.Print(table.String())
		return nil
	},
}

var dbQueryCmd = &cobra.Command{
	Use:   "query [database]",
	Short: "Query a database with typed filters",
	Long: `Queries a database. The filter comes from one of three sources:

  --filter-json             a raw filter object, passed through verbatim
  --where "A=B,C!=D"        comma-joined conditions compiled against the schema
  --filter-prop/--filter-value
                            a single explicit predicate

Where-clauses resolve property types from the live schema: "Due<today" uses
date operators, "Estimate>3" numeric ones. Conditions naming unknown
properties are dropped with a warning; a clause with no valid conditions is
an error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string
		if len(args) > 0 {
			name = args[0]
		}
		databaseID, err := getConfig().ResolveDatabase(name)
		if err != nil {
			return handleError(ErrDatabaseNotFound, err, "Pass a database name or id, or set default_database")
		}

		filter, warnings, code, err := buildQueryFilter(cmd, databaseID)
		if err != nil {
			return handleError(code, err, filterSuggestion(code))
		}

		req := api.QueryRequest{
			Filter:   filter,
			PageSize: api.PageSizeOrDefault(dbQueryLimit),
		}
		for _, s := range dbQuerySorts {
			sort, err := parseSort(s)
			if err != nil {
				return handleError(ErrInvalidInput, err, "Sorts are passed as prop, prop:asc or prop:desc")
			}
			req.Sorts = append(req.Sorts, sort)
		}

		ctx := cmd.Context()
		var pages []workspace.Page
		if dbQueryAll {
			pages, err = getClient().QueryAll(ctx, databaseID, req)
		} else {
			var resp *api.QueryResponse
			resp, err = getClient().QueryDatabase(ctx, databaseID, req)
			if resp != nil {
				pages = resp.Results
			}
		}
		if err != nil {
			return handleError(apiErrorCode(err), err, "")
		}

		schema, _ := getClient().Schema(ctx, databaseID)

		if isJSONOutput() {
			outputSuccessWithWarnings(pageRows(pages, schema), warnings, &Meta{Count: len(pages)})
			return nil
		}
		printWarnings(warnings)
		printPageTable(pages, schema)
		return nil
	},
}

// buildQueryFilter assembles the query filter from the flag set. Explicit
// JSON wins, then a where-clause, then the single-predicate flags. No flags
// means no filter. The returned code classifies the error for the envelope.
func buildQueryFilter(cmd *cobra.Command, databaseID string) (*workspace.Filter, []Warning, string, error) {
	if dbQueryFilterJSON != "" {
		if !json.Valid([]byte(dbQueryFilterJSON)) {
			return nil, nil, ErrFilterInvalid, fmt.Errorf("invalid --filter-json: not valid JSON")
		}
		return workspace.RawFilter(json.RawMessage(dbQueryFilterJSON)), nil, "", nil
	}

	if cmd.Flags().Changed("where") {
		schema, err := getClient().Schema(cmd.Context(), databaseID)
		if err != nil {
			return nil, nil, apiErrorCode(err), err
		}
		filter, dropped := compile.ParseWhere(dbQueryWhere, schema, time.Now())
		if filter == nil {
			return nil, nil, ErrWhereInvalid, fmt.Errorf("Invalid --where clause")
		}
		return filter, whereWarnings(dropped), "", nil
	}

	if dbQueryFilterProp != "" {
		if dbQueryFilterVal == "" && dbQueryFilterType != "is_empty" && dbQueryFilterType != "is_not_empty" {
			return nil, nil, ErrMissingArgument, fmt.Errorf("--filter-prop requires --filter-value")
		}
		op := dbQueryFilterType
		if op == "" {
			op = "equals"
		}
		if dbQueryPropType != "" {
			typ, err := compile.ParsePropertyType(dbQueryPropType)
			if err != nil {
				return nil, nil, ErrTypeInvalid, err
			}
			filter, err := compile.EncodePredicate(dbQueryFilterProp, op, dbQueryFilterVal, typ)
			if err != nil {
				return nil, nil, ErrFilterInvalid, err
			}
			return filter, nil, "", nil
		}
		return compile.EncodePredicateAuto(dbQueryFilterProp, op, dbQueryFilterVal), nil, "", nil
	}

	return nil, nil, "", nil
}

// filterSuggestion maps filter error codes to a usage hint.
func filterSuggestion(code string) string {
	switch code {
	case ErrWhereInvalid:
		return `Conditions look like "Status=Done,Priority!=Low"`
	case ErrFilterInvalid, ErrMissingArgument:
		return "Explicit filters take --filter-prop, --filter-value and optionally --filter-type"
	case ErrTypeInvalid:
		return "Property types: title, rich_text, number, select, multi_select, status, date, people, checkbox, url, email, phone_number"
	}
	return ""
}

func init() {
	dbQueryCmd.Flags().StringVarP(&dbQueryWhere, "where", "w", "", `Comma-joined conditions, e.g. "Status=Done,Due<today"`)
	dbQueryCmd.Flags().StringVar(&dbQueryFilterProp, "filter-prop", "", "Property name for an explicit predicate")
	dbQueryCmd.Flags().StringVar(&dbQueryFilterType, "filter-type", "", "Filter operator (equals, contains, before, ...)")
	dbQueryCmd.Flags().StringVar(&dbQueryFilterVal, "filter-value", "", "Filter operand")
	dbQueryCmd.Flags().StringVar(&dbQueryPropType, "filter-prop-type", "", "Property type override (status, select, number, ...)")
	dbQueryCmd.Flags().StringVar(&dbQueryFilterJSON, "filter-json", "", "Raw filter JSON, passed through verbatim")
	dbQueryCmd.Flags().StringArrayVar(&dbQuerySorts, "sort", nil, "Sort as prop, prop:asc or prop:desc (repeatable)")
	dbQueryCmd.Flags().IntVar(&dbQueryLimit, "limit", 0, "Page size (max 100)")
	dbQueryCmd.Flags().BoolVar(&dbQueryAll, "all", false, "Follow cursors and fetch every result")

	dbCmd.AddCommand(dbSchemaCmd)
	dbCmd.AddCommand(dbQueryCmd)
	rootCmd.AddCommand(dbCmd)
}

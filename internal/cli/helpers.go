package cli

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/lcampos/quill/internal/api"
	"github.com/lcampos/quill/internal/compile"
	"github.com/lcampos/quill/internal/ui"
	"github.com/lcampos/quill/internal/workspace"
)

// apiErrorCode maps a client error to a stable error code.
func apiErrorCode(err error) string {
	if errors.Is(err, api.ErrNotFound) {
		return ErrPageNotFound
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return ErrAuthFailed
		case http.StatusTooManyRequests:
			return ErrRateLimited
		}
	}
	return ErrAPIError
}

// printWarnings writes warnings to stderr in text mode.
func printWarnings(warnings []Warning) {
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, ui.Warning(w.Message))
	}
}

// whereWarnings maps parser warnings onto the envelope's warning codes.
func whereWarnings(parsed []compile.ParseWarning) []Warning {
	warnings := make([]Warning, 0, len(parsed))
	for _, w := range parsed {
		code := WarnValueInvalid
		if w.Unknown {
			code = WarnPropertyNotFound
		}
		warnings = append(warnings, Warning{Code: code, Message: w.Message, Property: w.Property})
	}
	return warnings
}

// parseSort parses "prop", "prop:asc" or "prop:desc" into a sort
// instruction. The timestamps "created_time" and "last_edited_time" sort on
// the timestamp rather than a property.
func parseSort(s string) (workspace.Sort, error) {
	name := s
	direction := "ascending"
	if i := strings.LastIndex(s, ":"); i >= 0 {
		name = s[:i]
		switch s[i+1:] {
		case "asc", "ascending":
			direction = "ascending"
		case "desc", "descending":
			direction = "descending"
		default:
			return workspace.Sort{}, fmt.Errorf("invalid sort direction %q (use asc or desc)", s[i+1:])
		}
	}
	if name == "" {
		return workspace.Sort{}, fmt.Errorf("invalid sort %q", s)
	}
	if name == "created_time" || name == "last_edited_time" {
		return workspace.Sort{Timestamp: name, Direction: direction}, nil
	}
	return workspace.Sort{Property: name, Direction: direction}, nil
}

// pageRow is the JSON shape used when listing query results.
type pageRow struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	URL        string            `json:"url,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
}

// pageRows projects pages through the schema into display rows.
func pageRows(pages []workspace.Page, schema *workspace.Schema) []pageRow {
	rows := make([]pageRow, 0, len(pages))
	for i := range pages {
		p := &pages[i]
		row := pageRow{ID: p.ID, Title: p.Title(), URL: p.URL}
		if schema != nil {
			props := make(map[string]string)
			for _, prop := range schema.Properties() {
				if prop.Type == workspace.TypeTitle {
					continue
				}
				if v := p.PropertyText(prop.Name); v != "" {
					props[prop.Name] = v
				}
			}
			if len(props) > 0 {
				row.Properties = props
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// printPageTable renders query results as an aligned table.
func printPageTable(pages []workspace.Page, schema *workspace.Schema) {
	if len(pages) == 0 {
		fmt.Println("No results.")
		return
	}

	// Show the title plus the first few schema properties that fit.
	var cols []string
	if schema != nil {
		for _, prop := range schema.Properties() {
			if prop.Type == workspace.TypeTitle {
				continue
			}
			cols = append(cols, prop.Name)
			if len(cols) == 3 {
				break
			}
		}
	}

	table := ui.NewTable(len(cols) + 1)
	table.SetHeader(append([]string{"Title"}, cols...)...)
	for i := range pages {
		p := &pages[i]
		cells := []string{p.Title()}
		for _, c := range cols {
			cells = append(cells, p.PropertyText(c))
		}
		table.AddRow(cells...)
	}
	table.SetCount(len(pages), "result", "results")
	fmt.Print(table.String())
}

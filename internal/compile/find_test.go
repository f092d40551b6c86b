package compile

import (
	"testing"
	"time"

	"github.com/lcampos/quill/internal/testutil"
	"github.com/lcampos/quill/internal/workspace"
)

var findNow = time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

func TestCompileFindOverdue(t *testing.T) {
	result := CompileFind("overdue", testutil.TaskSchema(), findNow)

	want := `{"property":"Due Date","date":{"before":"2025-06-15"}}`
	if got := payloadJSON(t, result.Filter); got != want {
		t.Errorf("filter = %s, want %s", got, want)
	}
	if len(result.Dropped) != 0 {
		t.Errorf("unexpected dropped facets: %v", result.Dropped)
	}
}

func TestCompileFindUnassignedSpanish(t *testing.T) {
	result := CompileFind("sin asignar", testutil.TaskSchema(), findNow)

	want := `{"property":"Assignee","people":{"is_empty":true}}`
	if got := payloadJSON(t, result.Filter); got != want {
		t.Errorf("filter = %s, want %s", got, want)
	}
}

func TestCompileFindInProgressSubstringOption(t *testing.T) {
	schema := workspace.NewSchema(
		workspace.Property{Name: "Name", Type: workspace.TypeTitle},
		workspace.Property{Name: "Status", Type: workspace.TypeStatus, Options: []workspace.Option{
			{Name: "Working On It"},
		}},
	)
	result := CompileFind("in progress tasks", schema, findNow)

	want := `{"property":"Status","status":{"equals":"Working On It"}}`
	if got := payloadJSON(t, result.Filter); got != want {
		t.Errorf("filter = %s, want %s", got, want)
	}
}

func TestCompileFindThisWeek(t *testing.T) {
	result := CompileFind("due this week", testutil.TaskSchema(), findNow)

	want := `{"property":"Due Date","date":{"this_week":{}}}`
	if got := payloadJSON(t, result.Filter); got != want {
		t.Errorf("filter = %s, want %s", got, want)
	}
}

func TestCompileFindCombined(t *testing.T) {
	result := CompileFind(`overdue urgent tasks tagged "bug"`, testutil.TaskSchema(), findNow)

	if !result.Filter.IsConjunction() {
		t.Fatalf("expected conjunction, got %s", payloadJSON(t, result.Filter))
	}
	want := `{"and":[` +
		`{"property":"Due Date","date":{"before":"2025-06-15"}},` +
		`{"property":"Priority","select":{"equals":"High"}},` +
		`{"property":"Tags","multi_select":{"contains":"bug"}}]}`
	if got := payloadJSON(t, result.Filter); got != want {
		t.Errorf("filter = %s, want %s", got, want)
	}
}

func TestCompileFindUnresolvedFacetDropped(t *testing.T) {
	// Status options are colors, so the "done" facet cannot resolve; the
	// find still produces the remaining constraint instead of failing.
	schema := workspace.NewSchema(
		workspace.Property{Name: "Name", Type: workspace.TypeTitle},
		workspace.Property{Name: "Status", Type: workspace.TypeSelect, Options: []workspace.Option{
			{Name: "Red"}, {Name: "Blue"},
		}},
		workspace.Property{Name: "Due", Type: workspace.TypeDate},
	)
	result := CompileFind("done overdue", schema, findNow)

	if len(result.Dropped) != 1 || result.Dropped[0].Kind != FacetStatus {
		t.Fatalf("expected the status facet dropped, got %v", result.Dropped)
	}
	want := `{"property":"Due","date":{"before":"2025-06-15"}}`
	if got := payloadJSON(t, result.Filter); got != want {
		t.Errorf("filter = %s, want %s", got, want)
	}
}

func TestCompileFindNothingExtracted(t *testing.T) {
	result := CompileFind("all the things", testutil.TaskSchema(), findNow)
	if result.Filter != nil {
		t.Errorf("expected nil filter, got %s", payloadJSON(t, result.Filter))
	}
	if len(result.Facets) != 0 {
		t.Errorf("expected no facets, got %v", result.Facets)
	}
}

func TestCompileFindRecentlyEdited(t *testing.T) {
	result := CompileFind("recently edited", testutil.TaskSchema(), findNow)

	want := `{"property":"Last Edited","last_edited_time":{"on_or_after":"2025-06-15"}}`
	if got := payloadJSON(t, result.Filter); got != want {
		t.Errorf("filter = %s, want %s", got, want)
	}
}

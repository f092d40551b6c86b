package compile

import (
	"reflect"
	"testing"
)

func findFacet(facets []Facet, kind FacetKind) (Facet, bool) {
	for _, f := range facets {
		if f.Kind == kind {
			return f, true
		}
	}
	return Facet{}, false
}

func TestExtractFacetsStatus(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"english done", "show me done tasks", "done"},
		{"english in progress", "in progress tasks", "in progress"},
		{"english pending", "pending items", "todo"},
		{"spanish done", "tareas terminadas", "done"},
		{"spanish in progress", "tareas en curso", "in progress"},
		{"blocked", "stuck tasks", "blocked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facet, ok := findFacet(ExtractFacets(tt.query), FacetStatus)
			if !ok {
				t.Fatalf("no status facet extracted from %q", tt.query)
			}
			if facet.Value != tt.want {
				t.Errorf("status = %q, want %q", facet.Value, tt.want)
			}
		})
	}
}

func TestExtractFacetsStatusFirstMatchWins(t *testing.T) {
	// Both "done" and "pending" appear; "done" is declared first.
	facet, ok := findFacet(ExtractFacets("pending review but done"), FacetStatus)
	if !ok {
		t.Fatal("no status facet")
	}
	if facet.Value != "done" {
		t.Errorf("status = %q, want %q (table order tie-break)", facet.Value, "done")
	}
}

func TestExtractFacetsAssignee(t *testing.T) {
	for _, query := range []string{"unassigned tasks", "tareas sin asignar"} {
		if _, ok := findFacet(ExtractFacets(query), FacetAssigneeEmpty); !ok {
			t.Errorf("no assignee facet extracted from %q", query)
		}
	}
}

func TestExtractFacetsDate(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  DateMode
	}{
		{"overdue", "overdue tasks", DateBefore},
		{"spanish overdue", "tareas vencidas", DateBefore},
		{"today", "due today", DateEquals},
		{"spanish today", "para hoy", DateEquals},
		{"this week", "due this week", DateThisWeek},
		{"recently edited", "recently edited pages", DateLastEditedToday},
		{"recently created", "recently created pages", DateCreatedToday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facet, ok := findFacet(ExtractFacets(tt.query), FacetDate)
			if !ok {
				t.Fatalf("no date facet extracted from %q", tt.query)
			}
			if facet.Mode != tt.want {
				t.Errorf("mode = %v, want %v", facet.Mode, tt.want)
			}
		})
	}
}

// The "today" entry precedes "modified today" and "created today" in the
// date table, so those phrases resolve to the generic today facet: the
// timestamp-specific branches are shadowed. This is long-standing behavior;
// this test exists so any change to it is deliberate.
func TestExtractFacetsTodayShadowsModifiedToday(t *testing.T) {
	for _, query := range []string{"modified today", "created today", "modificado hoy"} {
		facet, ok := findFacet(ExtractFacets(query), FacetDate)
		if !ok {
			t.Fatalf("no date facet extracted from %q", query)
		}
		if facet.Mode != DateEquals {
			t.Errorf("query %q: mode = %v, want %v (shadowed by the today entry)", query, facet.Mode, DateEquals)
		}
	}
}

func TestExtractFacetsPriority(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"urgent tasks", "high"},
		{"high priority bugs", "high"},
		{"tareas urgentes", "high"},
		{"medium priority", "medium"},
		{"low priority cleanup", "low"},
	}

	for _, tt := range tests {
		facet, ok := findFacet(ExtractFacets(tt.query), FacetPriority)
		if !ok {
			t.Fatalf("no priority facet extracted from %q", tt.query)
		}
		if facet.Value != tt.want {
			t.Errorf("query %q: priority = %q, want %q", tt.query, facet.Value, tt.want)
		}
	}
}

func TestExtractFacetsTags(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"tagged list", `tasks tagged "bug, urgent"`, []string{"bug", "urgent"}},
		{"with tag", `pages with tag "draft"`, []string{"draft"}},
		{"with tags", `pages with tags "a,b"`, []string{"a", "b"}},
		{"spanish", `tareas con etiqueta "bug"`, []string{"bug"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facet, ok := findFacet(ExtractFacets(tt.query), FacetTags)
			if !ok {
				t.Fatalf("no tags facet extracted from %q", tt.query)
			}
			if !reflect.DeepEqual(facet.Values, tt.want) {
				t.Errorf("tags = %v, want %v", facet.Values, tt.want)
			}
		})
	}
}

func TestExtractFacetsCoexistence(t *testing.T) {
	facets := ExtractFacets(`overdue unassigned urgent tasks tagged "bug"`)

	for _, kind := range []FacetKind{FacetDate, FacetAssigneeEmpty, FacetPriority, FacetTags} {
		if _, ok := findFacet(facets, kind); !ok {
			t.Errorf("expected %v facet in combined query", kind)
		}
	}
}

func TestExtractFacetsEmptyQuery(t *testing.T) {
	if facets := ExtractFacets("show everything"); len(facets) != 0 {
		t.Errorf("expected no facets, got %v", facets)
	}
}

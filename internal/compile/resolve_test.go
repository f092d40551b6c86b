package compile

import (
	"testing"

	"github.com/lcampos/quill/internal/workspace"
)

func TestResolvePropertyExactTier(t *testing.T) {
	schema := workspace.NewSchema(
		workspace.Property{Name: "Phase", Type: workspace.TypeSelect},
		workspace.Property{Name: "Status", Type: workspace.TypeStatus},
	)
	got := ResolveProperty(schema, []workspace.PropertyType{workspace.TypeStatus, workspace.TypeSelect}, statusHints)
	if got == nil || got.Name != "Status" {
		t.Fatalf("expected exact-name Status, got %+v", got)
	}
}

func TestResolvePropertyExactBeatsEarlierSubstring(t *testing.T) {
	// "Task Status" would match by substring and sits first; the exact tier
	// must still scan the whole schema and pick "Status".
	schema := workspace.NewSchema(
		workspace.Property{Name: "Task Status", Type: workspace.TypeSelect},
		workspace.Property{Name: "Status", Type: workspace.TypeStatus},
	)
	got := ResolveProperty(schema, []workspace.PropertyType{workspace.TypeStatus, workspace.TypeSelect}, statusHints)
	if got == nil || got.Name != "Status" {
		t.Fatalf("expected Status via exact tier, got %+v", got)
	}
}

func TestResolvePropertySubstringTier(t *testing.T) {
	schema := workspace.NewSchema(
		workspace.Property{Name: "Name", Type: workspace.TypeTitle},
		workspace.Property{Name: "Task Status", Type: workspace.TypeSelect},
	)
	got := ResolveProperty(schema, []workspace.PropertyType{workspace.TypeStatus, workspace.TypeSelect}, statusHints)
	if got == nil || got.Name != "Task Status" {
		t.Fatalf("expected substring match Task Status, got %+v", got)
	}
}

func TestResolvePropertySubstringEitherDirection(t *testing.T) {
	// The property name "Est" does not contain the hint, but the hint
	// "estado" contains the property name; both directions count.
	schema := workspace.NewSchema(
		workspace.Property{Name: "Est", Type: workspace.TypeSelect},
	)
	got := ResolveProperty(schema, []workspace.PropertyType{workspace.TypeSelect}, []string{"estado"})
	if got == nil || got.Name != "Est" {
		t.Fatalf("expected reverse-substring match, got %+v", got)
	}
}

func TestResolvePropertyTypeOnlyTier(t *testing.T) {
	schema := workspace.NewSchema(
		workspace.Property{Name: "Name", Type: workspace.TypeTitle},
		workspace.Property{Name: "Category", Type: workspace.TypeSelect},
		workspace.Property{Name: "Mood", Type: workspace.TypeSelect},
	)
	got := ResolveProperty(schema, []workspace.PropertyType{workspace.TypeStatus, workspace.TypeSelect}, statusHints)
	if got == nil || got.Name != "Category" {
		t.Fatalf("expected first allowed-type property Category, got %+v", got)
	}
}

func TestResolvePropertyNoAllowedType(t *testing.T) {
	schema := workspace.NewSchema(
		workspace.Property{Name: "Name", Type: workspace.TypeTitle},
	)
	if got := ResolveProperty(schema, []workspace.PropertyType{workspace.TypePeople}, assigneeHints); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func optionProp(names ...string) *workspace.Property {
	opts := make([]workspace.Option, len(names))
	for i, n := range names {
		opts[i] = workspace.Option{Name: n}
	}
	return &workspace.Property{Name: "Status", Type: workspace.TypeStatus, Options: opts}
}

func TestResolveOptionExact(t *testing.T) {
	prop := optionProp("Not Started", "In Progress", "Done")
	if got := ResolveOption(prop, "done"); got != "Done" {
		t.Errorf("got %q, want Done", got)
	}
}

func TestResolveOptionSubstring(t *testing.T) {
	prop := optionProp("Done ✓", "Open")
	if got := ResolveOption(prop, "done"); got != "Done ✓" {
		t.Errorf("got %q, want Done ✓", got)
	}
}

func TestResolveOptionSynonymTier(t *testing.T) {
	// No exact or substring match; "in progress" reaches "Working On It"
	// through the synonym group's "working" entry.
	prop := optionProp("Backlog", "Working On It", "Shipped")
	if got := ResolveOption(prop, "in progress"); got != "Working On It" {
		t.Errorf("got %q, want Working On It", got)
	}
}

func TestResolveOptionSynonymSpanish(t *testing.T) {
	prop := optionProp("Por Hacer", "En Curso", "Finalizado")
	if got := ResolveOption(prop, "done"); got != "Finalizado" {
		t.Errorf("got %q, want Finalizado", got)
	}
}

func TestResolveOptionNoMatch(t *testing.T) {
	prop := optionProp("Red", "Green", "Blue")
	if got := ResolveOption(prop, "done"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestResolveOptionIdempotent(t *testing.T) {
	prop := optionProp("Backlog", "Working On It", "Shipped")
	first := ResolveOption(prop, "in progress")
	for i := 0; i < 5; i++ {
		if got := ResolveOption(prop, "in progress"); got != first {
			t.Fatalf("resolution changed between calls: %q then %q", first, got)
		}
	}
}

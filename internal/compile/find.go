package compile

import (
	"fmt"
	"time"

	"github.com/lcampos/quill/internal/dates"
	"github.com/lcampos/quill/internal/workspace"
)

// FindResult carries everything the find command needs: the extracted
// facets, the leaves each one resolved to, and the composed filter. Facets
// that could not be resolved against the schema are listed in Dropped and
// omitted from the filter; a best-effort query still runs.
type FindResult struct {
	Facets  []Facet
	Filter  *workspace.Filter
	Dropped []Facet
}

// CompileFind runs the full free-text pipeline: extract facets from the
// query, resolve each against the schema, and compose the surviving leaves.
func CompileFind(query string, schema *workspace.Schema, now time.Time) FindResult {
	facets := ExtractFacets(query)
	result := FindResult{Facets: facets}

	var leaves []*workspace.Filter
	for _, facet := range facets {
		resolved := resolveFacet(facet, schema, now)
		if len(resolved) == 0 {
			result.Dropped = append(result.Dropped, facet)
			continue
		}
		leaves = append(leaves, resolved...)
	}

	result.Filter = Compose(leaves)
	return result
}

// resolveFacet maps one facet to filter leaves. The switch is exhaustive
// over FacetKind; a new kind without a branch here panics in tests rather
// than being silently dropped.
func resolveFacet(facet Facet, schema *workspace.Schema, now time.Time) []*workspace.Filter {
	switch facet.Kind {
	case FacetStatus:
		prop := ResolveProperty(schema, []workspace.PropertyType{workspace.TypeStatus, workspace.TypeSelect}, statusHints)
		if prop == nil {
			return nil
		}
		option := ResolveOption(prop, facet.Value)
		if option == "" {
			return nil
		}
		return []*workspace.Filter{workspace.Leaf(prop.Name, prop.Type, "equals", option)}

	case FacetAssigneeEmpty:
		prop := ResolveProperty(schema, []workspace.PropertyType{workspace.TypePeople}, assigneeHints)
		if prop == nil {
			return nil
		}
		return []*workspace.Filter{workspace.Leaf(prop.Name, workspace.TypePeople, "is_empty", true)}

	case FacetDate:
		return resolveDateFacet(facet, schema, now)

	case FacetPriority:
		prop := ResolveProperty(schema, []workspace.PropertyType{workspace.TypeSelect, workspace.TypeStatus}, priorityHints)
		if prop == nil {
			return nil
		}
		option := ResolveOption(prop, facet.Value)
		if option == "" {
			return nil
		}
		return []*workspace.Filter{workspace.Leaf(prop.Name, prop.Type, "equals", option)}

	case FacetTags:
		prop := ResolveProperty(schema, []workspace.PropertyType{workspace.TypeMultiSelect}, tagHints)
		if prop == nil {
			return nil
		}
		var leaves []*workspace.Filter
		for _, tag := range facet.Values {
			option := ResolveOption(prop, tag)
			if option == "" {
				continue
			}
			leaves = append(leaves, workspace.Leaf(prop.Name, workspace.TypeMultiSelect, "contains", option))
		}
		return leaves

	default:
		panic(fmt.Sprintf("compile: unhandled facet kind %d", facet.Kind))
	}
}

func resolveDateFacet(facet Facet, schema *workspace.Schema, now time.Time) []*workspace.Filter {
	today := dates.Today(now)

	switch facet.Mode {
	case DateBefore, DateEquals, DateThisWeek:
		prop := ResolveProperty(schema, []workspace.PropertyType{workspace.TypeDate}, dateHints)
		if prop == nil {
			return nil
		}
		switch facet.Mode {
		case DateBefore:
			return []*workspace.Filter{workspace.Leaf(prop.Name, workspace.TypeDate, "before", today)}
		case DateEquals:
			return []*workspace.Filter{workspace.Leaf(prop.Name, workspace.TypeDate, "equals", today)}
		default:
			return []*workspace.Filter{workspace.Leaf(prop.Name, workspace.TypeDate, "this_week", struct{}{})}
		}

	case DateLastEditedToday:
		prop := ResolveProperty(schema, []workspace.PropertyType{workspace.TypeLastEditedTime}, []string{"edited", "modified", "updated", "modificado", "editado"})
		if prop == nil {
			return nil
		}
		return []*workspace.Filter{workspace.Leaf(prop.Name, workspace.TypeLastEditedTime, "on_or_after", today)}

	case DateCreatedToday:
		prop := ResolveProperty(schema, []workspace.PropertyType{workspace.TypeCreatedTime}, []string{"created", "creado", "creada"})
		if prop == nil {
			return nil
		}
		return []*workspace.Filter{workspace.Leaf(prop.Name, workspace.TypeCreatedTime, "on_or_after", today)}

	default:
		return nil
	}
}

package compile

import "strings"

// FacetKind tags one semantic constraint extracted from a free-text query.
type FacetKind int

const (
	FacetStatus FacetKind = iota
	FacetAssigneeEmpty
	FacetDate
	FacetPriority
	FacetTags
)

// String returns the kind name for --explain output.
func (k FacetKind) String() string {
	switch k {
	case FacetStatus:
		return "status"
	case FacetAssigneeEmpty:
		return "assignee_empty"
	case FacetDate:
		return "date"
	case FacetPriority:
		return "priority"
	case FacetTags:
		return "tags"
	default:
		return "unknown"
	}
}

// DateMode narrows a date facet to the query window it describes.
type DateMode int

const (
	DateBefore DateMode = iota
	DateEquals
	DateThisWeek
	DateLastEditedToday
	DateCreatedToday
)

// Facet is one extracted constraint. Kind decides which fields are set:
// status and priority carry Value, tags carries Values, date carries Mode,
// and assignee-empty carries nothing.
type Facet struct {
	Kind   FacetKind
	Value  string
	Values []string
	Mode   DateMode
}

// ExtractFacets tokenizes a free-text query against the bilingual pattern
// tables. At most one status, one date, and one priority facet comes out
// (first match in table order wins); the assignee and tag facets are
// detected independently and can coexist with the others.
func ExtractFacets(query string) []Facet {
	q := strings.ToLower(query)
	var facets []Facet

	if value, ok := firstMatch(q, statusPatterns); ok {
		facets = append(facets, Facet{Kind: FacetStatus, Value: value})
	}

	if containsAny(q, assigneeEmptyTriggers) {
		facets = append(facets, Facet{Kind: FacetAssigneeEmpty})
	}

	if value, ok := firstMatch(q, datePatterns); ok {
		facets = append(facets, Facet{Kind: FacetDate, Mode: dateModeFor(value)})
	}

	if value, ok := firstMatch(q, priorityPatterns); ok {
		facets = append(facets, Facet{Kind: FacetPriority, Value: value})
	}

	if m := tagPattern.FindStringSubmatch(q); m != nil {
		if tags := SplitList(m[1]); len(tags) > 0 {
			facets = append(facets, Facet{Kind: FacetTags, Values: tags})
		}
	}

	return facets
}

func firstMatch(query string, table []patternEntry) (string, bool) {
	for _, entry := range table {
		for _, trigger := range entry.triggers {
			if strings.Contains(query, trigger) {
				return entry.value, true
			}
		}
	}
	return "", false
}

func containsAny(query string, triggers []string) bool {
	for _, t := range triggers {
		if strings.Contains(query, t) {
			return true
		}
	}
	return false
}

func dateModeFor(value string) DateMode {
	switch value {
	case "overdue":
		return DateBefore
	case "today":
		return DateEquals
	case "this week":
		return DateThisWeek
	case "edited today":
		return DateLastEditedToday
	case "created today":
		return DateCreatedToday
	default:
		return DateEquals
	}
}

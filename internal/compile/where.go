package compile

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lcampos/quill/internal/dates"
	"github.com/lcampos/quill/internal/workspace"
)

// whereOperators lists comparison operators in lexing priority. The
// two-character operators must come first so "<=" is never read as "<".
var whereOperators = []string{"!=", "<=", ">=", "=", "<", ">"}

// comparisonKeywords maps a comparison operator to the service's condition
// keyword. Date-family properties use the before/after vocabulary; everything
// else uses the numeric one. Equality is the same for all types.
var (
	dateKeywords = map[string]string{
		"=": "equals", "!=": "does_not_equal",
		"<": "before", ">": "after",
		"<=": "on_or_before", ">=": "on_or_after",
	}
	scalarKeywords = map[string]string{
		"=": "equals", "!=": "does_not_equal",
		"<": "less_than", ">": "greater_than",
		"<=": "less_than_or_equal_to", ">=": "greater_than_or_equal_to",
	}
)

// ParseWarning records a condition dropped while compiling a where clause.
// Unknown distinguishes a property missing from the schema from a value or
// operator the property cannot take, so callers can report the two
// differently without inspecting Message.
type ParseWarning struct {
	Property string
	Unknown  bool
	Message  string
}

// ParseWhere compiles a comma-joined condition string ("A=B,C!=D") against a
// schema. A condition naming an unknown property is dropped with a warning
// rather than failing the clause; a clause where every condition is dropped
// returns a nil filter, which callers must treat as invalid.
func ParseWhere(clause string, schema *workspace.Schema, now time.Time) (*workspace.Filter, []ParseWarning) {
	var (
		leaves   []*workspace.Filter
		warnings []ParseWarning
	)

	for _, cond := range strings.Split(clause, ",") {
		cond = strings.TrimSpace(cond)
		if cond == "" {
			continue
		}

		name, op, value, ok := splitCondition(cond)
		if !ok {
			warnings = append(warnings, ParseWarning{
				Message: fmt.Sprintf("skipping %q: no comparison operator found", cond),
			})
			continue
		}

		prop, found := lookupProperty(schema, name)
		if !found {
			warnings = append(warnings, ParseWarning{
				Property: name,
				Unknown:  true,
				Message:  fmt.Sprintf("skipping %q: unknown property %q", cond, name),
			})
			continue
		}

		leaf, err := whereLeaf(prop, op, value, now)
		if err != nil {
			warnings = append(warnings, ParseWarning{
				Property: prop.Name,
				Message:  fmt.Sprintf("skipping %q: %v", cond, err),
			})
			continue
		}
		leaves = append(leaves, leaf)
	}

	return Compose(leaves), warnings
}

// splitCondition lexes "name OP value", trying multi-character operators
// before single-character ones.
func splitCondition(cond string) (name, op, value string, ok bool) {
	for _, candidate := range whereOperators {
		if i := strings.Index(cond, candidate); i > 0 {
			name = strings.TrimSpace(cond[:i])
			value = strings.TrimSpace(cond[i+len(candidate):])
			return name, candidate, value, true
		}
	}
	return "", "", "", false
}

// lookupProperty finds a schema property by name, tolerating case mismatch.
func lookupProperty(schema *workspace.Schema, name string) (*workspace.Property, bool) {
	if p, ok := schema.Get(name); ok {
		return p, true
	}
	for _, p := range schema.Properties() {
		if strings.EqualFold(p.Name, name) {
			prop := p
			return &prop, true
		}
	}
	return nil, false
}

func whereLeaf(prop *workspace.Property, op, value string, now time.Time) (*workspace.Filter, error) {
	keyword, operand, err := coerceCondition(prop, op, value, now)
	if err != nil {
		return nil, err
	}
	return workspace.Leaf(prop.Name, prop.Type, keyword, operand), nil
}

func coerceCondition(prop *workspace.Property, op, value string, now time.Time) (string, any, error) {
	if isDateFamily(prop.Type) {
		keyword, ok := dateKeywords[op]
		if !ok {
			return "", nil, fmt.Errorf("operator %q not supported", op)
		}
		if resolved, isKeyword := dates.ResolveKeyword(value, now); isKeyword {
			value = resolved
		}
		return keyword, value, nil
	}

	keyword, ok := scalarKeywords[op]
	if !ok {
		return "", nil, fmt.Errorf("operator %q not supported", op)
	}

	switch prop.Type {
	case workspace.TypeNumber:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return "", nil, fmt.Errorf("property %q expects a number, got %q", prop.Name, value)
		}
		return keyword, n, nil
	case workspace.TypeCheckbox:
		return keyword, strings.EqualFold(value, "true"), nil
	default:
		return keyword, value, nil
	}
}

func isDateFamily(t workspace.PropertyType) bool {
	switch t {
	case workspace.TypeDate, workspace.TypeCreatedTime, workspace.TypeLastEditedTime:
		return true
	}
	return false
}

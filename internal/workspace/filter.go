package workspace

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Filter is a query predicate: either a single typed leaf or a one-level
// conjunction of leaves. The service accepts no disjunction and no nesting
// beyond the one `and` wrapper, and neither does this type.
type Filter struct {
	// Leaf fields. Type is the wire key ("status", "date", ...); Operator is
	// the service's condition keyword ("equals", "before", ...).
	Property string
	Type     PropertyType
	Operator string
	Operand  any

	// And holds the conjuncts when this filter is a conjunction. A filter is
	// either a leaf or a conjunction, never both.
	And []*Filter

	// Raw, when set, is emitted verbatim instead of the structured fields.
	// Used for user-supplied filter JSON that skips compilation.
	Raw json.RawMessage
}

// RawFilter wraps pre-built filter JSON for verbatim passthrough.
func RawFilter(raw json.RawMessage) *Filter {
	return &Filter{Raw: raw}
}

// Leaf builds a single typed filter condition.
func Leaf(property string, typ PropertyType, operator string, operand any) *Filter {
	return &Filter{Property: property, Type: typ, Operator: operator, Operand: operand}
}

// Conjunction wraps leaves in an `and` node. It does not flatten or dedupe;
// callers are expected to pass leaves only.
func Conjunction(leaves []*Filter) *Filter {
	return &Filter{And: leaves}
}

// IsConjunction reports whether the filter is an `and` node.
func (f *Filter) IsConjunction() bool {
	return f != nil && f.And != nil
}

// MarshalJSON emits the service wire shape:
//
//	{"property":"Status","status":{"equals":"Done"}}
//	{"and":[...leaves...]}
func (f *Filter) MarshalJSON() ([]byte, error) {
	if len(f.Raw) > 0 {
		return f.Raw, nil
	}
	if f.IsConjunction() {
		return json.Marshal(struct {
			And []*Filter `json:"and"`
		}{And: f.And})
	}
	if f.Property == "" || f.Type == "" || f.Operator == "" {
		return nil, fmt.Errorf("filter leaf missing property, type, or operator")
	}

	cond, err := json.Marshal(map[string]any{f.Operator: f.Operand})
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(`{"property":`)
	prop, err := json.Marshal(f.Property)
	if err != nil {
		return nil, err
	}
	buf.Write(prop)
	buf.WriteByte(',')
	key, err := json.Marshal(string(f.Type))
	if err != nil {
		return nil, err
	}
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(cond)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Sort is one sort instruction for a database query.
type Sort struct {
	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Direction string `json:"direction"`
}

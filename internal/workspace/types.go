// Package workspace defines the data model of the hosted workspace API:
// database schemas, typed property values, filters, and the REST resources
// the client exchanges with the service.
package workspace

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PropertyType identifies a database column type as declared by the service.
type PropertyType string

const (
	TypeTitle          PropertyType = "title"
	TypeRichText       PropertyType = "rich_text"
	TypeNumber         PropertyType = "number"
	TypeCheckbox       PropertyType = "checkbox"
	TypeSelect         PropertyType = "select"
	TypeMultiSelect    PropertyType = "multi_select"
	TypeStatus         PropertyType = "status"
	TypeDate           PropertyType = "date"
	TypeURL            PropertyType = "url"
	TypeEmail          PropertyType = "email"
	TypePhoneNumber    PropertyType = "phone_number"
	TypePeople         PropertyType = "people"
	TypeRelation       PropertyType = "relation"
	TypeFormula        PropertyType = "formula"
	TypeRollup         PropertyType = "rollup"
	TypeFiles          PropertyType = "files"
	TypeCreatedTime    PropertyType = "created_time"
	TypeCreatedBy      PropertyType = "created_by"
	TypeLastEditedTime PropertyType = "last_edited_time"
	TypeLastEditedBy   PropertyType = "last_edited_by"
)

// Option is one enumerated value of a select, multi_select, or status column.
type Option struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Group string `json:"group,omitempty"`
}

// Property is a database column: its name, type, and type-specific config.
type Property struct {
	ID   string       `json:"id,omitempty"`
	Name string       `json:"name"`
	Type PropertyType `json:"type"`

	// Options is populated for select, multi_select, and status columns,
	// in the order the service declares them.
	Options []Option `json:"options,omitempty"`

	// RelationTarget is the related database id for relation columns.
	RelationTarget string `json:"relation_target,omitempty"`

	// ResultType is the computed result type for formula/rollup columns.
	ResultType string `json:"result_type,omitempty"`
}

// IsSelectLike reports whether the property carries enumerated options.
func (p *Property) IsSelectLike() bool {
	switch p.Type {
	case TypeSelect, TypeMultiSelect, TypeStatus:
		return true
	}
	return false
}

// Schema is the ordered set of properties of one database. Order follows the
// service's declaration order, which matters for type-only fallback matching.
type Schema struct {
	props []Property
	index map[string]int // name -> position in props
}

// NewSchema builds a schema from properties in declaration order.
func NewSchema(props ...Property) *Schema {
	s := &Schema{index: make(map[string]int, len(props))}
	for _, p := range props {
		s.add(p)
	}
	return s
}

func (s *Schema) add(p Property) {
	if i, ok := s.index[p.Name]; ok {
		s.props[i] = p
		return
	}
	s.index[p.Name] = len(s.props)
	s.props = append(s.props, p)
}

// Get returns the property with the exact given name.
func (s *Schema) Get(name string) (*Property, bool) {
	if s == nil {
		return nil, false
	}
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return &s.props[i], true
}

// Properties returns all properties in declaration order.
func (s *Schema) Properties() []Property {
	if s == nil {
		return nil
	}
	return s.props
}

// Len returns the number of properties.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.props)
}

// Title returns the schema's title property. Every database has exactly one.
func (s *Schema) Title() (*Property, bool) {
	for i := range s.props {
		if s.props[i].Type == TypeTitle {
			return &s.props[i], true
		}
	}
	return nil, false
}

// UnmarshalJSON decodes the service's `properties` object while preserving
// key order. encoding/json maps would scramble it, so this walks the token
// stream directly.
func (s *Schema) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("schema: expected object, got %v", tok)
	}

	s.props = nil
	s.index = make(map[string]int)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("schema: expected property name, got %v", keyTok)
		}

		var raw rawProperty
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("schema: property %q: %w", name, err)
		}
		s.add(raw.toProperty(name))
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON emits the property list keyed by name, as the service does.
func (s *Schema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range s.props {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// rawProperty mirrors the service's per-property JSON, where the type tag
// doubles as the key of the type-specific config object.
type rawProperty struct {
	ID          string          `json:"id"`
	Type        PropertyType    `json:"type"`
	Select      *optionConfig   `json:"select,omitempty"`
	MultiSelect *optionConfig   `json:"multi_select,omitempty"`
	Status      *statusConfig   `json:"status,omitempty"`
	Relation    *relationConfig `json:"relation,omitempty"`
	Formula     *resultConfig   `json:"formula,omitempty"`
	Rollup      *rollupConfig   `json:"rollup,omitempty"`
}

type optionConfig struct {
	Options []Option `json:"options"`
}

type statusConfig struct {
	Options []Option      `json:"options"`
	Groups  []statusGroup `json:"groups"`
}

type statusGroup struct {
	Name      string   `json:"name"`
	OptionIDs []string `json:"option_ids"`
}

type relationConfig struct {
	DatabaseID string `json:"database_id"`
}

type resultConfig struct {
	Expression string `json:"expression,omitempty"`
}

type rollupConfig struct {
	Function string `json:"function,omitempty"`
}

func (r rawProperty) toProperty(name string) Property {
	p := Property{ID: r.ID, Name: name, Type: r.Type}
	switch {
	case r.Select != nil:
		p.Options = r.Select.Options
	case r.MultiSelect != nil:
		p.Options = r.MultiSelect.Options
	case r.Status != nil:
		p.Options = r.Status.Options
		// Attach group names so resolvers can report them.
		byID := make(map[string]string)
		for _, g := range r.Status.Groups {
			for _, id := range g.OptionIDs {
				byID[id] = g.Name
			}
		}
		for i := range p.Options {
			p.Options[i].Group = byID[p.Options[i].ID]
		}
	case r.Relation != nil:
		p.RelationTarget = r.Relation.DatabaseID
	}
	return p
}

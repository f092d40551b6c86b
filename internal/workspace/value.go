package workspace

import "encoding/json"

// WritePayload maps property names to typed value wrappers for a create or
// update call. Keys are not validated locally; an unknown name is the
// service's to reject.
type WritePayload map[string]PropertyValue

// PropertyValue is one typed write wrapper, e.g. {"select":{"name":"Done"}}.
// Values are constructed through the typed helpers below and marshal straight
// to the wire shape.
type PropertyValue struct {
	v any
}

// MarshalJSON implements json.Marshaler.
func (pv PropertyValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(pv.v)
}

// Raw returns the underlying wrapper for inspection in tests and --explain.
func (pv PropertyValue) Raw() any {
	return pv.v
}

// SelectValue wraps a single select option by name.
func SelectValue(name string) PropertyValue {
	return PropertyValue{v: map[string]any{"select": map[string]any{"name": name}}}
}

// MultiSelectValue wraps a list of option names.
func MultiSelectValue(names []string) PropertyValue {
	opts := make([]map[string]any, len(names))
	for i, n := range names {
		opts[i] = map[string]any{"name": n}
	}
	return PropertyValue{v: map[string]any{"multi_select": opts}}
}

// StatusValue wraps a status option by name.
func StatusValue(name string) PropertyValue {
	return PropertyValue{v: map[string]any{"status": map[string]any{"name": name}}}
}

// NumberValue wraps a number.
func NumberValue(n float64) PropertyValue {
	return PropertyValue{v: map[string]any{"number": n}}
}

// CheckboxValue wraps a boolean.
func CheckboxValue(b bool) PropertyValue {
	return PropertyValue{v: map[string]any{"checkbox": b}}
}

// DateValue wraps a date start (ISO date or date-time string).
func DateValue(start string) PropertyValue {
	return PropertyValue{v: map[string]any{"date": map[string]any{"start": start}}}
}

// URLValue wraps a URL.
func URLValue(u string) PropertyValue {
	return PropertyValue{v: map[string]any{"url": u}}
}

// EmailValue wraps an email address.
func EmailValue(e string) PropertyValue {
	return PropertyValue{v: map[string]any{"email": e}}
}

// TitleValue wraps plain text as a title rich-text array.
func TitleValue(text string) PropertyValue {
	return PropertyValue{v: map[string]any{"title": richTextArray(text)}}
}

// RichTextValue wraps plain text as a rich_text array.
func RichTextValue(text string) PropertyValue {
	return PropertyValue{v: map[string]any{"rich_text": richTextArray(text)}}
}

// RawValue passes pre-built JSON through untouched, for callers that supply
// the full wrapper themselves.
func RawValue(raw json.RawMessage) PropertyValue {
	return PropertyValue{v: raw}
}

func richTextArray(text string) []map[string]any {
	return []map[string]any{
		{"type": "text", "text": map[string]any{"content": text}},
	}
}

package compile

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/lcampos/quill/internal/workspace"
)

// EncodeWritePayload turns repeatable `key=value` arguments into a typed
// write payload. Property names are not validated against any schema here;
// an unknown name is the service's contract to reject. A duplicated key is a
// plain map overwrite, so the last occurrence wins.
func EncodeWritePayload(pairs []string) (workspace.WritePayload, error) {
	payload := make(workspace.WritePayload, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid property %q: expected key=value", pair)
		}
		payload[key] = EncodeWriteValue(value)
	}
	return payload, nil
}

// EncodeWriteValue picks the typed wrapper for one raw value. Values that
// look like JSON are passed through verbatim when they parse; otherwise they
// are treated as literal text and classified like any other string.
func EncodeWriteValue(value string) workspace.PropertyValue {
	if strings.HasPrefix(value, "[") || strings.HasPrefix(value, "{") {
		if json.Valid([]byte(value)) {
			return workspace.RawValue(json.RawMessage(value))
		}
		// Not valid JSON after all; fall through and treat as text.
	}

	switch Infer(value) {
	case KindBoolean:
		return workspace.CheckboxValue(value == "true")
	case KindNumber:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			// The number pattern already matched; this is unreachable for
			// realistic input, but a select wrapper is a safe fall-back.
			return workspace.SelectValue(value)
		}
		return workspace.NumberValue(n)
	case KindDate:
		return workspace.DateValue(value)
	case KindURL:
		return workspace.URLValue(value)
	case KindEmail:
		return workspace.EmailValue(value)
	case KindMultiValue:
		return workspace.MultiSelectValue(SplitList(value))
	default:
		return workspace.SelectValue(value)
	}
}

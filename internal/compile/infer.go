// Package compile turns loosely-typed command-line input into the typed
// payloads the workspace service requires: write payloads for creating and
// updating records, and filter predicates for querying them. It is the only
// place in the codebase doing inference and fuzzy matching; everything it
// produces is handed as-is to the API client.
package compile

import (
	"regexp"
	"strings"
)

// Kind classifies a raw string by shape. It drives both write encoding and
// filter auto-detection, so all call sites share one classification.
type Kind int

const (
	KindDefault Kind = iota
	KindBoolean
	KindNumber
	KindDate
	KindURL
	KindEmail
	KindMultiValue
)

// String returns the kind name for diagnostics and --explain output.
func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindURL:
		return "url"
	case KindEmail:
		return "email"
	case KindMultiValue:
		return "multi_value"
	default:
		return "text"
	}
}

var (
	numberPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)
	// Prefix match only so a full ISO date-time still classifies as a date.
	// The comma guard at the call site keeps "2024-12-31,2025-01-01" out.
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
)

// Infer classifies a raw value string. The check order is fixed and the
// rules are not mutually exclusive, so reordering changes behavior:
// "42,43" is a multi_value, not two numbers, and "2024-12-31,2025-01-01"
// is a multi_value, not a date.
func Infer(value string) Kind {
	switch {
	case value == "true" || value == "false":
		return KindBoolean
	case numberPattern.MatchString(value):
		return KindNumber
	case datePattern.MatchString(value) && !strings.Contains(value, ","):
		return KindDate
	case strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://"):
		return KindURL
	case strings.Contains(value, "@") && strings.Contains(value, "."):
		return KindEmail
	case strings.Contains(value, ","):
		return KindMultiValue
	default:
		return KindDefault
	}
}

// SplitList splits a multi_value string into trimmed items, dropping empties.
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

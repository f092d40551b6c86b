package compile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lcampos/quill/internal/workspace"
)

// EncodePredicate builds one typed filter leaf from an explicit type tag.
// The caller supplies ground truth, so no inference happens on this path.
// "text" is accepted as an alias for rich_text; unrecognized tags produce a
// generic {type: {operator: value}} condition so new service types keep
// working without a client release.
func EncodePredicate(property, operator, value string, typ workspace.PropertyType) (*workspace.Filter, error) {
	if isEmptyOperator(operator) {
		return workspace.Leaf(property, typ, operator, true), nil
	}
	switch typ {
	case workspace.TypeStatus, workspace.TypeSelect, workspace.TypeMultiSelect:
		return workspace.Leaf(property, typ, operator, value), nil
	case "text", workspace.TypeRichText, workspace.TypeTitle:
		if typ == "text" {
			typ = workspace.TypeRichText
		}
		return workspace.Leaf(property, typ, operator, value), nil
	case workspace.TypeNumber:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("number filter value %q: %w", value, err)
		}
		return workspace.Leaf(property, typ, operator, n), nil
	case workspace.TypeCheckbox:
		return workspace.Leaf(property, typ, operator, value == "true"), nil
	case workspace.TypeDate:
		return workspace.Leaf(property, typ, operator, value), nil
	default:
		return workspace.Leaf(property, typ, operator, value), nil
	}
}

// EncodePredicateAuto builds a leaf without a type tag, detecting only
// boolean, number, and date shapes. Everything else defaults to select: a
// narrower default than write encoding, because ad hoc filters overwhelmingly
// target select and status columns. Callers needing text, url, or email
// filters must pass the type explicitly.
func EncodePredicateAuto(property, operator, value string) *workspace.Filter {
	if isEmptyOperator(operator) {
		return workspace.Leaf(property, workspace.TypeSelect, operator, true)
	}
	switch Infer(value) {
	case KindBoolean:
		return workspace.Leaf(property, workspace.TypeCheckbox, operator, value == "true")
	case KindNumber:
		n, _ := strconv.ParseFloat(value, 64)
		return workspace.Leaf(property, workspace.TypeNumber, operator, n)
	case KindDate:
		return workspace.Leaf(property, workspace.TypeDate, operator, value)
	default:
		return workspace.Leaf(property, workspace.TypeSelect, operator, value)
	}
}

// isEmptyOperator reports whether the operator takes a boolean marker
// operand rather than a comparison value.
func isEmptyOperator(op string) bool {
	return op == "is_empty" || op == "is_not_empty"
}

// ParsePropertyType validates a user-supplied type tag for the explicit
// filter path.
func ParsePropertyType(s string) (workspace.PropertyType, error) {
	tag := workspace.PropertyType(strings.ToLower(strings.TrimSpace(s)))
	switch tag {
	case "text",
		workspace.TypeTitle, workspace.TypeRichText, workspace.TypeNumber,
		workspace.TypeCheckbox, workspace.TypeSelect, workspace.TypeMultiSelect,
		workspace.TypeStatus, workspace.TypeDate, workspace.TypeURL,
		workspace.TypeEmail, workspace.TypePhoneNumber, workspace.TypePeople,
		workspace.TypeRelation, workspace.TypeFormula, workspace.TypeRollup,
		workspace.TypeFiles, workspace.TypeCreatedTime, workspace.TypeCreatedBy,
		workspace.TypeLastEditedTime, workspace.TypeLastEditedBy:
		return tag, nil
	}
	return "", fmt.Errorf("unknown property type %q", s)
}

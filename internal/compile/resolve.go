package compile

import (
	"strings"

	"github.com/lcampos/quill/internal/workspace"
)

// ResolveProperty maps an abstract facet onto a concrete schema column.
// Three tiers, each scanning the whole schema in declaration order before
// falling through: exact name match against a hint, substring match in
// either direction, then the first column of an allowed type regardless of
// name. Only a schema with no column of an allowed type yields nil.
func ResolveProperty(schema *workspace.Schema, allowed []workspace.PropertyType, hints []string) *workspace.Property {
	if schema == nil {
		return nil
	}
	props := schema.Properties()

	for i := range props {
		p := &props[i]
		if !typeAllowed(p.Type, allowed) {
			continue
		}
		for _, hint := range hints {
			if strings.EqualFold(p.Name, hint) {
				return p
			}
		}
	}

	for i := range props {
		p := &props[i]
		if !typeAllowed(p.Type, allowed) {
			continue
		}
		name := strings.ToLower(p.Name)
		for _, hint := range hints {
			h := strings.ToLower(hint)
			if strings.Contains(name, h) || strings.Contains(h, name) {
				return p
			}
		}
	}

	for i := range props {
		if typeAllowed(props[i].Type, allowed) {
			return &props[i]
		}
	}
	return nil
}

func typeAllowed(t workspace.PropertyType, allowed []workspace.PropertyType) bool {
	for _, a := range allowed {
		if t == a {
			return true
		}
	}
	return false
}

// ResolveOption maps a semantic target value ("done") onto one of a
// property's declared options. Exact match first, then substring in either
// direction, then the canonical synonym table: a synonym group is selected
// by substring against the target, and its entries are matched by substring
// against the option names. No match returns "", and the calling facet is
// dropped from the composed filter rather than failing the find.
func ResolveOption(prop *workspace.Property, target string) string {
	if prop == nil || len(prop.Options) == 0 {
		return ""
	}
	want := strings.ToLower(strings.TrimSpace(target))
	if want == "" {
		return ""
	}

	for _, opt := range prop.Options {
		if strings.EqualFold(opt.Name, want) {
			return opt.Name
		}
	}

	for _, opt := range prop.Options {
		name := strings.ToLower(opt.Name)
		if strings.Contains(name, want) || strings.Contains(want, name) {
			return opt.Name
		}
	}

	for _, group := range optionSynonyms {
		if !synonymGroupMatches(group.value, group.triggers, want) {
			continue
		}
		for _, opt := range prop.Options {
			name := strings.ToLower(opt.Name)
			for _, syn := range group.triggers {
				if strings.Contains(name, syn) || strings.Contains(syn, name) {
					return opt.Name
				}
			}
		}
	}
	return ""
}

func synonymGroupMatches(canonical string, synonyms []string, want string) bool {
	if strings.Contains(want, canonical) || strings.Contains(canonical, want) {
		return true
	}
	for _, syn := range synonyms {
		if strings.Contains(want, syn) || strings.Contains(syn, want) {
			return true
		}
	}
	return false
}

// Package props implements the property schema contract for sections. A
// descriptor declares its expected properties as a map from name to a
// type-tag string; this package parses those tags into cty types and
// validates a concrete props map against them.
//
// The tag grammar is a bare type name (`string`, `number`, `bool`), an
// array marker suffix (`T[]`, repeatable), and an optional marker as the
// final character (`?`). So `string[]?` is an optional list of strings.
package props

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Spec is the parsed form of a single type tag.
type Spec struct {
	Type     cty.Type
	Optional bool
}

// ParseTag parses one type-tag string into its Spec.
func ParseTag(tag string) (Spec, error) {
	var spec Spec

	rest := tag
	if strings.HasSuffix(rest, "?") {
		spec.Optional = true
		rest = strings.TrimSuffix(rest, "?")
	}

	depth := 0
	for strings.HasSuffix(rest, "[]") {
		depth++
		rest = strings.TrimSuffix(rest, "[]")
	}

	var base cty.Type
	switch rest {
	case "string":
		base = cty.String
	case "number":
		base = cty.Number
	case "bool":
		base = cty.Bool
	default:
		return Spec{}, fmt.Errorf("unknown type tag %q", tag)
	}

	for i := 0; i < depth; i++ {
		base = cty.List(base)
	}
	spec.Type = base
	return spec, nil
}

// ParseSchema parses a full descriptor schema. It fails on the first
// malformed tag, naming the offending property.
func ParseSchema(schema map[string]string) (map[string]Spec, error) {
	specs := make(map[string]Spec, len(schema))
	for name, tag := range schema {
		spec, err := ParseTag(tag)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}
		specs[name] = spec
	}
	return specs, nil
}

// Validate checks a props map against a descriptor schema and returns one
// human-readable string per violation. It never fails hard: malformed tags
// surface as violations too, and the caller decides severity. Violations
// are sorted by property name so output is deterministic.
func Validate(schema map[string]string, values map[string]cty.Value) []string {
	var violations []string

	for name, tag := range schema {
		spec, err := ParseTag(tag)
		if err != nil {
			violations = append(violations, fmt.Sprintf("property %q: %v", name, err))
			continue
		}

		val, present := values[name]
		if !present || val.IsNull() {
			if !spec.Optional {
				violations = append(violations, fmt.Sprintf("required property %q (type %s) is missing", name, tag))
			}
			continue
		}

		if spec.Type.IsListType() && !val.Type().IsListType() && !val.Type().IsTupleType() {
			violations = append(violations, fmt.Sprintf("property %q must be a sequence of %s, got %s", name, spec.Type.ElementType().FriendlyName(), val.Type().FriendlyName()))
			continue
		}

		if _, err := convert.Convert(val, spec.Type); err != nil {
			violations = append(violations, fmt.Sprintf("property %q must have type %s: %v", name, tag, err))
		}
	}

	for name := range values {
		if _, declared := schema[name]; !declared {
			violations = append(violations, fmt.Sprintf("property %q is not declared in the section schema", name))
		}
	}

	sort.Strings(violations)
	return violations
}

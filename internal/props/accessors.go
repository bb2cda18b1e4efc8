package props

import (
	"github.com/zclconf/go-cty/cty"
)

// String reads a string property, returning fallback when the property is
// absent, null, or not a string. Sections use these accessors so that a
// sloppy props map degrades to defaults instead of panicking mid-render.
func String(values map[string]cty.Value, name, fallback string) string {
	v, ok := values[name]
	if !ok || v.IsNull() || v.Type() != cty.String {
		return fallback
	}
	return v.AsString()
}

// StringList reads a sequence property as a string slice. Both lists and
// tuples qualify; non-string elements and anything else yield nil.
func StringList(values map[string]cty.Value, name string) []string {
	v, ok := values[name]
	if !ok || v.IsNull() {
		return nil
	}
	if !v.Type().IsListType() && !v.Type().IsTupleType() {
		return nil
	}

	var out []string
	for it := v.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		if ev.IsNull() || ev.Type() != cty.String {
			return nil
		}
		out = append(out, ev.AsString())
	}
	return out
}

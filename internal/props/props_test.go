package props

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestParseTag(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tag      string
		want     cty.Type
		optional bool
	}{
		{"string", cty.String, false},
		{"number", cty.Number, false},
		{"bool?", cty.Bool, true},
		{"string[]", cty.List(cty.String), false},
		{"string[]?", cty.List(cty.String), true},
		{"number[][]", cty.List(cty.List(cty.Number)), false},
	}

	for _, tc := range cases {
		t.Run(tc.tag, func(t *testing.T) {
			t.Parallel()
			spec, err := ParseTag(tc.tag)
			require.NoError(t, err)
			require.True(t, spec.Type.Equals(tc.want), "parsed type %s, want %s", spec.Type.FriendlyName(), tc.want.FriendlyName())
			require.Equal(t, tc.optional, spec.Optional)
		})
	}
}

func TestParseTag_Malformed(t *testing.T) {
	t.Parallel()

	for _, tag := range []string{"", "object", "string?[]", "[]string"} {
		_, err := ParseTag(tag)
		require.Error(t, err, "tag %q should not parse", tag)
	}
}

func TestValidate_RequiredMissing(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	schema := map[string]string{"title": "string", "tagline": "string?"}

	// --- Act ---
	violations := Validate(schema, map[string]cty.Value{})

	// --- Assert ---
	require.Len(t, violations, 1, "only the required property should be reported")
	require.Contains(t, violations[0], `"title"`)
}

func TestValidate_ArrayTagRequiresSequence(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	schema := map[string]string{"items": "string[]"}

	// --- Act ---
	violations := Validate(schema, map[string]cty.Value{
		"items": cty.StringVal("not-a-sequence"),
	})

	// --- Assert ---
	require.Len(t, violations, 1)
	require.Contains(t, violations[0], "must be a sequence")
}

func TestValidate_TupleConvertsToList(t *testing.T) {
	t.Parallel()

	// HCL list literals evaluate to tuples; they must satisfy an array tag.
	schema := map[string]string{"items": "string[]"}
	values := map[string]cty.Value{
		"items": cty.TupleVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}),
	}

	require.Empty(t, Validate(schema, values))
}

func TestValidate_UndeclaredProperty(t *testing.T) {
	t.Parallel()

	violations := Validate(map[string]string{}, map[string]cty.Value{
		"surprise": cty.True,
	})

	require.Len(t, violations, 1)
	require.Contains(t, violations[0], "not declared")
}

func TestValidate_NullCountsAsAbsent(t *testing.T) {
	t.Parallel()

	schema := map[string]string{"title": "string", "tagline": "string?"}
	values := map[string]cty.Value{
		"title":   cty.StringVal("Welcome"),
		"tagline": cty.NullVal(cty.String),
	}

	require.Empty(t, Validate(schema, values))
}

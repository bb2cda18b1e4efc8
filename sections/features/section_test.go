package features_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/landinggo/sections/features"
	"github.com/zclconf/go-cty/cty"
)

func TestComponent_SplitsItemsIntoCards(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	values := map[string]cty.Value{
		"heading": cty.StringVal("Why us"),
		"items": cty.TupleVal([]cty.Value{
			cty.StringVal("Fast|Ships in seconds."),
			cty.StringVal("Sturdy"),
		}),
	}

	// --- Act ---
	node, err := features.Component{}.Render(context.Background(), values)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, node.Render(&sb))
	html := sb.String()

	// --- Assert ---
	require.Contains(t, html, "Why us")
	require.Contains(t, html, "<h3>Fast</h3>")
	require.Contains(t, html, "Ships in seconds.")
	require.Contains(t, html, "<h3>Sturdy</h3>")
}

func TestComponent_NoItemsRendersEmptyGrid(t *testing.T) {
	t.Parallel()

	node, err := features.Component{}.Render(context.Background(), nil)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, node.Render(&sb))

	require.Contains(t, sb.String(), "features-grid")
}

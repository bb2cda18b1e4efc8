package hero_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/landinggo/internal/flags"
	"github.com/vk/landinggo/internal/registry"
	"github.com/vk/landinggo/sections/hero"
	"github.com/zclconf/go-cty/cty"
)

func TestSection_RegistersAsLoader(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	reg := registry.New(flags.New(map[string]bool{hero.ID: true}, false))
	hero.Section{}.Register(reg)

	// --- Assert: registration is lazy, nothing is resolved yet. ---
	require.False(t, reg.Has(hero.ID))
	require.Equal(t, registry.StateNotLoaded, reg.LoadStatus()[hero.ID])

	// --- Act ---
	entry, err := reg.Load(context.Background(), hero.ID)

	// --- Assert ---
	require.NoError(t, err)
	require.NotNil(t, entry)
	require.Equal(t, hero.ID, entry.Descriptor.ID)
	require.Equal(t, 0, entry.Descriptor.Order)
	require.True(t, reg.Has(hero.ID))
}

func TestComponent_RenderWithProps(t *testing.T) {
	t.Parallel()

	node, err := hero.Component{}.Render(context.Background(), map[string]cty.Value{
		"title":     cty.StringVal("Ship it"),
		"tagline":   cty.StringVal("Today."),
		"cta_label": cty.StringVal("Start"),
		"cta_href":  cty.StringVal("#pricing"),
	})
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, node.Render(&sb))
	html := sb.String()

	require.Contains(t, html, "Ship it")
	require.Contains(t, html, "Today.")
	require.Contains(t, html, `href="#pricing"`)
}

func TestComponent_RenderWithDefaults(t *testing.T) {
	t.Parallel()

	node, err := hero.Component{}.Render(context.Background(), nil)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, node.Render(&sb))

	require.Contains(t, sb.String(), "Welcome")
}

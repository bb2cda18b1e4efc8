package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/landinggo/internal/config"
	"github.com/vk/landinggo/internal/render"
	g "maragu.dev/gomponents"
)

func renderToString(t *testing.T, node g.Node) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, node.Render(&sb))
	return sb.String()
}

func TestPage_Shell(t *testing.T) {
	t.Parallel()

	site := &config.Site{Title: "Acme", Tagline: "Better anvils", Lang: "en"}

	html := renderToString(t, render.Page(site, g.Text("body here")))

	require.True(t, strings.HasPrefix(html, "<!doctype html>"))
	require.Contains(t, html, `lang="en"`)
	require.Contains(t, html, "<title>Acme</title>")
	require.Contains(t, html, "body here")
}

func TestWrap_StableIDAndTestHook(t *testing.T) {
	t.Parallel()

	html := renderToString(t, render.Wrap("pricing", g.Text("x")))

	require.Contains(t, html, `<section id="section-pricing" data-testid="section-pricing">`)
}

func TestPlaceholder_NamesTheSection(t *testing.T) {
	t.Parallel()

	html := renderToString(t, render.Placeholder("pricing", "Pricing"))

	require.Contains(t, html, `id="section-pricing"`)
	require.Contains(t, html, "Loading Pricing")
}

func TestFallbacks_OfferTheRightRecovery(t *testing.T) {
	t.Parallel()

	loadHTML := renderToString(t, render.LoadFallback("pricing", "Pricing"))
	renderHTML := renderToString(t, render.RenderFallback("pricing", "Pricing", ""))

	// Load failure: full-page reload only.
	require.Contains(t, loadHTML, `href="/"`)
	require.NotContains(t, loadHTML, "retry")

	// Render failure: scoped retry, no page reload.
	require.Contains(t, renderHTML, `action="/sections/pricing/retry"`)
	require.NotContains(t, renderHTML, `href="/"`)
}

func TestRenderFallback_DetailOnlyWhenGiven(t *testing.T) {
	t.Parallel()

	without := renderToString(t, render.RenderFallback("hero", "Hero", ""))
	with := renderToString(t, render.RenderFallback("hero", "Hero", "boom"))

	require.NotContains(t, without, "section-fallback-detail")
	require.Contains(t, with, "boom")
}

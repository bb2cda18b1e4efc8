// Package render holds the shared presentation pieces of the page: the
// document shell and the generic section chrome (wrapper, loading
// placeholder, failure fallbacks). Section-specific markup lives with each
// section package.
package render

import (
	"fmt"

	"github.com/vk/landinggo/internal/config"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// DOMID returns the stable DOM identifier for a section. The same value is
// used as the test hook, so both markup and tests address sections the same
// way.
func DOMID(id string) string {
	return "section-" + id
}

// Page renders the full document shell around the composed section list.
func Page(site *config.Site, sections ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang(site.Lang),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(site.Title)),
			),
			h.Body(
				h.Main(h.Class("landing"), g.Group(sections)),
			),
		),
	)
}

// Wrap surrounds section content with the stable section element carrying
// the DOM id and test hook.
func Wrap(id string, content g.Node) g.Node {
	domID := DOMID(id)
	return h.Section(
		h.ID(domID),
		g.Attr("data-testid", domID),
		content,
	)
}

// Placeholder is rendered while a section is still loading.
func Placeholder(id, name string) g.Node {
	return Wrap(id, h.Div(
		h.Class("section-placeholder"),
		h.P(g.Text(fmt.Sprintf("Loading %s…", name))),
	))
}

// LoadFallback is rendered when a section's load failed. Recovery is a
// full-page reload; a scoped retry cannot help when the section's code or
// config never arrived.
func LoadFallback(id, name string) g.Node {
	return Wrap(id, h.Div(
		h.Class("section-fallback section-fallback-load"),
		h.P(g.Text(fmt.Sprintf("%s could not be loaded.", name))),
		h.A(h.Href("/"), g.Text("Reload page")),
	))
}

// RenderFallback is rendered when an already-loaded section failed during
// its render pass. The retry is scoped to the one section. detail is only
// non-empty in dev mode; end users never see error internals.
func RenderFallback(id, name, detail string) g.Node {
	return Wrap(id, h.Div(
		h.Class("section-fallback section-fallback-render"),
		h.P(g.Text(fmt.Sprintf("%s is unavailable right now.", name))),
		g.If(detail != "", h.Pre(h.Class("section-fallback-detail"), g.Text(detail))),
		h.FormEl(
			h.Method("post"),
			h.Action(fmt.Sprintf("/sections/%s/retry", id)),
			h.Button(h.Type("submit"), g.Text("Try again")),
		),
	))
}

// Package hero provides the always-on opening section of the page. It is
// the one section that goes through the registry's loader table instead of
// eager registration, so the coalesced load path is exercised on every
// page assembly.
package hero

import (
	"context"

	"github.com/vk/landinggo/internal/props"
	"github.com/vk/landinggo/internal/registry"
	"github.com/zclconf/go-cty/cty"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ID is the section identifier.
const ID = "hero"

// Component renders the hero banner.
type Component struct{}

// Render implements registry.Component.
func (Component) Render(ctx context.Context, values map[string]cty.Value) (g.Node, error) {
	title := props.String(values, "title", "Welcome")
	tagline := props.String(values, "tagline", "")
	ctaLabel := props.String(values, "cta_label", "")
	ctaHref := props.String(values, "cta_href", "#contact")

	return h.Div(
		h.Class("hero"),
		h.H1(h.Class("hero-title"), g.Text(title)),
		g.If(tagline != "", h.P(h.Class("hero-tagline"), g.Text(tagline))),
		g.If(ctaLabel != "", h.A(h.Class("hero-cta"), h.Href(ctaHref), g.Text(ctaLabel))),
	), nil
}

// Section wires the hero into a registry.
type Section struct{}

// Register adds the hero to the loadable allow-list. The descriptor and
// component are produced on first load and cached by the registry for the
// process lifetime.
func (Section) Register(r *registry.Registry) {
	r.RegisterLoader(ID, func(ctx context.Context) (*registry.Entry, error) {
		return &registry.Entry{
			Descriptor: registry.Descriptor{
				ID:      ID,
				Name:    "Hero",
				Version: "1.2.0",
				Enabled: true,
				Schema: map[string]string{
					"title":     "string",
					"tagline":   "string?",
					"cta_label": "string?",
					"cta_href":  "string?",
				},
				Order: 0,
			},
			Component: Component{},
		}, nil
	})
}

// Package features provides the feature-highlights section.
package features

import (
	"context"
	"strings"

	"github.com/vk/landinggo/internal/props"
	"github.com/vk/landinggo/internal/registry"
	"github.com/zclconf/go-cty/cty"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ID is the section identifier.
const ID = "features"

// Component renders the feature card grid. Each item is a "Title|Blurb"
// pair; items without a separator render as title-only cards.
type Component struct{}

// Render implements registry.Component.
func (Component) Render(ctx context.Context, values map[string]cty.Value) (g.Node, error) {
	heading := props.String(values, "heading", "Features")
	items := props.StringList(values, "items")

	return h.Div(
		h.Class("features"),
		h.H2(h.Class("features-heading"), g.Text(heading)),
		h.Div(
			h.Class("features-grid"),
			g.Group(g.Map(items, func(item string) g.Node {
				title, blurb, _ := strings.Cut(item, "|")
				return h.Div(
					h.Class("feature-card"),
					h.H3(g.Text(strings.TrimSpace(title))),
					g.If(blurb != "", h.P(g.Text(strings.TrimSpace(blurb)))),
				)
			})),
		),
	), nil
}

// Section wires the features section into a registry.
type Section struct{}

// Register implements registry.Section.
func (Section) Register(r *registry.Registry) {
	r.Register(ID, &registry.Entry{
		Descriptor: registry.Descriptor{
			ID:      ID,
			Name:    "Features",
			Version: "1.1.0",
			Enabled: true,
			Schema: map[string]string{
				"heading": "string?",
				"items":   "string[]",
			},
			Order: 10,
		},
		Component: Component{},
	})
}

// Package pricing provides the pricing table section. It declares a
// dependency on the features section: a pricing table that references
// capabilities the page never showed reads as broken marketing.
package pricing

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
const ID = "pricing"

// Component renders the pricing plans. Each plan is "Name|Price|Blurb".
type Component struct{}

// Render implements registry.Component.
func (Component) Render(ctx context.Context, values map[string]cty.Value) (g.Node, error) {
	heading := props.String(values, "heading", "Pricing")
	plans := props.StringList(values, "plans")

	return h.Div(
		h.Class("pricing"),
		h.H2(h.Class("pricing-heading"), g.Text(heading)),
		h.Div(
			h.Class("pricing-grid"),
			g.Group(g.Map(plans, func(plan string) g.Node {
				parts := strings.SplitN(plan, "|", 3)
				for len(parts) < 3 {
					parts = append(parts, "")
				}
				return h.Div(
					h.Class("pricing-card"),
					h.H3(g.Text(strings.TrimSpace(parts[0]))),
					g.If(parts[1] != "", h.P(h.Class("pricing-price"), g.Text(strings.TrimSpace(parts[1])))),
					g.If(parts[2] != "", h.P(g.Text(strings.TrimSpace(parts[2])))),
				)
			})),
		),
	), nil
}

// Section wires the pricing section into a registry.
type Section struct{}

// Register implements registry.Section.
func (Section) Register(r *registry.Registry) {
	r.Register(ID, &registry.Entry{
		Descriptor: registry.Descriptor{
			ID:           ID,
			Name:         "Pricing",
			Version:      "1.0.1",
			Enabled:      true,
			Dependencies: []string{"features"},
			Schema: map[string]string{
				"heading": "string?",
				"plans":   "string[]",
			},
			Order: 20,
		},
		Component: Component{},
	})
}

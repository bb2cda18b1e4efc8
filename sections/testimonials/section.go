// Package testimonials provides the customer-quotes section.
package testimonials

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
const ID = "testimonials"

// Component renders the quote list. Each quote is "Text|Attribution".
type Component struct{}

// Render implements registry.Component.
func (Component) Render(ctx context.Context, values map[string]cty.Value) (g.Node, error) {
	heading := props.String(values, "heading", "What people say")
	quotes := props.StringList(values, "quotes")

	return h.Div(
		h.Class("testimonials"),
		h.H2(h.Class("testimonials-heading"), g.Text(heading)),
		h.Ul(
			h.Class("testimonials-list"),
			g.Group(g.Map(quotes, func(quote string) g.Node {
				text, author, _ := strings.Cut(quote, "|")
				return h.Li(
					h.Class("testimonial"),
					h.BlockQuote(g.Text(strings.TrimSpace(text))),
					g.If(author != "", h.P(h.Class("testimonial-author"), g.Text(strings.TrimSpace(author)))),
				)
			})),
		),
	), nil
}

// Section wires the testimonials section into a registry.
type Section struct{}

// Register implements registry.Section.
func (Section) Register(r *registry.Registry) {
	r.Register(ID, &registry.Entry{
		Descriptor: registry.Descriptor{
			ID:      ID,
			Name:    "Testimonials",
			Version: "1.0.0",
			Enabled: true,
			Schema: map[string]string{
				"heading": "string?",
				"quotes":  "string[]",
			},
			Order: 30,
		},
		Component: Component{},
	})
}

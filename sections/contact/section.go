// Package contact provides the closing call-to-action section. It depends
// on the hero: the contact block repeats the promise the hero opens with.
package contact

import (
	"context"

	"github.com/vk/landinggo/internal/props"
	"github.com/vk/landinggo/internal/registry"
	"github.com/zclconf/go-cty/cty"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ID is the section identifier.
const ID = "contact"

// Component renders the contact block.
type Component struct{}

// Render implements registry.Component.
func (Component) Render(ctx context.Context, values map[string]cty.Value) (g.Node, error) {
	heading := props.String(values, "heading", "Get in touch")
	email := props.String(values, "email", "")
	blurb := props.String(values, "blurb", "")

	return h.Div(
		h.Class("contact"),
		h.H2(h.Class("contact-heading"), g.Text(heading)),
		g.If(blurb != "", h.P(g.Text(blurb))),
		g.If(email != "", h.A(h.Class("contact-email"), h.Href("mailto:"+email), g.Text(email))),
	), nil
}

// Section wires the contact section into a registry.
type Section struct{}

// Register implements registry.Section.
func (Section) Register(r *registry.Registry) {
	r.Register(ID, &registry.Entry{
		Descriptor: registry.Descriptor{
			ID:           ID,
			Name:         "Contact",
			Version:      "1.0.0",
			Enabled:      true,
			Dependencies: []string{"hero"},
			Schema: map[string]string{
				"heading": "string?",
				"blurb":   "string?",
				"email":   "string",
			},
			Order: 40,
		},
		Component: Component{},
	})
}

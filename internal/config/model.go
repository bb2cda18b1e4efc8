package config

import (
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of the entire site
// configuration: page metadata plus the per-section settings blocks.
type Model struct {
	Site     *Site
	Sections map[string]*Section
}

// Site holds page-level metadata rendered into the document shell.
type Site struct {
	Title   string
	Tagline string
	Lang    string
}

// Section is the format-agnostic representation of a `section` block. It
// carries the operator-facing knobs for one section: whether it is enabled
// and the content properties passed to its component.
type Section struct {
	ID      string
	Enabled *bool
	Props   map[string]cty.Value
}

// NewModel returns an empty model with initialized collections.
func NewModel() *Model {
	return &Model{
		Site:     &Site{},
		Sections: make(map[string]*Section),
	}
}

// FlagTable derives the feature-flag defaults from the section blocks. A
// section absent from the config, or present without an `enabled` attribute,
// is not in the table and therefore defaults to disabled.
func (m *Model) FlagTable() map[string]bool {
	table := make(map[string]bool, len(m.Sections))
	for id, s := range m.Sections {
		if s.Enabled != nil {
			table[id] = *s.Enabled
		}
	}
	return table
}

// Props returns the configured properties for a section, or nil if the
// config has no block for it.
func (m *Model) Props(id string) map[string]cty.Value {
	if s, ok := m.Sections[id]; ok {
		return s.Props
	}
	return nil
}

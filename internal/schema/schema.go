// Package schema defines the HCL-specific structures that site configuration
// files are decoded into before translation to the format-agnostic model.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// SiteBlock represents the `site` block with page-level metadata.
type SiteBlock struct {
	Title   string `hcl:"title"`
	Tagline string `hcl:"tagline,optional"`
	Lang    string `hcl:"lang,optional"`
}

// PropsBlock represents the content of the 'props' block within a section.
// It is kept as a raw body so attribute names stay open-ended; the section's
// declared property schema is what constrains them.
type PropsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// Section represents a `section` block from a site file.
type Section struct {
	ID      string      `hcl:"id,label"`
	Enabled *bool       `hcl:"enabled,optional"`
	Props   *PropsBlock `hcl:"props,block"`
}

// SiteConfig represents the top-level structure of a site configuration
// file, containing the site metadata and all section blocks.
type SiteConfig struct {
	Site     *SiteBlock `hcl:"site,block"`
	Sections []*Section `hcl:"section,block"`
	Body     hcl.Body   `hcl:",remain"`
}

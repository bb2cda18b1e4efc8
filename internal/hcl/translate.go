package hcl

import (
	"context"
	"fmt"

	"github.com/vk/landinggo/internal/config"
	"github.com/vk/landinggo/internal/ctxlog"
	"github.com/vk/landinggo/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// translateSite converts the HCL-specific site schema into the agnostic model.
func (l *Loader) translateSite(s *schema.SiteBlock) *config.Site {
	lang := s.Lang
	if lang == "" {
		lang = "en"
	}
	return &config.Site{
		Title:   s.Title,
		Tagline: s.Tagline,
		Lang:    lang,
	}
}

// translateSection converts the HCL-specific section schema into the agnostic
// model, evaluating every props attribute into a concrete cty value. Props
// are static content, so expressions are evaluated without a variable scope.
func (l *Loader) translateSection(ctx context.Context, s *schema.Section) (*config.Section, error) {
	logger := ctxlog.FromContext(ctx)

	section := &config.Section{
		ID:      s.ID,
		Enabled: s.Enabled,
		Props:   make(map[string]cty.Value),
	}

	if s.Props == nil {
		return section, nil
	}

	attrs, diags := s.Props.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("props block must contain only attributes: %w", diags)
	}

	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating prop %q: %w", name, diags)
		}
		section.Props[name] = val
	}
	logger.Debug("Translated section block.", "id", s.ID, "props", len(section.Props))

	return section, nil
}

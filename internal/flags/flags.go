// Package flags implements the feature-flag service that gates section
// enablement. Defaults come from the static table in the site config; in
// dev mode an environment variable per flag takes precedence, so individual
// sections can be toggled without editing configuration.
package flags

import (
	"os"
	"strings"
)

// EnvPrefix is the prefix for per-section override variables. The full name
// for a section id is EnvPrefix plus the upper-cased id, e.g.
// LANDINGGO_SECTION_PRICING.
const EnvPrefix = "LANDINGGO_SECTION_"

// Service answers enabled/disabled lookups for section identifiers. It has
// no side effects and no error conditions: identifiers absent from the
// table are simply disabled.
type Service struct {
	table   map[string]bool
	devMode bool
}

// New creates a flag service over a static default table. The table is
// copied, so later mutation of the argument does not leak into the service.
func New(table map[string]bool, devMode bool) *Service {
	copied := make(map[string]bool, len(table))
	for k, v := range table {
		copied[k] = v
	}
	return &Service{table: copied, devMode: devMode}
}

// IsEnabled reports whether the flag for the given section id is on. In dev
// mode a set environment variable overrides the static table; the override
// is on only when the value is the literal string "true".
func (s *Service) IsEnabled(id string) bool {
	if s.devMode {
		if v, ok := os.LookupEnv(EnvVar(id)); ok {
			return v == "true"
		}
	}
	return s.table[id]
}

// EnvVar returns the override environment variable name for a section id.
func EnvVar(id string) string {
	return EnvPrefix + strings.ToUpper(id)
}

// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface for reading it from various
// sources.
//
// The config.Model is the single source of truth for the feature-flag table
// and the per-section content properties. Concrete implementations of the
// Loader interface, such as for HCL, are provided in separate packages.
package config

// Package hcl implements the config.Loader interface for HCL site
// configuration files. It parses `site` and `section` blocks, evaluates
// section props into cty values, and translates everything into the
// format-agnostic config model.
package hcl

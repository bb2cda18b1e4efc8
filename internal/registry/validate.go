package registry

import (
	"context"
	"fmt"

	"github.com/vk/landinggo/internal/ctxlog"
)

// ValidationResult is the outcome of a dependency check over the registry.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// ValidateDependencies checks that every dependency declared by an enabled
// section is present in the registry. Presence is the whole contract: a
// dependency that is registered but disabled passes, and cycles are not
// detected. The result is advisory; callers log it and keep rendering.
func (r *Registry) ValidateDependencies(ctx context.Context) ValidationResult {
	logger := ctxlog.FromContext(ctx)

	var errs []string
	for _, entry := range r.ListAll() {
		id := entry.Descriptor.ID
		if !r.IsEnabled(id) {
			continue
		}
		for _, dep := range entry.Descriptor.Dependencies {
			if !r.Has(dep) {
				errs = append(errs, fmt.Sprintf("section %q depends on %q, which is not registered", id, dep))
			}
		}
	}

	if len(errs) > 0 {
		logger.Warn("Dependency validation found problems.", "count", len(errs))
	}
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

package registry

import (
	"context"

	"github.com/vk/landinggo/internal/ctxlog"
)

// LoaderFunc resolves a section on demand, producing its descriptor and
// component. Loaders run at most once per in-flight load; concurrent
// requests for the same id join the pending operation.
type LoaderFunc func(ctx context.Context) (*Entry, error)

// RegisterLoader adds a loader to the loadable allow-list. Only identifiers
// with a loader (or an already registered entry) can be resolved by Load.
func (r *Registry) RegisterLoader(id string, loader LoaderFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaders[id] = loader
}

// Load resolves a section asynchronously with respect to other ids:
//
//  1. An already registered entry resolves immediately, no re-fetch.
//  2. An id outside the loadable allow-list logs a warning and resolves to
//     absent. Stub identifiers are expected to hit this path.
//  3. Otherwise the loader runs, coalesced so at most one load per id is in
//     flight at any time. On success the entry is registered and returned;
//     on failure the error is logged and returned.
//
// The in-flight marker is cleared on every outcome, so a later call can
// retry after a failure.
func (r *Registry) Load(ctx context.Context, id string) (*Entry, error) {
	logger := ctxlog.FromContext(ctx)

	if entry := r.Get(id); entry != nil {
		return entry, nil
	}

	r.mu.Lock()
	loader, ok := r.loaders[id]
	r.mu.Unlock()
	if !ok {
		logger.Warn("Section is not in the loadable set, skipping.", "id", id)
		return nil, nil
	}

	v, err, _ := r.group.Do(id, func() (any, error) {
		// A racing Load may have registered the entry between our check
		// and winning the flight.
		if entry := r.Get(id); entry != nil {
			return entry, nil
		}

		r.markInflight(id, true)
		defer r.markInflight(id, false)

		entry, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		r.Register(id, entry)
		logger.Debug("Section loaded and registered.", "id", id)
		return entry, nil
	})
	if err != nil {
		logger.Error("Section load failed.", "id", id, "error", err)
		return nil, err
	}
	return v.(*Entry), nil
}

func (r *Registry) markInflight(id string, loading bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if loading {
		r.inflight[id] = struct{}{}
	} else {
		delete(r.inflight, id)
	}
}

package registry

// LoadState describes where a known identifier sits in its load lifecycle.
//
// This derived view only distinguishes loaded, loading and not-loaded; a
// failed load returns to not-loaded here so a retry is possible. The
// composer keeps the authoritative, UI-visible status, including errors.
type LoadState string

const (
	StateNotLoaded LoadState = "not-loaded"
	StateLoading   LoadState = "loading"
	StateLoaded    LoadState = "loaded"
)

// LoadStatus returns the load state of every known identifier: all
// registered entries plus everything on the loadable allow-list.
func (r *Registry) LoadStatus() map[string]LoadState {
	r.mu.Lock()
	defer r.mu.Unlock()

	status := make(map[string]LoadState, len(r.entries)+len(r.loaders))
	for id := range r.loaders {
		status[id] = StateNotLoaded
	}
	for id := range r.inflight {
		status[id] = StateLoading
	}
	for id := range r.entries {
		status[id] = StateLoaded
	}
	return status
}

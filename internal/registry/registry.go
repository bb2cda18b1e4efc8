package registry

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/vk/landinggo/internal/flags"
	"github.com/zclconf/go-cty/cty"
	"golang.org/x/sync/singleflight"
	g "maragu.dev/gomponents"
)

// Section is the interface that all section packages implement to be wired
// into an application instance.
type Section interface {
	Register(r *Registry)
}

// Component is the renderable unit backing a section. Render receives the
// validated props from the site config and produces the section's HTML
// subtree.
type Component interface {
	Render(ctx context.Context, props map[string]cty.Value) (g.Node, error)
}

// Descriptor is the metadata record for one section.
type Descriptor struct {
	ID           string
	Name         string
	Version      string
	Enabled      bool
	Dependencies []string
	// Schema maps expected property names to type-tag strings, e.g.
	// "string", "string[]", "number?".
	Schema map[string]string
	// Order is the sort key for render position. Ties keep registration
	// order.
	Order int
}

// Entry pairs a descriptor with its component. The component handle is
// owned by the entry and is never copied; concurrent loads for the same id
// resolve to the identical entry pointer.
type Entry struct {
	Descriptor Descriptor
	Component  Component
}

// Registry is the in-memory directory of sections for a single application
// instance. It is constructed once at startup and passed by reference; all
// methods are safe for concurrent use.
type Registry struct {
	flags *flags.Service

	mu       sync.Mutex
	entries  map[string]*Entry
	order    []string // ids in first-registration order
	loaders  map[string]LoaderFunc
	inflight map[string]struct{}
	group    singleflight.Group
}

// New creates and initializes a new Registry instance backed by the given
// feature-flag service.
func New(flagSvc *flags.Service) *Registry {
	return &Registry{
		flags:    flagSvc,
		entries:  make(map[string]*Entry),
		loaders:  make(map[string]LoaderFunc),
		inflight: make(map[string]struct{}),
	}
}

// Register inserts or overwrites the entry for an id. Re-registering an id
// replaces the previous entry wholesale (last write wins, no merging) but
// keeps its original position in the insertion order.
func (r *Registry) Register(id string, entry *Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		slog.Debug("Overwriting registered section.", "id", id)
	} else {
		r.order = append(r.order, id)
	}
	r.entries[id] = entry
}

// Get returns the entry for an id, or nil when absent.
func (r *Registry) Get(id string) *Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entries[id]
}

// Has reports whether an entry is registered for the id.
func (r *Registry) Has(id string) bool {
	return r.Get(id) != nil
}

// IsEnabled reports whether a section is both registered and switched on by
// the feature-flag service.
func (r *Registry) IsEnabled(id string) bool {
	return r.Has(id) && r.flags.IsEnabled(id)
}

// ListAll returns every registered entry in first-registration order.
func (r *Registry) ListAll() []*Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]*Entry, 0, len(r.order))
	for _, id := range r.order {
		entries = append(entries, r.entries[id])
	}
	return entries
}

// ListEnabledOrdered returns the enabled subset of the registry, sorted
// ascending by Order. The sort is stable, so equal-order sections keep
// their relative registration order. The result is always a fresh
// filter-and-sort view over the entries; it is never mutated independently.
func (r *Registry) ListEnabledOrdered() []*Entry {
	all := r.ListAll()

	enabled := make([]*Entry, 0, len(all))
	for _, e := range all {
		if r.IsEnabled(e.Descriptor.ID) {
			enabled = append(enabled, e)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Descriptor.Order < enabled[j].Descriptor.Order
	})
	return enabled
}

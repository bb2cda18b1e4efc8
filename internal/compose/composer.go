package compose

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vk/landinggo/internal/config"
	"github.com/vk/landinggo/internal/ctxlog"
	"github.com/vk/landinggo/internal/props"
	"github.com/vk/landinggo/internal/registry"
	"github.com/vk/landinggo/internal/render"
	g "maragu.dev/gomponents"
)

// Status is the authoritative, user-visible state of one section. Unlike
// the registry's derived load view, it distinguishes a failed load: failure
// to load a section's code or config is a different class from failure
// while rendering already-loaded code, and each gets its own fallback.
type Status string

const (
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusError   Status = "error"
)

// Options configure a Composer.
type Options struct {
	// AlwaysOnID names the section that is loaded first and rendered
	// regardless of the flag table.
	AlwaysOnID string
	// DevMode exposes failure detail in fallbacks and is forwarded to
	// boundaries.
	DevMode bool
	// Report, when set, receives every boundary failure.
	Report ReportFunc
}

// slot is one position in the render list. Entry is nil when the section
// never loaded; the id alone still renders a fallback in place.
type slot struct {
	id    string
	entry *registry.Entry
}

// Composer assembles the page from the registry. Initialization is a
// single pass; afterwards the composer only re-renders from its tracked
// state and boundaries.
type Composer struct {
	reg   *registry.Registry
	model *config.Model
	opts  Options

	mu          sync.Mutex
	slots       []slot
	statuses    map[string]Status
	boundaries  map[string]*Boundary
	initialized bool
}

// New creates a Composer over a populated registry and site model.
func New(reg *registry.Registry, model *config.Model, opts Options) *Composer {
	return &Composer{
		reg:        reg,
		model:      model,
		opts:       opts,
		statuses:   make(map[string]Status),
		boundaries: make(map[string]*Boundary),
	}
}

// Initialize performs the one-time page assembly pass:
//
//  1. The always-on section is loaded and awaited before anything else and
//     seeds the render list.
//  2. Every remaining enabled section is attempted strictly in ascending
//     order, each awaited to completion before the next begins.
//  3. A failed load marks the section StatusError; nothing retries
//     automatically.
//  4. Dependency validation runs last, advisory only — it is logged and
//     never blocks rendering.
func (c *Composer) Initialize(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	c.mu.Lock()
	if c.initialized {
		c.mu.Unlock()
		return fmt.Errorf("composer already initialized")
	}
	c.mu.Unlock()

	logger.Debug("Composer initialization started.", "always_on", c.opts.AlwaysOnID)

	if id := c.opts.AlwaysOnID; id != "" {
		c.setStatus(id, StatusLoading)
		entry, err := c.reg.Load(ctx, id)
		switch {
		case err != nil:
			c.addSlot(slot{id: id})
			c.setStatus(id, StatusError)
		case entry == nil:
			logger.Warn("Always-on section is not loadable.", "id", id)
			c.addSlot(slot{id: id})
			c.setStatus(id, StatusError)
		default:
			c.admit(ctx, entry)
		}
	}

	for _, entry := range c.reg.ListEnabledOrdered() {
		id := entry.Descriptor.ID
		if id == c.opts.AlwaysOnID {
			continue
		}

		c.setStatus(id, StatusLoading)
		loaded, err := c.reg.Load(ctx, id)
		if err != nil || loaded == nil {
			c.addSlot(slot{id: id})
			c.setStatus(id, StatusError)
			continue
		}
		c.admit(ctx, loaded)
	}

	c.mu.Lock()
	c.initialized = true
	total := len(c.slots)
	c.mu.Unlock()
	logger.Debug("Composer initialization complete.", "sections", total)

	result := c.reg.ValidateDependencies(ctx)
	for _, msg := range result.Errors {
		logger.Warn("Section dependency problem.", "error", msg)
	}

	return nil
}

// admit validates the entry's props, builds its boundary, and inserts it
// into the render list in order position.
func (c *Composer) admit(ctx context.Context, entry *registry.Entry) {
	logger := ctxlog.FromContext(ctx)
	d := entry.Descriptor

	sectionProps := c.model.Props(d.ID)
	for _, violation := range props.Validate(d.Schema, sectionProps) {
		// Schema violations are advisory; a bad prop that actually breaks
		// rendering is caught by the section's boundary.
		logger.Warn("Section props do not match schema.", "id", d.ID, "violation", violation)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.boundaries[d.ID] = NewBoundary(entry, sectionProps, c.opts.Report, c.opts.DevMode)
	c.slots = append(c.slots, slot{id: d.ID, entry: entry})
	// Keep the render list sorted after every append. The sort is stable
	// so equal-order sections keep their arrival order, and slots without
	// an entry stay where the attempt placed them.
	sort.SliceStable(c.slots, func(i, j int) bool {
		si, sj := c.slots[i], c.slots[j]
		if si.entry == nil || sj.entry == nil {
			return false
		}
		return si.entry.Descriptor.Order < sj.entry.Descriptor.Order
	})
	c.statuses[d.ID] = StatusLoaded
}

// RenderPage renders the full document from the current composer state.
// Every section renders independently: a tripped boundary or a failed load
// produces that section's fallback and nothing else.
func (c *Composer) RenderPage(ctx context.Context) g.Node {
	c.mu.Lock()
	slots := make([]slot, len(c.slots))
	copy(slots, c.slots)
	c.mu.Unlock()

	nodes := make([]g.Node, 0, len(slots))
	for _, s := range slots {
		nodes = append(nodes, c.renderSlot(ctx, s))
	}
	return render.Page(c.model.Site, nodes...)
}

func (c *Composer) renderSlot(ctx context.Context, s slot) g.Node {
	name := s.id
	if s.entry != nil && s.entry.Descriptor.Name != "" {
		name = s.entry.Descriptor.Name
	}

	switch c.StatusOf(s.id) {
	case StatusLoading:
		return render.Placeholder(s.id, name)
	case StatusLoaded:
		c.mu.Lock()
		boundary := c.boundaries[s.id]
		c.mu.Unlock()
		return boundary.Render(ctx)
	default:
		return render.LoadFallback(s.id, name)
	}
}

// RetrySection resets the boundary for a section after a render failure.
// It reports whether a boundary existed for the id. Load failures are not
// retryable here; their recovery is the full-page reload.
func (c *Composer) RetrySection(id string) bool {
	c.mu.Lock()
	boundary, ok := c.boundaries[id]
	c.mu.Unlock()
	if !ok {
		return false
	}
	boundary.Retry()
	return true
}

// StatusOf returns the tracked status for a section id.
func (c *Composer) StatusOf(id string) Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statuses[id]
}

// Statuses returns a copy of the full status map.
func (c *Composer) Statuses() map[string]Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]Status, len(c.statuses))
	for k, v := range c.statuses {
		out[k] = v
	}
	return out
}

// Initialized reports whether the assembly pass has completed.
func (c *Composer) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

func (c *Composer) setStatus(id string, s Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statuses[id] = s
}

func (c *Composer) addSlot(s slot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slots = append(c.slots, s)
}

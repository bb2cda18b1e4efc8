package compose

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/vk/landinggo/internal/ctxlog"
	"github.com/vk/landinggo/internal/registry"
	"github.com/vk/landinggo/internal/render"
	"github.com/zclconf/go-cty/cty"
	g "maragu.dev/gomponents"
)

// ReportFunc receives a boundary failure: the captured error plus a
// diagnostic context describing the failing section.
type ReportFunc func(err error, diag map[string]any)

// Boundary isolates one section's render failures from its siblings. It
// starts in the ok state; a panic or error raised while materializing the
// wrapped component flips it to failed, where it stays until an explicit
// Retry. There is no automatic recovery.
//
// Only the synchronous render pass is guarded. A failure in a goroutine
// spawned by the component happens outside the boundary and is not caught.
type Boundary struct {
	entry   *registry.Entry
	props   map[string]cty.Value
	report  ReportFunc
	devMode bool

	mu      sync.Mutex
	failed  bool
	lastErr error
}

// NewBoundary wraps a loaded entry. report may be nil.
func NewBoundary(entry *registry.Entry, props map[string]cty.Value, report ReportFunc, devMode bool) *Boundary {
	return &Boundary{
		entry:   entry,
		props:   props,
		report:  report,
		devMode: devMode,
	}
}

// Render produces the section subtree, or the fallback if this boundary is
// (or just became) failed. The subtree is fully materialized here so that
// any failure inside it is intercepted before a single byte reaches the
// page.
func (b *Boundary) Render(ctx context.Context) g.Node {
	d := b.entry.Descriptor

	b.mu.Lock()
	failed := b.failed
	b.mu.Unlock()
	if failed {
		return render.RenderFallback(d.ID, d.Name, b.detail())
	}

	html, err := b.materialize(ctx)
	if err != nil {
		b.fail(ctx, err)
		return render.RenderFallback(d.ID, d.Name, b.detail())
	}
	return render.Wrap(d.ID, g.Raw(html))
}

// Failed reports whether the boundary is in the failed state.
func (b *Boundary) Failed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failed
}

// Retry returns the boundary to the ok state. The next Render attempts the
// component again. This is the only transition out of failed.
func (b *Boundary) Retry() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failed = false
	b.lastErr = nil
}

// materialize runs the component's render pass and writes the resulting
// subtree into a buffer, converting a panic into an error.
func (b *Boundary) materialize(ctx context.Context) (html string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("section %q panicked during render: %v", b.entry.Descriptor.ID, r)
		}
	}()

	node, err := b.entry.Component.Render(ctx, b.props)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (b *Boundary) fail(ctx context.Context, err error) {
	d := b.entry.Descriptor

	b.mu.Lock()
	b.failed = true
	b.lastErr = err
	b.mu.Unlock()

	ctxlog.FromContext(ctx).Error("Section render failed, boundary tripped.", "id", d.ID, "error", err)
	if b.report != nil {
		b.report(err, map[string]any{
			"section": d.ID,
			"version": d.Version,
		})
	}
}

// detail returns the captured error text in dev mode and nothing otherwise;
// end users never see error internals.
func (b *Boundary) detail() string {
	if !b.devMode {
		return ""
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.lastErr == nil {
		return ""
	}
	return b.lastErr.Error()
}

package app_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/landinggo/internal/registry"
	"github.com/vk/landinggo/internal/testutil"
	"github.com/zclconf/go-cty/cty"
	g "maragu.dev/gomponents"
)

// onceBrokenComponent fails its first render pass and succeeds afterwards,
// which is exactly the shape a scoped retry is for.
type onceBrokenComponent struct {
	calls atomic.Int32
}

func (c *onceBrokenComponent) Render(ctx context.Context, props map[string]cty.Value) (g.Node, error) {
	if c.calls.Add(1) == 1 {
		return nil, errors.New("flaky render")
	}
	return g.Text("flaky content"), nil
}

// flakySection registers the broken component as an eager section.
type flakySection struct{}

func (flakySection) Register(r *registry.Registry) {
	r.Register("flaky", &registry.Entry{
		Descriptor: registry.Descriptor{ID: "flaky", Name: "Flaky", Version: "0.1.0", Enabled: true, Order: 50},
		Component:  &onceBrokenComponent{},
	})
}

const flakySiteHCL = `
site { title = "Retry demo" }

section "flaky" {
	enabled = true
}
`

func TestServer_RetryEndpointResetsBoundary(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	result := testutil.RunComposeTest(t, map[string]string{"landing.hcl": flakySiteHCL}, flakySection{})
	require.NoError(t, result.Err)
	handler := result.App.Handler()

	get := func() string {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		return rec.Body.String()
	}

	// --- Act & Assert: the first request trips the flaky boundary. ---
	html := get()
	require.Contains(t, html, "unavailable right now")
	require.NotContains(t, html, "flaky content")

	// The boundary stays tripped across requests.
	html = get()
	require.Contains(t, html, "unavailable right now")

	// A scoped retry resets it.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sections/flaky/retry", nil))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	html = get()
	require.Contains(t, html, "flaky content")
}

func TestServer_RetryUnknownSectionIs404(t *testing.T) {
	t.Parallel()

	result := testutil.RunComposeTest(t, map[string]string{"landing.hcl": flakySiteHCL}, flakySection{})
	require.NoError(t, result.Err)

	rec := httptest.NewRecorder()
	result.App.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sections/nope/retry", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	result := testutil.RunComposeTest(t, map[string]string{"landing.hcl": flakySiteHCL}, flakySection{})
	require.NoError(t, result.Err)

	rec := httptest.NewRecorder()
	result.App.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "OK")
}

package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/vk/landinggo/internal/ctxlog"
)

// Handler returns the preview server's routes. The page is re-rendered per
// request from the composer's tracked state, so a boundary retry is visible
// on the next request without re-running initialization.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", a.handleIndex)
	mux.HandleFunc("POST /sections/{id}/retry", a.handleRetry)
	mux.HandleFunc("GET /health", a.handleHealth)
	return mux
}

// serve runs the preview HTTP server until the context is cancelled.
func (a *App) serve(ctx context.Context) error {
	server := &http.Server{
		Addr:    a.config.ListenAddr,
		Handler: a.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Preview server starting.", "address", fmt.Sprintf("http://%s/", a.config.ListenAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	a.logger.Info("Shutting down preview server...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Preview server shutdown failed.", "error", err)
		return err
	}
	return <-errCh
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := ctxlog.WithLogger(r.Context(), a.logger)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	node := a.composer.RenderPage(ctx)
	if err := node.Render(w); err != nil {
		// Headers are gone by now; all we can do is log.
		a.logger.Error("Failed to write page response.", "error", err)
	}
}

func (a *App) handleRetry(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !a.composer.RetrySection(id) {
		http.NotFound(w, r)
		return
	}
	a.logger.Info("Section boundary reset.", "id", id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

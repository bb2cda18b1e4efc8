package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vk/landinggo/internal/ctxlog"
)

// Run executes the main application logic: one composition pass, then
// either a single render to the output writer or the preview server.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if err := a.composer.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to compose page: %w", err)
	}
	a.logger.Info("Page composed.", "statuses", a.composer.Statuses())

	if a.config.ListenAddr != "" {
		return a.serve(ctx)
	}
	return a.renderOnce(ctx)
}

// renderOnce writes the composed page to the configured output and returns.
func (a *App) renderOnce(ctx context.Context) error {
	var out io.Writer = a.outW
	if a.config.OutputPath != "" {
		f, err := os.Create(a.config.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to open output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	node := a.composer.RenderPage(ctx)
	if err := node.Render(out); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	a.logger.Info("Page rendered.", "output", a.config.OutputPath)
	return nil
}

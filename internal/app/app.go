package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/landinggo/internal/compose"
	"github.com/vk/landinggo/internal/config"
	"github.com/vk/landinggo/internal/ctxlog"
	"github.com/vk/landinggo/internal/flags"
	"github.com/vk/landinggo/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	model    *config.Model
	registry *registry.Registry
	composer *compose.Composer
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger, flag
// service, registry and composer.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, sections ...registry.Section) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load the site configuration into the format-agnostic model first.
	model, err := loader.Load(ctx, appConfig.ConfigPath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	if model.Site == nil || model.Site.Title == "" {
		panic(fmt.Errorf("site configuration must define a site block with a title"))
	}
	logger.Debug("Site configuration loaded.", "sections_configured", len(model.Sections))

	// The flag table is derived from the config; env overrides apply only
	// in dev mode.
	flagSvc := flags.New(model.FlagTable(), appConfig.DevMode)

	// Create the registry and let every section package wire itself in.
	reg := registry.New(flagSvc)
	if len(sections) == 0 {
		sections = coreSections
	}
	for _, s := range sections {
		s.Register(reg)
	}
	logger.Debug("All sections registered.", "count", len(sections))

	composer := compose.New(reg, model, compose.Options{
		AlwaysOnID: AlwaysOnSectionID,
		DevMode:    appConfig.DevMode,
		Report: func(err error, diag map[string]any) {
			logger.Error("Section failure reported.", "error", err, "diag", diag)
		},
	})

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		model:    model,
		registry: reg,
		composer: composer,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Composer returns the application's composer. This is primarily for testing.
func (a *App) Composer() *compose.Composer {
	return a.composer
}

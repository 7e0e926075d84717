// Package commands implements the cmdbmap subcommands.
package commands

import (
	"context"
	"log/slog"

	"github.com/edgewise-labs/cmdbmap/internal/catalog"
	"github.com/edgewise-labs/cmdbmap/internal/cli/config"
	"github.com/edgewise-labs/cmdbmap/internal/cli/output"
	"github.com/edgewise-labs/cmdbmap/internal/graph"
	"github.com/edgewise-labs/cmdbmap/internal/hierarchy"
	"github.com/edgewise-labs/cmdbmap/internal/loader"
	"github.com/edgewise-labs/cmdbmap/internal/pathfind"
	"github.com/spf13/cobra"
)

type configKey struct{}
type loggerKey struct{}

// WithConfig stores the loaded configuration in the context.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// WithLogger stores the logger in the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// getConfig returns the configuration from the command context, falling
// back to defaults when the root command did not run (tests).
func getConfig(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	return cfg
}

// getLogger returns the logger from the command context.
func getLogger(cmd *cobra.Command) *slog.Logger {
	if logger, ok := cmd.Context().Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// CommandContext holds the shared dependencies of a command invocation:
// the loaded catalog, the built graph, and the query components over it.
type CommandContext struct {
	Cfg        *config.Config
	Logger     *slog.Logger
	Store      *catalog.Store
	Graph      *graph.Graph
	Resolver   *hierarchy.Resolver
	Finder     *pathfind.Finder
	Renderer   *output.Renderer
	LoadResult *loader.Result
}

// NewCommandContext loads the catalog and builds the graph. Every command
// rebuilds from the export files; nothing persists across runs.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig(cmd)
	logger := getLogger(cmd)

	l := loader.New(loader.Config{
		DataDir:         cfg.DataDir,
		TablesFile:      cfg.TablesFile,
		RelTypesFile:    cfg.RelTypesFile,
		PackagesFile:    cfg.PackagesFile,
		SuggestionFiles: cfg.SuggestionFiles,
	}, logger)

	store, loadRes, err := l.Load()
	if err != nil {
		return nil, err
	}

	g, _ := graph.Build(store, logger)
	resolver := hierarchy.New(store)

	return &CommandContext{
		Cfg:        cfg,
		Logger:     logger,
		Store:      store,
		Graph:      g,
		Resolver:   resolver,
		Finder:     pathfind.NewFinder(g, resolver),
		Renderer:   output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat)),
		LoadResult: loadRes,
	}, nil
}

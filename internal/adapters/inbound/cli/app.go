package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/smellview/smellview/internal/adapters/outbound/cache"
	"github.com/smellview/smellview/internal/adapters/outbound/config"
	"github.com/smellview/smellview/internal/adapters/outbound/graphql"
	"github.com/smellview/smellview/internal/adapters/outbound/history"
	"github.com/smellview/smellview/internal/application"
	"github.com/smellview/smellview/internal/domain"
	"github.com/smellview/smellview/internal/observability"
)

// app is the wired set of adapters and services for one command run.
type app struct {
	cfg      domain.ClientConfig
	logger   *slog.Logger
	client   *graphql.Client
	history  *history.Store
	services application.Services

	shutdownTracing func(context.Context) error
}

// loadConfig reads the config file, applies flag overrides and validates
// the result.
func (o *rootOptions) loadConfig() (domain.ClientConfig, error) {
	cfg, err := config.New().Load(o.configPath)
	if err != nil {
		return domain.ClientConfig{}, fmt.Errorf("loading config: %w", err)
	}
	if o.endpoint != "" {
		cfg.Endpoint = o.endpoint
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return domain.ClientConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newApp wires config, logging, tracing, the backend client and the services.
// The SQLite history is opened only when withHistory is set; otherwise the
// smell service runs without one. Callers must Close the returned app.
func (o *rootOptions) newApp(cmd *cobra.Command, withHistory bool) (*app, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	logger := observability.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := observability.SetupTracing(ctx, cfg.OTLPEndpoint)
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
		shutdown = func(context.Context) error { return nil }
	}

	client := graphql.NewClient(cfg, graphql.WithLogger(logger))

	a := &app{
		cfg:             cfg,
		logger:          logger,
		client:          client,
		shutdownTracing: shutdown,
	}

	var snapshots domain.SnapshotHistory
	if withHistory {
		hist, err := history.Open(cfg.HistoryPath)
		if err != nil {
			_ = shutdown(ctx)
			return nil, fmt.Errorf("opening history: %w", err)
		}
		logger.Debug("history opened", "path", hist.Path())
		a.history = hist
		snapshots = hist
	}

	a.services = application.Services{
		Projects:  application.NewProjectService(client, logger),
		Smells:    application.NewSmellService(client, cache.New(cfg.CacheDir), snapshots, logger),
		Refactors: application.NewRefactorService(client, logger),
	}
	return a, nil
}

func (a *app) Close() {
	if a.history != nil {
		if err := a.history.Close(); err != nil {
			a.logger.Warn("closing history failed", "error", err)
		}
	}
	if err := a.shutdownTracing(context.Background()); err != nil {
		a.logger.Warn("flushing traces failed", "error", err)
	}
}

// withApp runs fn with a freshly wired app and closes it afterwards.
func (o *rootOptions) withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	return o.run(cmd, false, fn)
}

// withHistoryApp is withApp for commands that read or record smell history.
func (o *rootOptions) withHistoryApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	return o.run(cmd, true, fn)
}

func (o *rootOptions) run(cmd *cobra.Command, withHistory bool, fn func(ctx context.Context, a *app) error) error {
	a, err := o.newApp(cmd, withHistory)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, a)
}

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethanmills/resumatch/internal/catalog"
	"github.com/ethanmills/resumatch/internal/config"
	"github.com/ethanmills/resumatch/internal/llm"
	"github.com/ethanmills/resumatch/internal/logging"
	"github.com/ethanmills/resumatch/internal/notify"
	"github.com/ethanmills/resumatch/internal/optimizer"
	"github.com/ethanmills/resumatch/internal/pipeline"
	"github.com/ethanmills/resumatch/internal/queue"
	"github.com/ethanmills/resumatch/internal/scheduler"
	"github.com/ethanmills/resumatch/internal/store"
	"github.com/ethanmills/resumatch/internal/types"
)

// app holds the wired application components for one command invocation
type app struct {
	config    *config.Config
	logger    *slog.Logger
	store     *store.Store
	queue     queue.Queue
	oracle    llm.Client
	scheduler *scheduler.Scheduler
	pipeline  *pipeline.Pipeline
}

// newApp loads configuration and connects every component a command may
// need. withQueue controls whether the delivery queue and scheduler are
// built; one-shot commands that never enqueue skip them.
func newApp(ctx context.Context, withQueue bool) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("database URL is required (set %s or database.url)", config.EnvDatabaseURL)
	}
	st, err := store.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	a := &app{config: cfg, logger: logger, store: st}

	if cfg.Oracle.APIKey != "" {
		oracle, err := llm.NewGeminiClient(ctx, &llm.Config{Model: cfg.Oracle.Model}, cfg.Oracle.APIKey)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("failed to create oracle client: %w", err)
		}
		a.oracle = oracle
	} else {
		logger.Info("no oracle API key configured, optimization uses the deterministic fallback")
	}

	if withQueue {
		q, err := buildQueue(cfg, logger)
		if err != nil {
			a.close()
			return nil, err
		}
		a.queue = q
		a.scheduler = scheduler.New(cfg.Scheduler.Scheduler(), st, q, notify.NewLogSink(logger), logger)
	}

	opt := optimizer.New(st, a.oracle, logger)

	var notifier pipeline.Notifier
	if a.scheduler != nil {
		notifier = a.scheduler
	}
	a.pipeline = pipeline.New(st, opt, buildCatalog(cfg), notifier, logger)

	return a, nil
}

func (a *app) close() {
	if a.queue != nil {
		if err := a.queue.Close(); err != nil {
			a.logger.Error("failed to close queue", slog.String("error", err.Error()))
		}
	}
	if a.oracle != nil {
		if err := a.oracle.Close(); err != nil {
			a.logger.Error("failed to close oracle client", slog.String("error", err.Error()))
		}
	}
	if a.store != nil {
		a.store.Close()
	}
}

func buildQueue(cfg *config.Config, logger *slog.Logger) (queue.Queue, error) {
	switch cfg.Queue.Driver {
	case config.QueueDriverRabbit:
		q, err := queue.NewRabbit(cfg.Queue.Rabbit, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
		}
		return q, nil
	default:
		return queue.NewMemory(logger), nil
	}
}

func buildCatalog(cfg *config.Config) catalog.Catalog {
	if cfg.Catalog.Path != "" {
		return &catalog.File{Path: cfg.Catalog.Path}
	}
	return &catalog.Static{Opportunities: []types.Opportunity{}}
}

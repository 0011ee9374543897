// Package scheduler owns notification delivery for match records. It
// enqueues a jittered, retried delivery task per new match, consumes those
// tasks with an idempotent worker, and runs a periodic sweep that catches
// anything never delivered. The scheduler has an explicit start/stop
// lifecycle and is started once by the application entry point.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ethanmills/resumatch/internal/notify"
	"github.com/ethanmills/resumatch/internal/queue"
	"github.com/ethanmills/resumatch/internal/types"
)

// Scheduling defaults. The delivery delay is drawn uniformly from
// [MinDelay, MaxDelay) so notifications do not arrive in synchronized
// bursts.
const (
	DefaultMinDelay      = 5 * time.Minute
	DefaultMaxDelay      = 24 * time.Hour
	DefaultSweepInterval = 6 * time.Hour
)

// MatchStore is the persistence surface the scheduler needs. MarkDelivered
// must be conditional on the current delivered flag; the idempotence of the
// worker depends on it.
type MatchStore interface {
	GetMatch(ctx context.Context, id uuid.UUID) (*types.MatchRecord, error)
	PendingMatchesByOwner(ctx context.Context, ownerID uuid.UUID) ([]types.MatchRecord, error)
	OwnersWithPending(ctx context.Context) ([]uuid.UUID, error)
	MarkDelivered(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
}

// Config holds scheduler timing configuration
type Config struct {
	MinDelay      time.Duration `yaml:"min_delay"`
	MaxDelay      time.Duration `yaml:"max_delay"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// Scheduler coordinates delivery tasks and the periodic sweep
type Scheduler struct {
	config Config
	store  MatchStore
	queue  queue.Queue
	sink   notify.Sink
	logger *slog.Logger

	// jitter is swappable so tests can pin the delay
	jitter func() time.Duration

	cancel context.CancelFunc
	group  *errgroup.Group
}

// New creates a Scheduler. Zero config fields fall back to the defaults.
func New(config Config, store MatchStore, q queue.Queue, sink notify.Sink, logger *slog.Logger) *Scheduler {
	if config.MinDelay <= 0 {
		config.MinDelay = DefaultMinDelay
	}
	if config.MaxDelay <= config.MinDelay {
		config.MaxDelay = DefaultMaxDelay
		// keeps the jitter span positive when MinDelay alone exceeds the default
		if config.MaxDelay <= config.MinDelay {
			config.MaxDelay = config.MinDelay + DefaultMaxDelay
		}
	}
	if config.SweepInterval <= 0 {
		config.SweepInterval = DefaultSweepInterval
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Scheduler{
		config: config,
		store:  store,
		queue:  q,
		sink:   sink,
		logger: logger,
	}
	s.jitter = func() time.Duration {
		return config.MinDelay + rand.N(config.MaxDelay-config.MinDelay)
	}
	return s
}

// ScheduleMatch enqueues one delivery task for a newly created match record,
// delayed by a uniformly random jitter
func (s *Scheduler) ScheduleMatch(ctx context.Context, match *types.MatchRecord) error {
	task := types.NewDeliveryTask(match.OwnerID, match.ID)
	delay := s.jitter()

	if err := s.queue.Enqueue(ctx, task, delay); err != nil {
		return fmt.Errorf("enqueue delivery task: %w", err)
	}

	s.logger.Debug("scheduled match delivery",
		slog.String("match_id", match.ID.String()),
		slog.Duration("delay", delay),
	)
	return nil
}

// Start launches the delivery consumer and the periodic sweep. It returns
// immediately; Stop shuts both down and waits for them.
func (s *Scheduler) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	group, groupCtx := errgroup.WithContext(runCtx)
	s.cancel = cancel
	s.group = group

	group.Go(func() error {
		return s.queue.Consume(groupCtx, s.handleTask)
	})
	group.Go(func() error {
		return s.sweepLoop(groupCtx)
	})

	s.logger.Info("notification scheduler started",
		slog.Duration("sweep_interval", s.config.SweepInterval),
	)
}

// Stop cancels the consumer and sweep and waits for them to exit
func (s *Scheduler) Stop() error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()
	if err := s.group.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// sweepLoop triggers a sweep every SweepInterval until the context ends
func (s *Scheduler) sweepLoop(ctx context.Context) error {
	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				s.logger.Error("sweep failed", slog.String("error", err.Error()))
			}
		}
	}
}

// Sweep enqueues one consolidated delivery task per owner holding
// undelivered matches. Tasks are enqueued without jitter: the records a
// sweep finds are already overdue.
func (s *Scheduler) Sweep(ctx context.Context) error {
	owners, err := s.store.OwnersWithPending(ctx)
	if err != nil {
		return fmt.Errorf("list owners with pending matches: %w", err)
	}

	for _, owner := range owners {
		if err := s.queue.Enqueue(ctx, types.NewSweepTask(owner), 0); err != nil {
			return fmt.Errorf("enqueue sweep task for owner %s: %w", owner, err)
		}
	}

	if len(owners) > 0 {
		s.logger.Info("sweep enqueued consolidated deliveries", slog.Int("owners", len(owners)))
	}
	return nil
}

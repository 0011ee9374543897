package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethanmills/resumatch/internal/notify"
	"github.com/ethanmills/resumatch/internal/store"
	"github.com/ethanmills/resumatch/internal/types"
)

// handleTask dispatches one dequeued delivery task. A returned error signals
// the queue to retry with backoff; nil acknowledges the task.
func (s *Scheduler) handleTask(ctx context.Context, task types.DeliveryTask) error {
	if task.MatchID == nil {
		return s.deliverPending(ctx, task)
	}
	return s.deliverMatch(ctx, task)
}

// deliverMatch sends the notification for a single match record. Missing and
// already-delivered records are acknowledged without sending, so replayed or
// duplicate tasks are harmless.
func (s *Scheduler) deliverMatch(ctx context.Context, task types.DeliveryTask) error {
	match, err := s.store.GetMatch(ctx, *task.MatchID)
	if errors.Is(err, store.ErrNotFound) {
		s.logger.Debug("dropping delivery for missing match", slog.String("match_id", task.MatchID.String()))
		return nil
	}
	if err != nil {
		return fmt.Errorf("load match for delivery: %w", err)
	}
	if match.Delivered {
		return nil
	}

	if err := s.sink.Send(ctx, match.OwnerID, notify.RenderMatch(match)); err != nil {
		return fmt.Errorf("send match notification: %w", err)
	}

	applied, err := s.store.MarkDelivered(ctx, match.ID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("mark match delivered: %w", err)
	}
	if !applied {
		// A concurrent worker delivered it between our read and update.
		s.logger.Warn("match delivered concurrently", slog.String("match_id", match.ID.String()))
		return nil
	}

	s.logger.Info("delivered match notification",
		slog.String("match_id", match.ID.String()),
		slog.String("owner_id", match.OwnerID.String()),
		slog.Int("attempt", task.Attempt),
	)
	return nil
}

// deliverPending sends one consolidated digest covering every undelivered
// match for the task's owner, then marks them all delivered. An owner with
// nothing pending is a no-op, which makes duplicate sweep tasks safe.
func (s *Scheduler) deliverPending(ctx context.Context, task types.DeliveryTask) error {
	pending, err := s.store.PendingMatchesByOwner(ctx, task.OwnerID)
	if err != nil {
		return fmt.Errorf("load pending matches: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	if err := s.sink.Send(ctx, task.OwnerID, notify.RenderDigest(pending)); err != nil {
		return fmt.Errorf("send digest notification: %w", err)
	}

	now := time.Now().UTC()
	for i := range pending {
		if _, err := s.store.MarkDelivered(ctx, pending[i].ID, now); err != nil {
			return fmt.Errorf("mark match delivered: %w", err)
		}
	}

	s.logger.Info("delivered consolidated digest",
		slog.String("owner_id", task.OwnerID.String()),
		slog.Int("matches", len(pending)),
	)
	return nil
}

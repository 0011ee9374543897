// Package queue provides the delayed task queue that decouples match
// creation from notification delivery. Both implementations give
// at-least-once semantics with bounded retries; consumers must therefore be
// idempotent.
package queue

import (
	"context"
	"time"

	"github.com/ethanmills/resumatch/internal/types"
)

// Handler processes one delivery task. Returning an error triggers a retry
// after the task's backoff until its attempt budget is spent.
type Handler func(ctx context.Context, task types.DeliveryTask) error

// Queue is the transport between producers (matcher, sweeps) and the
// delivery worker
type Queue interface {
	// Enqueue schedules a task to become visible to consumers after delay
	Enqueue(ctx context.Context, task types.DeliveryTask, delay time.Duration) error
	// Consume delivers tasks to the handler until ctx is canceled
	Consume(ctx context.Context, handler Handler) error
	// Close releases queue resources
	Close() error
}

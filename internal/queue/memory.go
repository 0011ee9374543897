package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ethanmills/resumatch/internal/types"
)

// Memory is an in-process Queue backed by timers. It is used for
// single-process deployments and tests; semantics mirror the Rabbit
// implementation, including retry with backoff and attempt exhaustion.
type Memory struct {
	logger *slog.Logger

	mu      sync.Mutex
	handler Handler
	ctx     context.Context
	backlog []types.DeliveryTask
	timers  map[*time.Timer]bool
	closed  bool

	wg sync.WaitGroup
}

// NewMemory creates an in-process queue
func NewMemory(logger *slog.Logger) *Memory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Memory{
		logger: logger,
		timers: make(map[*time.Timer]bool),
	}
}

// Enqueue schedules the task to fire after delay. Tasks enqueued before a
// consumer is registered are held and dispatched once Consume is called.
func (m *Memory) Enqueue(_ context.Context, task types.DeliveryTask, delay time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return fmt.Errorf("queue is closed")
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		m.mu.Lock()
		delete(m.timers, timer)
		if m.closed {
			m.mu.Unlock()
			return
		}
		if m.handler == nil {
			m.backlog = append(m.backlog, task)
			m.mu.Unlock()
			return
		}
		m.wg.Add(1)
		m.mu.Unlock()
		m.dispatch(task)
	})
	m.timers[timer] = true

	return nil
}

// Consume registers the handler, flushes any held tasks, and blocks until
// ctx is canceled
func (m *Memory) Consume(ctx context.Context, handler Handler) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return fmt.Errorf("queue is closed")
	}
	m.handler = handler
	m.ctx = ctx
	held := m.backlog
	m.backlog = nil
	m.wg.Add(len(held))
	m.mu.Unlock()

	for _, task := range held {
		go m.dispatch(task)
	}

	<-ctx.Done()
	return nil
}

// dispatch runs the handler and re-enqueues failed tasks until exhaustion.
// Callers must have incremented the wait group.
func (m *Memory) dispatch(task types.DeliveryTask) {
	defer m.wg.Done()

	m.mu.Lock()
	handler := m.handler
	ctx := m.ctx
	m.mu.Unlock()

	// the consumer's context, so timer-fired handlers stop with it
	err := handler(ctx, task)
	if err == nil {
		return
	}

	if task.Exhausted() {
		m.logger.Error("delivery task exhausted its attempt budget",
			slog.String("owner_id", task.OwnerID.String()),
			slog.Int("attempts", task.Attempt),
			slog.String("error", err.Error()),
		)
		return
	}

	backoff := task.Backoff()
	task.Attempt++
	m.logger.Warn("delivery task failed, retrying",
		slog.String("owner_id", task.OwnerID.String()),
		slog.Int("next_attempt", task.Attempt),
		slog.Duration("backoff", backoff),
		slog.String("error", err.Error()),
	)
	if enqueueErr := m.Enqueue(ctx, task, backoff); enqueueErr != nil {
		m.logger.Error("failed to re-enqueue delivery task", slog.String("error", enqueueErr.Error()))
	}
}

// Close stops pending timers and waits for in-flight handlers
func (m *Memory) Close() error {
	m.mu.Lock()
	m.closed = true
	for timer := range m.timers {
		timer.Stop()
	}
	m.timers = make(map[*time.Timer]bool)
	m.mu.Unlock()

	m.wg.Wait()
	return nil
}

package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ethanmills/resumatch/internal/types"
)

// collector records every task the handler sees
type collector struct {
	mu    sync.Mutex
	tasks []types.DeliveryTask
	errs  []error
	seen  chan struct{}
}

func newCollector(capacity int) *collector {
	return &collector{seen: make(chan struct{}, capacity)}
}

// handle returns the queued error for each call, nil once the list runs out
func (c *collector) handle(_ context.Context, task types.DeliveryTask) error {
	c.mu.Lock()
	c.tasks = append(c.tasks, task)
	var err error
	if len(c.errs) > 0 {
		err = c.errs[0]
		c.errs = c.errs[1:]
	}
	c.mu.Unlock()
	c.seen <- struct{}{}
	return err
}

func (c *collector) waitN(t *testing.T, n int) []types.DeliveryTask {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-c.seen:
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for delivery %d of %d", i+1, n)
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]types.DeliveryTask{}, c.tasks...)
}

func fastTask() types.DeliveryTask {
	task := types.NewDeliveryTask(uuid.New(), uuid.New())
	task.BackoffBase = 5 * time.Millisecond
	return task
}

func startConsumer(t *testing.T, q *Memory, handler Handler) context.CancelFunc {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = q.Consume(ctx, handler) }()
	return cancel
}

func TestMemory_DeliversAfterDelay(t *testing.T) {
	q := NewMemory(nil)
	defer q.Close()

	c := newCollector(1)
	cancel := startConsumer(t, q, c.handle)
	defer cancel()

	task := fastTask()
	start := time.Now()
	require.NoError(t, q.Enqueue(context.Background(), task, 30*time.Millisecond))

	got := c.waitN(t, 1)
	assert.Equal(t, task.OwnerID, got[0].OwnerID)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestMemory_HoldsTasksUntilConsumerRegisters(t *testing.T) {
	q := NewMemory(nil)
	defer q.Close()

	task := fastTask()
	require.NoError(t, q.Enqueue(context.Background(), task, 0))

	// Give the timer time to fire into the backlog
	time.Sleep(20 * time.Millisecond)

	c := newCollector(1)
	cancel := startConsumer(t, q, c.handle)
	defer cancel()

	got := c.waitN(t, 1)
	assert.Equal(t, task.OwnerID, got[0].OwnerID)
}

func TestMemory_RetriesWithIncrementedAttempt(t *testing.T) {
	q := NewMemory(nil)
	defer q.Close()

	c := newCollector(3)
	c.errs = []error{errors.New("transient")}
	cancel := startConsumer(t, q, c.handle)
	defer cancel()

	require.NoError(t, q.Enqueue(context.Background(), fastTask(), 0))

	got := c.waitN(t, 2)
	assert.Equal(t, 1, got[0].Attempt)
	assert.Equal(t, 2, got[1].Attempt)
}

func TestMemory_StopsAfterAttemptBudget(t *testing.T) {
	q := NewMemory(nil)

	c := newCollector(5)
	c.errs = []error{errors.New("down"), errors.New("down"), errors.New("down"), errors.New("down")}
	cancel := startConsumer(t, q, c.handle)
	defer cancel()

	require.NoError(t, q.Enqueue(context.Background(), fastTask(), 0))

	got := c.waitN(t, types.DefaultMaxAttempts)
	require.NoError(t, q.Close())

	c.mu.Lock()
	total := len(c.tasks)
	c.mu.Unlock()
	assert.Equal(t, types.DefaultMaxAttempts, total)
	assert.Equal(t, types.DefaultMaxAttempts, got[len(got)-1].Attempt)
}

func TestMemory_HandlerSeesConsumerCancellation(t *testing.T) {
	q := NewMemory(nil)
	defer q.Close()

	errs := make(chan error, 1)
	handler := func(ctx context.Context, _ types.DeliveryTask) error {
		errs <- ctx.Err()
		return nil
	}
	cancel := startConsumer(t, q, handler)

	require.NoError(t, q.Enqueue(context.Background(), fastTask(), 30*time.Millisecond))
	cancel()

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for delivery")
	}
}

func TestMemory_EnqueueAfterCloseFails(t *testing.T) {
	q := NewMemory(nil)
	require.NoError(t, q.Close())

	err := q.Enqueue(context.Background(), fastTask(), 0)
	assert.Error(t, err)
}

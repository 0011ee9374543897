package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/ethanmills/resumatch/internal/types"
)

// RabbitConfig holds RabbitMQ connection and queue configuration
type RabbitConfig struct {
	URL           string `yaml:"url"`
	WorkQueue     string `yaml:"work_queue"`
	DelayQueue    string `yaml:"delay_queue"`
	PrefetchCount int    `yaml:"prefetch_count"`
}

// Rabbit is a RabbitMQ-backed Queue. Delayed visibility uses the standard
// TTL + dead-letter pattern: messages published to the delay queue expire
// after their per-message TTL and are dead-lettered into the work queue.
// Per-message TTLs expire in queue order, so a long delay can briefly hold
// back shorter ones behind it; jittered notification delays tolerate that.
type Rabbit struct {
	config  RabbitConfig
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *slog.Logger
}

// NewRabbit connects to RabbitMQ and declares the work and delay queues
func NewRabbit(config RabbitConfig, logger *slog.Logger) (*Rabbit, error) {
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := amqp.Dial(config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	if _, err := channel.QueueDeclare(config.WorkQueue, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare work queue: %w", err)
	}

	delayArgs := amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": config.WorkQueue,
	}
	if _, err := channel.QueueDeclare(config.DelayQueue, true, false, false, false, delayArgs); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare delay queue: %w", err)
	}

	prefetch := config.PrefetchCount
	if prefetch <= 0 {
		prefetch = 1
	}
	if err := channel.Qos(prefetch, 0, false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set prefetch: %w", err)
	}

	logger.Info("rabbitmq queue initialized",
		slog.String("work_queue", config.WorkQueue),
		slog.String("delay_queue", config.DelayQueue),
	)

	return &Rabbit{config: config, conn: conn, channel: channel, logger: logger}, nil
}

// Enqueue publishes the task, routing through the delay queue when a delay
// is requested
func (r *Rabbit) Enqueue(ctx context.Context, task types.DeliveryTask, delay time.Duration) error {
	body, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	publishing := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	}

	target := r.config.WorkQueue
	if delay > 0 {
		target = r.config.DelayQueue
		publishing.Expiration = strconv.FormatInt(delay.Milliseconds(), 10)
	}

	if err := r.channel.PublishWithContext(ctx, "", target, false, false, publishing); err != nil {
		return fmt.Errorf("failed to publish task: %w", err)
	}
	return nil
}

// Consume pulls tasks from the work queue and feeds them to the handler
// until ctx is canceled. Failed tasks are republished through the delay
// queue with their backoff as TTL until the attempt budget is spent.
func (r *Rabbit) Consume(ctx context.Context, handler Handler) error {
	deliveries, err := r.channel.Consume(r.config.WorkQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consumer: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("consumer channel closed")
			}
			r.handleDelivery(ctx, msg, handler)
		}
	}
}

func (r *Rabbit) handleDelivery(ctx context.Context, msg amqp.Delivery, handler Handler) {
	var task types.DeliveryTask
	if err := json.Unmarshal(msg.Body, &task); err != nil {
		r.logger.Error("dropping malformed delivery task", slog.String("error", err.Error()))
		if nackErr := msg.Nack(false, false); nackErr != nil {
			r.logger.Error("failed to nack malformed task", slog.String("error", nackErr.Error()))
		}
		return
	}

	err := handler(ctx, task)
	if err != nil {
		if task.Exhausted() {
			r.logger.Error("delivery task exhausted its attempt budget",
				slog.String("owner_id", task.OwnerID.String()),
				slog.Int("attempts", task.Attempt),
				slog.String("error", err.Error()),
			)
		} else {
			backoff := task.Backoff()
			task.Attempt++
			r.logger.Warn("delivery task failed, retrying",
				slog.String("owner_id", task.OwnerID.String()),
				slog.Int("next_attempt", task.Attempt),
				slog.Duration("backoff", backoff),
				slog.String("error", err.Error()),
			)
			if enqueueErr := r.Enqueue(ctx, task, backoff); enqueueErr != nil {
				r.logger.Error("failed to re-enqueue delivery task", slog.String("error", enqueueErr.Error()))
			}
		}
	}

	if ackErr := msg.Ack(false); ackErr != nil {
		r.logger.Error("failed to ack delivery task", slog.String("error", ackErr.Error()))
	}
}

// Close closes the channel and connection
func (r *Rabbit) Close() error {
	if r.channel != nil {
		if err := r.channel.Close(); err != nil {
			return fmt.Errorf("failed to close channel: %w", err)
		}
	}
	if r.conn != nil {
		if err := r.conn.Close(); err != nil {
			return fmt.Errorf("failed to close connection: %w", err)
		}
	}
	return nil
}

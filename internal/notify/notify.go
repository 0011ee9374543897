// Package notify renders and dispatches match notifications. The transport
// behind Sink is an external collaborator; the pipeline treats dispatch as
// fire-and-forget and relies on the scheduler's retry logic when it fails.
package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Sink accepts a rendered message addressed to an owner
type Sink interface {
	Send(ctx context.Context, ownerID uuid.UUID, message string) error
}

// LogSink writes notifications to the log. It is the default sink for
// development and single-process deployments.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a log-backed sink
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

// Send logs the rendered message
func (s *LogSink) Send(_ context.Context, ownerID uuid.UUID, message string) error {
	s.logger.Info("match notification",
		slog.String("owner_id", ownerID.String()),
		slog.String("message", message),
	)
	return nil
}

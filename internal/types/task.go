package types

import (
	"time"

	"github.com/google/uuid"
)

// Delivery task defaults. Tasks carry their own budget and backoff so the
// queue does not need per-task-type configuration.
const (
	DefaultMaxAttempts = 3
	DefaultBackoffBase = 2 * time.Second
)

// DeliveryTask is the queue message that drives notification delivery.
// It is ephemeral: once processed or exhausted it has no persistent identity.
// A nil MatchID marks a consolidated per-owner sweep task covering every
// pending match for that owner.
type DeliveryTask struct {
	OwnerID     uuid.UUID     `json:"owner_id"`
	MatchID     *uuid.UUID    `json:"match_id,omitempty"`
	Attempt     int           `json:"attempt"`
	MaxAttempts int           `json:"max_attempts"`
	BackoffBase time.Duration `json:"backoff_base"`
}

// NewDeliveryTask returns a first-attempt task targeting a single match record
func NewDeliveryTask(ownerID, matchID uuid.UUID) DeliveryTask {
	return DeliveryTask{
		OwnerID:     ownerID,
		MatchID:     &matchID,
		Attempt:     1,
		MaxAttempts: DefaultMaxAttempts,
		BackoffBase: DefaultBackoffBase,
	}
}

// NewSweepTask returns a first-attempt consolidated task for an owner's
// pending matches
func NewSweepTask(ownerID uuid.UUID) DeliveryTask {
	return DeliveryTask{
		OwnerID:     ownerID,
		Attempt:     1,
		MaxAttempts: DefaultMaxAttempts,
		BackoffBase: DefaultBackoffBase,
	}
}

// Backoff returns the wait before the next retry of this task, doubling
// per failed attempt from the base.
func (t DeliveryTask) Backoff() time.Duration {
	backoff := t.BackoffBase
	if backoff <= 0 {
		backoff = DefaultBackoffBase
	}
	for i := 1; i < t.Attempt; i++ {
		backoff *= 2
	}
	return backoff
}

// Exhausted reports whether the attempt budget has been spent
func (t DeliveryTask) Exhausted() bool {
	return t.Attempt >= t.MaxAttempts
}

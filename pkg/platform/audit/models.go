package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Action names what happened in a planning run.
type Action string

const (
	ActionRunCompleted Action = "plan_run_completed"
	ActionRunFailed    Action = "plan_run_failed"
)

// Event summarises one planning run. Keep it transport-agnostic so sinks
// can fan out to Kafka or logs.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
	RunID     uuid.UUID `json:"run_id"`

	Partners    int `json:"partners"`
	Countries   int `json:"countries"`
	Scheduled   int `json:"scheduled"`
	Unscheduled int `json:"unscheduled"`

	// Reason carries the failure message for ActionRunFailed.
	Reason string `json:"reason,omitempty"`
}

// Sink receives events. Implementations must be safe for concurrent use.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

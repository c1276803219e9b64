package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/go-petr/pet-savings/pkg/moneypkg"
)

// EventKind names a committed state transition.
type EventKind string

const (
	EventAccountCreated      EventKind = "account_created"
	EventDeposited           EventKind = "deposited"
	EventWithdrawn           EventKind = "withdrawn"
	EventGoalUpdated         EventKind = "goal_updated"
	EventTrustModeUpdated    EventKind = "trust_mode_updated"
	EventSafetyBufferUpdated EventKind = "safety_buffer_updated"
	EventAutoSaved           EventKind = "auto_saved"
	EventAccountDeactivated  EventKind = "account_deactivated"
	EventPoolDeposited       EventKind = "pool_deposited"
	EventPoolWithdrawn       EventKind = "pool_withdrawn"
	EventPaused              EventKind = "paused"
	EventUnpaused            EventKind = "unpaused"
	EventExecutorUpdated     EventKind = "executor_updated"
	EventSlippageUpdated     EventKind = "slippage_updated"
	EventPoolRoutingUpdated  EventKind = "pool_routing_updated"
)

// Event is an audit log record.
type Event struct {
	ID        uuid.UUID       `json:"id"`
	Owner     string          `json:"owner"`
	Kind      EventKind       `json:"kind"`
	Amount    moneypkg.Amount `json:"amount"`
	Detail    string          `json:"detail,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewEvent returns an event with a fresh ID.
func NewEvent(owner string, kind EventKind, amount moneypkg.Amount, detail string) Event {
	return Event{
		ID:        uuid.New(),
		Owner:     owner,
		Kind:      kind,
		Amount:    amount,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	}
}

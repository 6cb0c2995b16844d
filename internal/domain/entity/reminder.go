package entity

import (
	"database/sql"
	"time"
)

// ReminderState is the lifecycle state of a reminder.
//
// Valid transitions:
//
//	Pending → Firing → Delivered | Failed
//	Pending → Cancelled
//	Firing  → Cancelled
//	Firing  → Pending (retry with a new due time)
//
// Delivered, Failed and Cancelled are terminal.
type ReminderState string

const (
	StatePending   ReminderState = "pending"
	StateFiring    ReminderState = "firing"
	StateDelivered ReminderState = "delivered"
	StateFailed    ReminderState = "failed"
	StateCancelled ReminderState = "cancelled"
)

// Terminal reports whether no further transitions are allowed from s.
func (s ReminderState) Terminal() bool {
	return s == StateDelivered || s == StateFailed || s == StateCancelled
}

// Reminder is a single scheduled message. The database row is the source of
// truth; the scheduler's in-memory index is a derived cache rebuilt from
// pending rows at startup.
type Reminder struct {
	ID            int64         `json:"id" db:"id"`
	Owner         string        `json:"owner" db:"owner"` // Slack user ID
	ChannelID     string        `json:"channel_id" db:"channel_id"`
	Payload       string        `json:"payload" db:"payload"`
	PersonaID     string        `json:"persona_id" db:"persona_id"` // empty = deliver raw
	DueAt         time.Time     `json:"due_at" db:"due_at"`         // always UTC
	State         ReminderState `json:"state" db:"state"`
	AttemptCount  int           `json:"attempt_count" db:"attempt_count"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	LastAttemptAt sql.NullTime  `json:"last_attempt_at" db:"last_attempt_at"`
}

package contract

import (
	"context"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Reminder() ReminderRepo
}

// ReminderRepo defines the contract for the durable reminder store.
// State transitions must be atomic per record: conditional on the current
// state so that the timing loop and concurrent delivery workers can race
// safely (the loser gets domain.ErrInvalidTransition).
type ReminderRepo interface {
	// Create persists a new pending reminder and sets reminder.ID.
	// The record is durable before Create returns.
	Create(reminder *entity.Reminder) error

	// GetByID returns the reminder or nil when the id is unknown.
	GetByID(id int64) (*entity.Reminder, error)

	// UpdateState transitions the reminder from one state to another and
	// bumps attempt_count by attemptDelta. Returns domain.ErrNotFound for
	// an unknown id and domain.ErrInvalidTransition when the record is not
	// currently in the expected from state.
	UpdateState(id int64, from, to entity.ReminderState, attemptDelta int) error

	// Cancel transitions a pending or firing reminder to cancelled.
	// Returns false when the id is unknown or the reminder is terminal.
	Cancel(id int64) (bool, error)

	// Reschedule moves the due time of a pending reminder. Returns false
	// when the reminder is not pending or does not exist.
	Reschedule(id int64, newDueAt time.Time) (bool, error)

	// MarkRetry transitions a firing reminder back to pending with a new
	// due time, used by the retry path after a failed delivery attempt.
	MarkRetry(id int64, nextDueAt time.Time) error

	// ListDueBefore returns pending reminders with due_at <= t, ordered by
	// due time ascending then id ascending.
	ListDueBefore(t time.Time) ([]*entity.Reminder, error)

	// ListAllPending returns every pending reminder, ordered by due time
	// ascending then id ascending. Used to rebuild the index at cold start.
	ListAllPending() ([]*entity.Reminder, error)

	// ListPendingByOwner returns the pending reminders of a single user,
	// ordered by due time ascending.
	ListPendingByOwner(owner string) ([]*entity.Reminder, error)

	// PurgeTerminalBefore deletes delivered, failed and cancelled reminders
	// created before t, returning how many rows were removed.
	PurgeTerminalBefore(t time.Time) (int64, error)
}

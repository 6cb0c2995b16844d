package contract

import (
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
)

// ReminderService is the registration surface other bot commands call
type ReminderService interface {
	// Schedule registers a reminder for delivery at dueAt. personaID may be
	// empty for raw delivery. Returns domain.ErrInvalidTime when dueAt is in
	// the past beyond the configured grace tolerance and
	// domain.ErrUnknownPersona when personaID is set but not registered.
	Schedule(owner, channelID, payload, personaID string, dueAt time.Time) (int64, error)

	// Cancel cancels a live reminder. Idempotent: cancelling an unknown or
	// already-terminal id returns false, never an error.
	Cancel(id int64) (bool, error)

	// Reschedule moves a pending reminder to a new due time. Returns false
	// when the reminder is firing, terminal or unknown.
	Reschedule(id int64, newDueAt time.Time) (bool, error)

	// ListPending returns the caller's pending reminders, soonest first.
	ListPending(owner string) ([]*entity.Reminder, error)
}

package service

import (
	"fmt"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/slack-reminder-bot/internal/persona"
)

// reminderService is the registration surface: it validates requests,
// persists them, and signals the timing loop. The store row is durable
// before the index ever learns about the reminder.
type reminderService struct {
	dm    contract.DataManager
	sched *scheduler
	grace time.Duration
}

func newReminder(dm contract.DataManager, sched *scheduler, grace time.Duration) *reminderService {
	return &reminderService{
		dm:    dm,
		sched: sched,
		grace: grace,
	}
}

func (s *reminderService) Schedule(owner, channelID, payload, personaID string, dueAt time.Time) (int64, error) {
	if personaID != "" && !persona.IsValid(personaID) {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownPersona, personaID)
	}

	// reject past due times beyond the grace tolerance instead of firing
	// immediately, so a flood of stale requests cannot surprise recipients
	dueAt = dueAt.UTC()
	if time.Since(dueAt) > s.grace {
		return 0, domain.ErrInvalidTime
	}

	reminder := &entity.Reminder{
		Owner:     owner,
		ChannelID: channelID,
		Payload:   payload,
		PersonaID: personaID,
		DueAt:     dueAt,
	}

	if err := s.dm.Reminder().Create(reminder); err != nil {
		return 0, fmt.Errorf("failed to persist reminder: %w", err)
	}

	s.sched.Register(reminder.ID, reminder.DueAt)
	return reminder.ID, nil
}

func (s *reminderService) Cancel(id int64) (bool, error) {
	cancelled, err := s.dm.Reminder().Cancel(id)
	if err != nil {
		return false, fmt.Errorf("failed to cancel reminder: %w", err)
	}
	if cancelled {
		s.sched.Unregister(id)
	}
	return cancelled, nil
}

func (s *reminderService) Reschedule(id int64, newDueAt time.Time) (bool, error) {
	newDueAt = newDueAt.UTC()
	if time.Since(newDueAt) > s.grace {
		return false, domain.ErrInvalidTime
	}

	moved, err := s.dm.Reminder().Reschedule(id, newDueAt)
	if err != nil {
		return false, fmt.Errorf("failed to reschedule reminder: %w", err)
	}
	if moved {
		s.sched.Register(id, newDueAt)
	}
	return moved, nil
}

func (s *reminderService) ListPending(owner string) ([]*entity.Reminder, error) {
	reminders, err := s.dm.Reminder().ListPendingByOwner(owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	return reminders, nil
}

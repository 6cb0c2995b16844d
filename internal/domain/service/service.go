package service

import (
	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
)

type Services struct {
	Reminder  contract.ReminderService
	Scheduler *scheduler
}

func New(dm contract.DataManager, renderer contract.PersonaRenderer, notifier contract.Notifier, sink contract.EventSink, policy Policy) *Services {
	sched := newScheduler(dm, renderer, notifier, sink, policy)

	return &Services{
		Reminder:  newReminder(dm, sched, policy.PastDueGrace),
		Scheduler: sched,
	}
}

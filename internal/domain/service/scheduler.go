package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
	"github.com/google/uuid"
)

// Policy holds the scheduler's timing and retry tunables.
type Policy struct {
	MaxAttempts     int
	RetryBackoff    time.Duration
	DeliveryTimeout time.Duration
	PastDueGrace    time.Duration
	ShutdownGrace   time.Duration
}

// DefaultPolicy returns the policy built from the domain defaults.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:     domain.DefaultMaxAttempts,
		RetryBackoff:    domain.DefaultRetryBackoff,
		DeliveryTimeout: domain.DefaultDeliveryTimeout,
		PastDueGrace:    domain.DefaultPastDueGrace,
		ShutdownGrace:   domain.DefaultShutdownGrace,
	}
}

type commandOp int

const (
	opRegister commandOp = iota
	opCancel
)

// command is how the outside world reaches the timing loop. The loop is the
// only goroutine that touches the index, so registration and cancellation
// are message passing, not shared-memory locking.
type command struct {
	op    commandOp
	id    int64
	dueAt time.Time
}

// scheduler owns durable timing for reminders: it wakes at the earliest due
// time, fires everything due, and hands each firing to a delivery worker so
// a slow transport can never delay unrelated reminders.
type scheduler struct {
	dm       contract.DataManager
	renderer contract.PersonaRenderer
	notifier contract.Notifier
	sink     contract.EventSink
	policy   Policy

	commands chan command
	stopChan chan struct{}
	inFlight sync.WaitGroup
	running  bool

	// owned by the timing loop goroutine after Start
	index *reminderIndex
}

func newScheduler(dm contract.DataManager, renderer contract.PersonaRenderer, notifier contract.Notifier, sink contract.EventSink, policy Policy) *scheduler {
	return &scheduler{
		dm:       dm,
		renderer: renderer,
		notifier: notifier,
		sink:     sink,
		policy:   policy,
		commands: make(chan command, 64),
		stopChan: make(chan struct{}),
		index:    newReminderIndex(),
	}
}

// Start rebuilds the index from the store and launches the timing loop.
// Reminders that came due while the process was down are fired immediately,
// oldest due first, through the normal pipeline.
func (s *scheduler) Start() error {
	if s.running {
		return nil
	}

	pending, err := s.dm.Reminder().ListAllPending()
	if err != nil {
		return fmt.Errorf("failed to load pending reminders: %w", err)
	}

	now := time.Now().UTC()
	missed := 0
	for _, r := range pending {
		s.index.push(r.ID, r.DueAt)
		if !r.DueAt.After(now) {
			missed++
		}
	}

	if missed > 0 {
		s.sink.ColdStartMissedFires(missed)
	}

	log.Printf("Scheduler starting with %d pending reminders (%d past due)", len(pending), missed)
	s.running = true
	go s.mainLoop()
	return nil
}

// Stop signals the timing loop to exit and waits for in-flight deliveries to
// drain, bounded by the shutdown grace period. Reminders still pending stay
// untouched in the store and are picked up on the next start.
func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	log.Println("Scheduler stopping...")
	close(s.stopChan)
	s.running = false

	done := make(chan struct{})
	go func() {
		s.inFlight.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(s.policy.ShutdownGrace):
		log.Println("Shutdown grace period elapsed with deliveries still in flight")
	}
}

// Register indexes a reminder for firing at dueAt. The store row must already
// exist; the call interrupts the loop's wait so the new earliest due time
// takes effect immediately. Also used to move an entry on reschedule/retry.
func (s *scheduler) Register(id int64, dueAt time.Time) {
	s.send(command{op: opRegister, id: id, dueAt: dueAt})
}

// Unregister drops a reminder from the index after a cancellation.
func (s *scheduler) Unregister(id int64) {
	s.send(command{op: opCancel, id: id})
}

// Sweep reconciles the index against the store's view of due work. It is the
// safety net run periodically by cron: under normal operation every change
// arrives via commands and the sweep finds nothing new.
func (s *scheduler) Sweep() {
	due, err := s.dm.Reminder().ListDueBefore(time.Now().UTC())
	if err != nil {
		log.Printf("Sweep failed to list due reminders: %v", err)
		return
	}

	for _, r := range due {
		s.Register(r.ID, r.DueAt)
	}
}

// PurgeTerminal deletes terminal reminders older than the retention window.
func (s *scheduler) PurgeTerminal(olderThan time.Duration) {
	purged, err := s.dm.Reminder().PurgeTerminalBefore(time.Now().UTC().Add(-olderThan))
	if err != nil {
		log.Printf("Failed to purge terminal reminders: %v", err)
		return
	}
	if purged > 0 {
		log.Printf("Purged %d terminal reminders", purged)
	}
}

func (s *scheduler) send(cmd command) {
	select {
	case s.commands <- cmd:
	case <-s.stopChan:
	}
}

func (s *scheduler) mainLoop() {
	for {
		var timerC <-chan time.Time
		var timer *time.Timer

		if next, ok := s.index.nextDue(); ok {
			wait := time.Until(next)
			if wait < 0 {
				wait = 0
			}
			timer = time.NewTimer(wait)
			timerC = timer.C
		}

		// nil timerC blocks until a command or stop arrives
		select {
		case <-timerC:
			s.fireDue()

		case cmd := <-s.commands:
			if timer != nil {
				timer.Stop()
			}
			s.apply(cmd)

		case <-s.stopChan:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (s *scheduler) apply(cmd command) {
	switch cmd.op {
	case opRegister:
		s.index.push(cmd.id, cmd.dueAt)
	case opCancel:
		s.index.remove(cmd.id)
	}
}

// fireDue pops everything due in one pass so reminders coalesced into the
// same wakeup fire together, then dispatches each firing as its own worker.
func (s *scheduler) fireDue() {
	now := time.Now().UTC()

	for _, id := range s.index.popDue(now) {
		reminder, err := s.dm.Reminder().GetByID(id)
		if err != nil {
			// store hiccup: keep the entry so the next iteration retries
			log.Printf("Failed to load reminder %d, re-indexing: %v", id, err)
			s.index.push(id, now.Add(s.policy.RetryBackoff))
			continue
		}
		if reminder == nil || reminder.State != entity.StatePending {
			// cancelled or already handled by another path
			continue
		}
		if reminder.DueAt.After(now) {
			// rescheduled after this index entry was created
			s.index.push(reminder.ID, reminder.DueAt)
			continue
		}

		// claim the attempt before the outcome is known
		err = s.dm.Reminder().UpdateState(id, entity.StatePending, entity.StateFiring, 1)
		if errors.Is(err, domain.ErrInvalidTransition) || errors.Is(err, domain.ErrNotFound) {
			// lost the race to a concurrent cancel, skip silently
			continue
		}
		if err != nil {
			log.Printf("Failed to mark reminder %d firing, re-indexing: %v", id, err)
			s.index.push(id, now.Add(s.policy.RetryBackoff))
			continue
		}

		attempt := reminder.AttemptCount + 1
		s.inFlight.Add(1)
		go s.deliver(reminder, attempt)
	}
}

// deliver runs outside the timing loop: renders the text (falling back to the
// raw payload on renderer failure), calls the notifier with a bounded
// timeout, and persists the outcome.
func (s *scheduler) deliver(reminder *entity.Reminder, attempt int) {
	defer s.inFlight.Done()

	text := reminder.Payload
	if reminder.PersonaID != "" {
		ctx, cancel := context.WithTimeout(context.Background(), s.policy.DeliveryTimeout)
		rendered, err := s.renderer.Render(ctx, reminder.PersonaID, reminder.Payload)
		cancel()
		if err != nil {
			s.sink.RenderFallback(reminder.ID, reminder.PersonaID, err)
		} else {
			text = rendered
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.policy.DeliveryTimeout)
	defer cancel()

	err := s.notifier.Deliver(ctx, contract.Delivery{
		ReminderID:   reminder.ID,
		Owner:        reminder.Owner,
		ChannelID:    reminder.ChannelID,
		Text:         text,
		AttemptToken: uuid.NewString(),
	})

	if err == nil {
		if uerr := s.dm.Reminder().UpdateState(reminder.ID, entity.StateFiring, entity.StateDelivered, 0); uerr != nil && !errors.Is(uerr, domain.ErrInvalidTransition) {
			log.Printf("Failed to mark reminder %d delivered: %v", reminder.ID, uerr)
		}
		return
	}

	s.sink.DeliveryFailed(reminder.ID, attempt, err)

	if attempt >= s.policy.MaxAttempts {
		if uerr := s.dm.Reminder().UpdateState(reminder.ID, entity.StateFiring, entity.StateFailed, 0); uerr != nil && !errors.Is(uerr, domain.ErrInvalidTransition) {
			log.Printf("Failed to mark reminder %d failed: %v", reminder.ID, uerr)
		}
		s.sink.RetriesExhausted(reminder.ID, attempt)
		return
	}

	// linear backoff: base × attempt number
	nextDue := time.Now().UTC().Add(s.policy.RetryBackoff * time.Duration(attempt))
	rerr := s.dm.Reminder().MarkRetry(reminder.ID, nextDue)
	if errors.Is(rerr, domain.ErrInvalidTransition) || errors.Is(rerr, domain.ErrNotFound) {
		// cancelled while the attempt was in flight, no further retries
		return
	}
	if rerr != nil {
		log.Printf("Failed to schedule retry for reminder %d: %v", reminder.ID, rerr)
		return
	}

	s.sink.RetryScheduled(reminder.ID, attempt, nextDue.Unix())
	s.Register(reminder.ID, nextDue)
}

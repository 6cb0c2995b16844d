package database

import (
	"testing"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReminder(dueAt time.Time) *entity.Reminder {
	return &entity.Reminder{
		Owner:     "U123456",
		ChannelID: "C123456",
		Payload:   "water the plants",
		PersonaID: "zen",
		DueAt:     dueAt.UTC(),
	}
}

func TestReminderRepository_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReminderRepo(db.conn)

	reminder := testReminder(time.Now().Add(time.Hour))
	err := repo.Create(reminder)
	require.NoError(t, err, "Failed to create reminder")

	assert.NotZero(t, reminder.ID, "Expected reminder ID to be set after creation")
	assert.Equal(t, entity.StatePending, reminder.State)
}

func TestReminderRepository_GetByID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReminderRepo(db.conn)

	original := testReminder(time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC))
	err := repo.Create(original)
	require.NoError(t, err)

	found, err := repo.GetByID(original.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, original.Owner, found.Owner)
	assert.Equal(t, original.ChannelID, found.ChannelID)
	assert.Equal(t, original.Payload, found.Payload)
	assert.Equal(t, original.PersonaID, found.PersonaID)
	assert.True(t, original.DueAt.Equal(found.DueAt), "due_at must round-trip, got %v want %v", found.DueAt, original.DueAt)
	assert.Equal(t, entity.StatePending, found.State)
	assert.Zero(t, found.AttemptCount)
	assert.False(t, found.CreatedAt.IsZero())
	assert.False(t, found.LastAttemptAt.Valid)

	missing, err := repo.GetByID(99999)
	require.NoError(t, err)
	assert.Nil(t, missing, "unknown id must return nil, not an error")
}

func TestReminderRepository_UpdateState(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReminderRepo(db.conn)

	reminder := testReminder(time.Now().Add(time.Hour))
	require.NoError(t, repo.Create(reminder))

	// pending → firing claims the attempt
	err := repo.UpdateState(reminder.ID, entity.StatePending, entity.StateFiring, 1)
	require.NoError(t, err)

	found, err := repo.GetByID(reminder.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StateFiring, found.State)
	assert.Equal(t, 1, found.AttemptCount)
	assert.True(t, found.LastAttemptAt.Valid, "claiming an attempt must stamp last_attempt_at")

	// firing → delivered
	err = repo.UpdateState(reminder.ID, entity.StateFiring, entity.StateDelivered, 0)
	require.NoError(t, err)

	found, err = repo.GetByID(reminder.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StateDelivered, found.State)
	assert.Equal(t, 1, found.AttemptCount)
}

func TestReminderRepository_UpdateState_errors(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReminderRepo(db.conn)

	reminder := testReminder(time.Now().Add(time.Hour))
	require.NoError(t, repo.Create(reminder))

	// wrong from-state
	err := repo.UpdateState(reminder.ID, entity.StateFiring, entity.StateDelivered, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// unknown id
	err = repo.UpdateState(99999, entity.StatePending, entity.StateFiring, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReminderRepository_Cancel(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReminderRepo(db.conn)

	reminder := testReminder(time.Now().Add(time.Hour))
	require.NoError(t, repo.Create(reminder))

	cancelled, err := repo.Cancel(reminder.ID)
	require.NoError(t, err)
	assert.True(t, cancelled)

	// cancelling again is a no-op, not an error
	cancelled, err = repo.Cancel(reminder.ID)
	require.NoError(t, err)
	assert.False(t, cancelled)

	// unknown id
	cancelled, err = repo.Cancel(99999)
	require.NoError(t, err)
	assert.False(t, cancelled)

	found, err := repo.GetByID(reminder.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StateCancelled, found.State)
}

func TestReminderRepository_CancelWhileFiring(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReminderRepo(db.conn)

	reminder := testReminder(time.Now().Add(time.Hour))
	require.NoError(t, repo.Create(reminder))
	require.NoError(t, repo.UpdateState(reminder.ID, entity.StatePending, entity.StateFiring, 1))

	cancelled, err := repo.Cancel(reminder.ID)
	require.NoError(t, err)
	assert.True(t, cancelled, "a firing reminder can still be cancelled")

	// the in-flight worker now loses the delivered transition
	err = repo.UpdateState(reminder.ID, entity.StateFiring, entity.StateDelivered, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// and the retry path loses too
	err = repo.MarkRetry(reminder.ID, time.Now().Add(time.Minute))
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestReminderRepository_Reschedule(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReminderRepo(db.conn)

	reminder := testReminder(time.Now().Add(time.Hour))
	require.NoError(t, repo.Create(reminder))

	newDue := time.Date(2026, 12, 24, 18, 0, 0, 0, time.UTC)
	moved, err := repo.Reschedule(reminder.ID, newDue)
	require.NoError(t, err)
	assert.True(t, moved)

	found, err := repo.GetByID(reminder.ID)
	require.NoError(t, err)
	assert.True(t, newDue.Equal(found.DueAt))

	// only pending reminders can move
	require.NoError(t, repo.UpdateState(reminder.ID, entity.StatePending, entity.StateFiring, 1))
	moved, err = repo.Reschedule(reminder.ID, newDue.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, moved)
}

func TestReminderRepository_MarkRetry(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReminderRepo(db.conn)

	reminder := testReminder(time.Now().Add(time.Hour))
	require.NoError(t, repo.Create(reminder))
	require.NoError(t, repo.UpdateState(reminder.ID, entity.StatePending, entity.StateFiring, 1))

	nextDue := time.Now().UTC().Add(30 * time.Second).Truncate(time.Second)
	err := repo.MarkRetry(reminder.ID, nextDue)
	require.NoError(t, err)

	found, err := repo.GetByID(reminder.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatePending, found.State)
	assert.Equal(t, 1, found.AttemptCount, "MarkRetry must not touch the attempt count")
	assert.True(t, nextDue.Equal(found.DueAt))
}

func TestReminderRepository_ListDueBefore(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReminderRepo(db.conn)
	now := time.Now().UTC()

	past1 := testReminder(now.Add(-2 * time.Hour))
	past2 := testReminder(now.Add(-1 * time.Hour))
	future := testReminder(now.Add(time.Hour))
	require.NoError(t, repo.Create(past1))
	require.NoError(t, repo.Create(past2))
	require.NoError(t, repo.Create(future))

	// delivered reminders never show up as due
	delivered := testReminder(now.Add(-3 * time.Hour))
	require.NoError(t, repo.Create(delivered))
	require.NoError(t, repo.UpdateState(delivered.ID, entity.StatePending, entity.StateFiring, 1))
	require.NoError(t, repo.UpdateState(delivered.ID, entity.StateFiring, entity.StateDelivered, 0))

	due, err := repo.ListDueBefore(now)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, past1.ID, due[0].ID, "oldest due first")
	assert.Equal(t, past2.ID, due[1].ID)
}

func TestReminderRepository_ListAllPending(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReminderRepo(db.conn)
	now := time.Now().UTC()

	later := testReminder(now.Add(2 * time.Hour))
	sooner := testReminder(now.Add(time.Hour))
	require.NoError(t, repo.Create(later))
	require.NoError(t, repo.Create(sooner))

	cancelled := testReminder(now.Add(3 * time.Hour))
	require.NoError(t, repo.Create(cancelled))
	_, err := repo.Cancel(cancelled.ID)
	require.NoError(t, err)

	pending, err := repo.ListAllPending()
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, sooner.ID, pending[0].ID, "ordered by due time ascending")
	assert.Equal(t, later.ID, pending[1].ID)
}

func TestReminderRepository_ListPendingByOwner(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReminderRepo(db.conn)
	now := time.Now().UTC()

	mine := testReminder(now.Add(time.Hour))
	require.NoError(t, repo.Create(mine))

	other := testReminder(now.Add(time.Hour))
	other.Owner = "U999999"
	require.NoError(t, repo.Create(other))

	reminders, err := repo.ListPendingByOwner("U123456")
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, mine.ID, reminders[0].ID)
}

func TestReminderRepository_PurgeTerminalBefore(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newReminderRepo(db.conn)
	now := time.Now().UTC()

	pending := testReminder(now.Add(time.Hour))
	require.NoError(t, repo.Create(pending))

	done := testReminder(now.Add(-time.Hour))
	require.NoError(t, repo.Create(done))
	require.NoError(t, repo.UpdateState(done.ID, entity.StatePending, entity.StateFiring, 1))
	require.NoError(t, repo.UpdateState(done.ID, entity.StateFiring, entity.StateDelivered, 0))

	purged, err := repo.PurgeTerminalBefore(now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	// the pending reminder survives
	found, err := repo.GetByID(pending.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	gone, err := repo.GetByID(done.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
)

type reminderRepo struct {
	db dbConn
}

func newReminderRepo(db dbConn) contract.ReminderRepo {
	return &reminderRepo{db: db}
}

const reminderColumns = `id, owner, channel_id, payload, persona_id, due_at, state, attempt_count, created_at, last_attempt_at`

func (r *reminderRepo) Create(reminder *entity.Reminder) error {
	query := `
		INSERT INTO reminders (owner, channel_id, payload, persona_id, due_at, state, attempt_count)
		VALUES (?, ?, ?, ?, ?, ?, 0)
	`

	result, err := r.db.Exec(query,
		reminder.Owner,
		reminder.ChannelID,
		reminder.Payload,
		reminder.PersonaID,
		reminder.DueAt.UTC(),
		entity.StatePending,
	)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	reminder.ID = id
	reminder.State = entity.StatePending
	return nil
}

func (r *reminderRepo) GetByID(id int64) (*entity.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE id = ?`

	reminder, err := scanReminder(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}

	return reminder, nil
}

// UpdateState is a conditional update: the WHERE clause carries the expected
// current state so concurrent actors race safely at the database level.
func (r *reminderRepo) UpdateState(id int64, from, to entity.ReminderState, attemptDelta int) error {
	var (
		result sql.Result
		err    error
	)

	if attemptDelta > 0 {
		query := `
			UPDATE reminders SET state = ?, attempt_count = attempt_count + ?, last_attempt_at = ?
			WHERE id = ? AND state = ?
		`
		result, err = r.db.Exec(query, to, attemptDelta, time.Now().UTC(), id, from)
	} else {
		query := `UPDATE reminders SET state = ? WHERE id = ? AND state = ?`
		result, err = r.db.Exec(query, to, id, from)
	}
	if err != nil {
		return fmt.Errorf("failed to update reminder state: %w", err)
	}

	return r.checkTransition(result, id)
}

func (r *reminderRepo) Cancel(id int64) (bool, error) {
	query := `UPDATE reminders SET state = ? WHERE id = ? AND state IN (?, ?)`

	result, err := r.db.Exec(query, entity.StateCancelled, id, entity.StatePending, entity.StateFiring)
	if err != nil {
		return false, fmt.Errorf("failed to cancel reminder: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *reminderRepo) Reschedule(id int64, newDueAt time.Time) (bool, error) {
	query := `UPDATE reminders SET due_at = ? WHERE id = ? AND state = ?`

	result, err := r.db.Exec(query, newDueAt.UTC(), id, entity.StatePending)
	if err != nil {
		return false, fmt.Errorf("failed to reschedule reminder: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

func (r *reminderRepo) MarkRetry(id int64, nextDueAt time.Time) error {
	query := `UPDATE reminders SET state = ?, due_at = ? WHERE id = ? AND state = ?`

	result, err := r.db.Exec(query, entity.StatePending, nextDueAt.UTC(), id, entity.StateFiring)
	if err != nil {
		return fmt.Errorf("failed to mark reminder for retry: %w", err)
	}

	return r.checkTransition(result, id)
}

func (r *reminderRepo) ListDueBefore(t time.Time) ([]*entity.Reminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM reminders
		WHERE state = ? AND due_at <= ?
		ORDER BY due_at ASC, id ASC
	`

	return r.queryReminders(query, entity.StatePending, t.UTC())
}

func (r *reminderRepo) ListAllPending() ([]*entity.Reminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM reminders
		WHERE state = ?
		ORDER BY due_at ASC, id ASC
	`

	return r.queryReminders(query, entity.StatePending)
}

func (r *reminderRepo) ListPendingByOwner(owner string) ([]*entity.Reminder, error) {
	query := `
		SELECT ` + reminderColumns + `
		FROM reminders
		WHERE state = ? AND owner = ?
		ORDER BY due_at ASC, id ASC
	`

	return r.queryReminders(query, entity.StatePending, owner)
}

func (r *reminderRepo) PurgeTerminalBefore(t time.Time) (int64, error) {
	query := `DELETE FROM reminders WHERE state IN (?, ?, ?) AND created_at < ?`

	result, err := r.db.Exec(query, entity.StateDelivered, entity.StateFailed, entity.StateCancelled, t.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to purge terminal reminders: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected, nil
}

// checkTransition maps a zero-row conditional update to the domain error:
// the id either does not exist or is not in the expected state.
func (r *reminderRepo) checkTransition(result sql.Result, id int64) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected > 0 {
		return nil
	}

	var exists int
	err = r.db.QueryRow(`SELECT 1 FROM reminders WHERE id = ?`, id).Scan(&exists)
	if err == sql.ErrNoRows {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check reminder existence: %w", err)
	}

	return domain.ErrInvalidTransition
}

func (r *reminderRepo) queryReminders(query string, args ...interface{}) ([]*entity.Reminder, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*entity.Reminder
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, reminder)
	}

	return reminders, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReminder(row rowScanner) (*entity.Reminder, error) {
	reminder := &entity.Reminder{}
	err := row.Scan(
		&reminder.ID,
		&reminder.Owner,
		&reminder.ChannelID,
		&reminder.Payload,
		&reminder.PersonaID,
		&reminder.DueAt,
		&reminder.State,
		&reminder.AttemptCount,
		&reminder.CreatedAt,
		&reminder.LastAttemptAt,
	)
	if err != nil {
		return nil, err
	}

	reminder.DueAt = reminder.DueAt.UTC()
	return reminder, nil
}

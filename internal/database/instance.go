package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	reminderRepo contract.ReminderRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		db:           db,
		reminderRepo: newReminderRepo(db.conn),
	}
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		reminderRepo: newReminderRepo(db),
	}
}

// Reminder returns the reminder repository
func (i *instance) Reminder() contract.ReminderRepo {
	return i.reminderRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}

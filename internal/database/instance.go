package database

import (
	"context"
	"fmt"

	"github.com/galactic-marines/gm-automation/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db                *DB
	plannedRepo       contract.PlannedMessageRepo
	aktenSettingsRepo contract.AktenSettingsRepo
	aktenPoolRepo     contract.AktenPoolRepo
	aktenHistoryRepo  contract.AktenHistoryRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := repoInstancesWithConn(db.conn)
	instance.db = db
	return instance
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		plannedRepo:       newPlannedMessageRepository(db),
		aktenSettingsRepo: newAktenSettingsRepository(db),
		aktenPoolRepo:     newAktenPoolRepository(db),
		aktenHistoryRepo:  newAktenHistoryRepository(db),
	}
}

func (i *instance) PlannedMessage() contract.PlannedMessageRepo {
	return i.plannedRepo
}

func (i *instance) AktenSettings() contract.AktenSettingsRepo {
	return i.aktenSettingsRepo
}

func (i *instance) AktenPool() contract.AktenPoolRepo {
	return i.aktenPoolRepo
}

func (i *instance) AktenHistory() contract.AktenHistoryRepo {
	return i.aktenHistoryRepo
}

// WithTransaction executes a function within a database transaction.
// Nested calls reuse the outer transaction.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fn(i)
	}

	tx, err := i.db.BeginTx(ctx)
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

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

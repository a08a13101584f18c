package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/galactic-marines/gm-automation/internal/domain/contract"
	"github.com/galactic-marines/gm-automation/internal/domain/entity"
)

type aktenHistoryRepository struct {
	db dbConn
}

func newAktenHistoryRepository(db dbConn) contract.AktenHistoryRepo {
	return &aktenHistoryRepository{db: db}
}

func (r *aktenHistoryRepository) Create(ctx context.Context, entry *entity.AktenHistoryEntry) error {
	query := `
		INSERT INTO akten_history (happened_at, chosen_primary_name, chosen_backup_name, mode, poll_created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		entry.HappenedAt.UTC(),
		entry.ChosenPrimaryName,
		entry.ChosenBackupName,
		entry.Mode,
		nullTime(entry.PollCreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create akten history entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	entry.ID = id
	return nil
}

// List returns the newest entries first.
func (r *aktenHistoryRepository) List(ctx context.Context, limit int) ([]*entity.AktenHistoryEntry, error) {
	query := `
		SELECT id, happened_at, chosen_primary_name, chosen_backup_name, mode, poll_created_at
		FROM akten_history
		ORDER BY happened_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query akten history: %w", err)
	}
	defer rows.Close()

	var history []*entity.AktenHistoryEntry
	for rows.Next() {
		entry := &entity.AktenHistoryEntry{}
		var (
			primary, backup sql.NullString
			pollCreatedAt   sql.NullTime
		)

		err := rows.Scan(
			&entry.ID,
			&entry.HappenedAt,
			&primary,
			&backup,
			&entry.Mode,
			&pollCreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan akten history entry: %w", err)
		}

		entry.HappenedAt = entry.HappenedAt.UTC()
		if primary.Valid {
			entry.ChosenPrimaryName = &primary.String
		}
		if backup.Valid {
			entry.ChosenBackupName = &backup.String
		}
		entry.PollCreatedAt = timeFromNull(pollCreatedAt)
		history = append(history, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating akten history: %w", err)
	}

	return history, nil
}

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/galactic-marines/gm-automation/internal/domain/contract"
	"github.com/galactic-marines/gm-automation/internal/domain/entity"
)

type aktenPoolRepository struct {
	db dbConn
}

func newAktenPoolRepository(db dbConn) contract.AktenPoolRepo {
	return &aktenPoolRepository{db: db}
}

func scanPoolCandidate(row rowScanner) (*entity.PoolCandidate, error) {
	candidate := &entity.PoolCandidate{}
	var (
		mentionID      sql.NullString
		label          sql.NullString
		lastAssignedAt sql.NullTime
	)

	err := row.Scan(
		&candidate.Name,
		&candidate.MentionType,
		&mentionID,
		&label,
		&candidate.TimesAssigned,
		&lastAssignedAt,
		&candidate.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	candidate.MentionID = mentionID.String
	candidate.Label = label.String
	candidate.LastAssignedAt = timeFromNull(lastAssignedAt)
	return candidate, nil
}

// List returns the pool ordered by name.
func (r *aktenPoolRepository) List(ctx context.Context) ([]*entity.PoolCandidate, error) {
	query := `
		SELECT name, mention_type, mention_id, label, times_assigned, last_assigned_at, created_at
		FROM akten_pool
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query akten pool: %w", err)
	}
	defer rows.Close()

	var pool []*entity.PoolCandidate
	for rows.Next() {
		candidate, err := scanPoolCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pool candidate: %w", err)
		}
		pool = append(pool, candidate)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating akten pool: %w", err)
	}

	return pool, nil
}

func (r *aktenPoolRepository) GetByName(ctx context.Context, name string) (*entity.PoolCandidate, error) {
	query := `
		SELECT name, mention_type, mention_id, label, times_assigned, last_assigned_at, created_at
		FROM akten_pool
		WHERE name = ?
	`

	candidate, err := scanPoolCandidate(r.db.QueryRowContext(ctx, query, name))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pool candidate: %w", err)
	}
	return candidate, nil
}

// Upsert inserts a candidate or refreshes its mention data. Fairness counters
// are never written here.
func (r *aktenPoolRepository) Upsert(ctx context.Context, candidate *entity.PoolCandidate) error {
	query := `
		INSERT INTO akten_pool (name, mention_type, mention_id, label, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			mention_type = excluded.mention_type,
			mention_id = excluded.mention_id,
			label = excluded.label
	`

	_, err := r.db.ExecContext(ctx, query,
		candidate.Name,
		candidate.MentionType,
		nullString(candidate.MentionID),
		nullString(candidate.Label),
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert pool candidate: %w", err)
	}
	return nil
}

func (r *aktenPoolRepository) Delete(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM akten_pool WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete pool candidate: %w", err)
	}
	return nil
}

func (r *aktenPoolRepository) RecordAssignment(ctx context.Context, name string, at time.Time) error {
	query := `
		UPDATE akten_pool
		SET times_assigned = times_assigned + 1, last_assigned_at = ?
		WHERE name = ?
	`

	_, err := r.db.ExecContext(ctx, query, at.UTC(), name)
	if err != nil {
		return fmt.Errorf("failed to record assignment: %w", err)
	}
	return nil
}

func (r *aktenPoolRepository) ResetFairness(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE akten_pool SET times_assigned = 0, last_assigned_at = NULL`)
	if err != nil {
		return 0, fmt.Errorf("failed to reset fairness: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected, nil
}

package contract

import (
	"context"
	"time"

	"github.com/galactic-marines/gm-automation/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	PlannedMessage() PlannedMessageRepo
	AktenSettings() AktenSettingsRepo
	AktenPool() AktenPoolRepo
	AktenHistory() AktenHistoryRepo
}

// PlannedMessageRepo defines the contract for planned message repository
type PlannedMessageRepo interface {
	Create(ctx context.Context, msg *entity.PlannedMessage) error
	GetByID(ctx context.Context, id int64) (*entity.PlannedMessage, error)
	List(ctx context.Context) ([]*entity.PlannedMessage, error)
	Update(ctx context.Context, msg *entity.PlannedMessage) error
	Delete(ctx context.Context, id int64) error
	// ListDue returns enabled messages with next_run_at <= now, oldest first.
	ListDue(ctx context.Context, now time.Time, limit int) ([]*entity.PlannedMessage, error)
	// Advance persists the post-firing state only if next_run_at still equals
	// claimedNextRunAt. It reports whether this caller won the claim.
	Advance(ctx context.Context, msg *entity.PlannedMessage, claimedNextRunAt time.Time) (bool, error)
}

// AktenSettingsRepo defines the contract for the singleton rotation settings
type AktenSettingsRepo interface {
	Get(ctx context.Context) (*entity.AktenSettings, error)
	Update(ctx context.Context, settings *entity.AktenSettings) error
	// OpenPoll marks a poll as open unless one already is.
	OpenPoll(ctx context.Context, createdAt, nextPollAt time.Time) (bool, error)
	// ClosePoll clears the open poll if it is still the one created at createdAt.
	ClosePoll(ctx context.Context, createdAt time.Time) (bool, error)
}

// AktenPoolRepo defines the contract for the fairness pool repository
type AktenPoolRepo interface {
	List(ctx context.Context) ([]*entity.PoolCandidate, error)
	GetByName(ctx context.Context, name string) (*entity.PoolCandidate, error)
	Upsert(ctx context.Context, candidate *entity.PoolCandidate) error
	Delete(ctx context.Context, name string) error
	RecordAssignment(ctx context.Context, name string, at time.Time) error
	ResetFairness(ctx context.Context) (int64, error)
}

// AktenHistoryRepo defines the contract for the append-only rotation history
type AktenHistoryRepo interface {
	Create(ctx context.Context, entry *entity.AktenHistoryEntry) error
	List(ctx context.Context, limit int) ([]*entity.AktenHistoryEntry, error)
}

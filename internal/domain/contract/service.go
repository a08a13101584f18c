package contract

import (
	"context"
	"time"

	"github.com/galactic-marines/gm-automation/internal/domain/entity"
)

// PlannedMessageService manages planned messages and fires the due ones.
type PlannedMessageService interface {
	List(ctx context.Context) ([]*entity.PlannedMessage, error)
	Get(ctx context.Context, id int64) (*entity.PlannedMessage, error)
	Create(ctx context.Context, msg *entity.PlannedMessage) error
	Update(ctx context.Context, msg *entity.PlannedMessage) error
	Delete(ctx context.Context, id int64) error
	SendTest(ctx context.Context, id int64) (string, error)
	RunDue(ctx context.Context, now time.Time) (entity.PlannedRunResult, error)
}

// AktenService manages the Aktenkontrolle rotation.
type AktenService interface {
	GetSettings(ctx context.Context) (*entity.AktenSettings, error)
	UpdateSettings(ctx context.Context, settings *entity.AktenSettings) (*entity.AktenSettings, error)
	ListPool(ctx context.Context) ([]*entity.PoolCandidate, error)
	UpsertCandidate(ctx context.Context, candidate *entity.PoolCandidate) (*entity.PoolCandidate, error)
	RemoveCandidate(ctx context.Context, name string) error
	ResetFairness(ctx context.Context) (int64, error)
	ListHistory(ctx context.Context, limit int) ([]*entity.AktenHistoryEntry, error)
	Run(ctx context.Context, now time.Time) (entity.AktenRunResult, error)
}

// AutomationService is the single entry point invoked by the periodic trigger.
type AutomationService interface {
	Run(ctx context.Context, now time.Time) entity.AutomationResult
}

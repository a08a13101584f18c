package service

import (
	"context"
	"fmt"
	"time"

	"github.com/galactic-marines/gm-automation/internal/domain/contract"
	"github.com/galactic-marines/gm-automation/internal/domain/entity"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type automationService struct {
	planned contract.PlannedMessageService
	akten   contract.AktenService
}

func newAutomation(planned contract.PlannedMessageService, akten contract.AktenService) *automationService {
	return &automationService{
		planned: planned,
		akten:   akten,
	}
}

// Run executes one automation pass. The planned message runner and the
// Aktenkontrolle rotator run independently: a failure in one is reported as a
// warning and its counts stay zero, the other still runs.
func (s *automationService) Run(ctx context.Context, now time.Time) entity.AutomationResult {
	runID := uuid.NewString()
	logger := log.WithFields(log.Fields{"run_id": runID, "now": now.UTC().Format(time.RFC3339)})
	logger.Debug("Automation run started")

	result := entity.AutomationResult{Warnings: []string{}}

	planned, err := guard("planned", func() (entity.PlannedRunResult, error) {
		return s.planned.RunDue(ctx, now)
	})
	if err != nil {
		logger.Errorf("Planned message run failed: %v", err)
		result.Warnings = append(result.Warnings, planned.Warnings...)
		result.Warnings = append(result.Warnings, fmt.Sprintf("planned: %v", err))
	} else {
		result.Planned = planned
		result.Warnings = append(result.Warnings, planned.Warnings...)
	}

	akten, err := guard("akten", func() (entity.AktenRunResult, error) {
		return s.akten.Run(ctx, now)
	})
	if err != nil {
		logger.Errorf("Akten run failed: %v", err)
		result.Warnings = append(result.Warnings, akten.Warnings...)
		result.Warnings = append(result.Warnings, fmt.Sprintf("akten: %v", err))
	} else {
		result.Akten = akten
		result.Warnings = append(result.Warnings, akten.Warnings...)
	}

	logger.WithFields(log.Fields{
		"planned_sent":    result.Planned.Sent,
		"planned_touched": result.Planned.Touched,
		"akten_polls":     result.Akten.PollsSent,
		"akten_followups": result.Akten.FollowupsProcessed,
		"warnings":        len(result.Warnings),
	}).Info("Automation run finished")

	return result
}

// guard converts a panic inside fn into an error so one subsystem cannot
// take the whole invocation down.
func guard[T any](name string, fn func() (T, error)) (res T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			res = zero
			err = fmt.Errorf("%s panicked: %v", name, r)
		}
	}()
	return fn()
}

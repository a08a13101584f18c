// Package seed loads the rotation settings and candidate pool from a YAML file.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/galactic-marines/gm-automation/internal/domain/contract"
	"github.com/galactic-marines/gm-automation/pkg/models"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// File is the seed document. Both sections are optional.
type File struct {
	Settings *models.AktenSettingsRequest  `yaml:"settings"`
	Pool     []models.PoolCandidateRequest `yaml:"pool"`
}

type Summary struct {
	SettingsApplied bool
	Candidates      int
}

func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &f, nil
}

// Apply upserts every candidate and then the settings. Candidates go first so
// an enabled rotation never opens a poll against an empty pool.
// Existing fairness counters are preserved.
func Apply(ctx context.Context, akten contract.AktenService, f *File) (Summary, error) {
	var summary Summary

	for i, req := range f.Pool {
		candidate, err := akten.UpsertCandidate(ctx, req.ToEntity())
		if err != nil {
			return summary, fmt.Errorf("failed to seed pool entry %d: %w", i+1, err)
		}
		log.WithField("candidate", candidate.Name).Debug("Seeded pool candidate")
		summary.Candidates++
	}

	if f.Settings != nil {
		if _, err := akten.UpdateSettings(ctx, f.Settings.ToEntity()); err != nil {
			return summary, fmt.Errorf("failed to seed settings: %w", err)
		}
		summary.SettingsApplied = true
	}

	log.Infof("Seed applied: candidates=%d settings=%t", summary.Candidates, summary.SettingsApplied)
	return summary, nil
}

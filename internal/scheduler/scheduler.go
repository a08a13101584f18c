// Package scheduler triggers the automation from inside the server process.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/galactic-marines/gm-automation/internal/domain/contract"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// DefaultRunTimeout bounds a single automation run started by the trigger.
const DefaultRunTimeout = 2 * time.Minute

type Scheduler struct {
	automation contract.AutomationService
	spec       string
	parser     cron.Parser
	timeout    time.Duration
	clock      func() time.Time

	mu sync.Mutex
	c  *cron.Cron
}

// New validates spec eagerly so a typo fails at startup instead of silently
// never firing. Specs are evaluated in UTC; the automation itself is zone aware.
func New(automation contract.AutomationService, spec string) (*Scheduler, error) {
	s := &Scheduler{
		automation: automation,
		spec:       spec,
		parser:     cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
		timeout:    DefaultRunTimeout,
		clock:      time.Now,
	}
	if _, err := s.parser.Parse(spec); err != nil {
		return nil, fmt.Errorf("invalid automation cron spec %q: %w", spec, err)
	}
	return s, nil
}

// Start registers the job and starts the cron loop. Calling Start twice is a no-op.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.c != nil {
		return nil
	}

	logger := cron.PrintfLogger(log.StandardLogger())
	c := cron.New(
		cron.WithParser(s.parser),
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	if _, err := c.AddFunc(s.spec, func() { s.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("failed to register automation job: %w", err)
	}

	c.Start()
	s.c = c
	log.WithField("spec", s.spec).Info("Automation scheduler started")
	return nil
}

// Stop halts the loop and waits for a running job, or until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	s.mu.Lock()
	c := s.c
	s.c = nil
	s.mu.Unlock()

	if c == nil {
		return
	}
	select {
	case <-c.Stop().Done():
		log.Info("Automation scheduler stopped")
	case <-ctx.Done():
		log.Warn("Automation scheduler stop timed out while a run was in progress")
	}
}

// RunOnce performs one automation run with the trigger's timeout.
func (s *Scheduler) RunOnce(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result := s.automation.Run(runCtx, s.clock())
	if len(result.Warnings) > 0 {
		log.WithField("warnings", len(result.Warnings)).Warn("Scheduled automation run finished with warnings")
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schedule runs periodic ingestion while the server is up.
package schedule

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is the work a tick performs.
type Job func(ctx context.Context) error

// Scheduler drives a Job on a cron spec.
type Scheduler struct {
	cron *cron.Cron
	log  *zap.SugaredLogger
}

// New registers job under the standard 5-field cron spec. The job's error
// is logged, not propagated; the next tick still fires.
func New(spec string, job Job, log *zap.SugaredLogger) (*Scheduler, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if err := job(context.Background()); err != nil {
			log.Errorw("scheduled ingestion failed", "error", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}
	return &Scheduler{cron: c, log: log}, nil
}

// Start launches the cron loop in its own goroutine.
func (s *Scheduler) Start() {
	s.log.Infow("scheduler started")
	s.cron.Start()
}

// Stop halts scheduling and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Infow("scheduler stopped")
}

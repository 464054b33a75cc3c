package bot

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"go-web3jobs-bot/internal/config"
)

// Scheduler fires an unseen-only fetch on a fixed interval, plus once right
// at startup. It shares the orchestrator's single-flight gate, so a run that
// collides with a command-triggered fetch is skipped, not queued.
type Scheduler struct {
	orch *Orchestrator
	cfg  *config.Config
	log  zerolog.Logger
	cron *cron.Cron
}

func NewScheduler(orch *Orchestrator, cfg *config.Config, log zerolog.Logger) *Scheduler {
	return &Scheduler{orch: orch, cfg: cfg, log: log}
}

func (s *Scheduler) Start(ctx context.Context) error {
	//run immediately on startup, off the caller's goroutine
	go s.orch.Run(ctx, ModeUnseen, true)

	s.cron = cron.New()
	spec := fmt.Sprintf("@every %dh", s.cfg.ScrapeIntervalHours)
	if _, err := s.cron.AddFunc(spec, func() {
		s.orch.Run(ctx, ModeUnseen, true)
	}); err != nil {
		return fmt.Errorf("schedule fetch: %w", err)
	}
	s.cron.Start()

	s.log.Info().Int("interval_hours", s.cfg.ScrapeIntervalHours).Msg("⏰ scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

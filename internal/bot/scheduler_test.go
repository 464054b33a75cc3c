package bot

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSchedulerRunsOnceAtStartup(t *testing.T) {
	scraper := &fakeScraper{}
	cfg := testConfig(t)
	orch := newTestOrchestrator(scraper, &fakeSeen{}, newFakeTransport(), cfg)

	s := NewScheduler(orch, cfg, zerolog.Nop())
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	require.Eventually(t, func() bool {
		return scraper.callCount() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSchedulerAcceptsConfiguredInterval(t *testing.T) {
	cfg := testConfig(t)
	cfg.ScrapeIntervalHours = 6
	orch := newTestOrchestrator(&fakeScraper{}, &fakeSeen{}, newFakeTransport(), cfg)

	s := NewScheduler(orch, cfg, zerolog.Nop())
	require.NoError(t, s.Start(context.Background()))
	s.Stop()
}

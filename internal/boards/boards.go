// Define an interface for all board scrapers
// Aggregate their output behind one FetchAll

package boards

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"go-web3jobs-bot/internal/models"
)

// Scraper is implemented once per job board.
type Scraper interface {
	//Scrape pulls the board's current listings
	Scrape(ctx context.Context) ([]models.Job, error)

	//Name is the board name (Lever, RemoteOK, ...)
	Name() string
}

// Aggregator runs every registered board and concatenates the results.
// A single failing board is logged and skipped; FetchAll only errors when
// every board fails, so one downed site never blanks the whole run.
type Aggregator struct {
	scrapers []Scraper
	log      zerolog.Logger
}

func NewAggregator(log zerolog.Logger, scrapers ...Scraper) *Aggregator {
	return &Aggregator{scrapers: scrapers, log: log}
}

func (a *Aggregator) FetchAll(ctx context.Context) ([]models.Job, error) {
	var all []models.Job
	failed := 0
	for _, s := range a.scrapers {
		jobs, err := s.Scrape(ctx)
		if err != nil {
			a.log.Error().Err(err).Str("board", s.Name()).Msg("❌ board scrape failed")
			failed++
			continue
		}
		a.log.Info().Str("board", s.Name()).Int("jobs", len(jobs)).Msg("✅ board scraped")
		all = append(all, jobs...)
	}

	if failed > 0 && failed == len(a.scrapers) {
		return nil, fmt.Errorf("all %d boards failed", failed)
	}
	return all, nil
}

package bot

import (
	"context"
	"fmt"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"go-web3jobs-bot/internal/companies"
	"go-web3jobs-bot/internal/config"
	"go-web3jobs-bot/internal/filter"
	"go-web3jobs-bot/internal/models"
	"go-web3jobs-bot/internal/notify"
)

// FetchMode selects whether a run reports everything or only unseen listings.
type FetchMode int

const (
	ModeAll FetchMode = iota
	ModeUnseen
)

// RunOutcome is the terminal state of one fetch run.
type RunOutcome int

const (
	OutcomeSent RunOutcome = iota
	OutcomeEmpty
	OutcomeBusy
	OutcomeError
)

// Alert when a scrape returns fewer raw listings than this; it usually means
// a board changed its markup or is down.
const rawJobThreshold = 50

// Scraper produces raw listings from every configured board.
type Scraper interface {
	FetchAll(ctx context.Context) ([]models.Job, error)
}

// SeenStore narrows listings to undelivered ones and records deliveries.
type SeenStore interface {
	FilterUnseen(jobs []models.Job) []models.Job
	MarkSeen(jobs []models.Job)
}

// Transport is the messaging side: send, clear, long-poll.
type Transport interface {
	SendHTML(text string) error
	ClearSent() (deleted, tracked int)
	Updates(offset, timeoutSec int) ([]tgbotapi.Update, error)
	Username() string
}

// Orchestrator owns the fetch pipeline and the single-flight gate shared by
// command-triggered and scheduled runs.
type Orchestrator struct {
	scraper   Scraper
	seen      SeenStore
	transport Transport
	filter    *filter.Filter
	cfg       *config.Config
	log       zerolog.Logger

	//non-blocking single-flight gate: losers back off, they don't queue
	fetchMu sync.Mutex

	//minimum raw listings before a board health alert fires
	rawThreshold int
}

func NewOrchestrator(scraper Scraper, seen SeenStore, transport Transport, f *filter.Filter, cfg *config.Config, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		scraper:   scraper,
		seen:      seen,
		transport: transport,
		filter:    f,
		cfg:       cfg,
		log:       log,

		rawThreshold: rawJobThreshold,
	}
}

// Run executes one fetch: scrape, filter, optionally narrow to unseen, chunk
// and dispatch, then mark delivered listings as seen. Errors are reported to
// the chat and never propagated. The gate is released on every exit path.
func (o *Orchestrator) Run(ctx context.Context, mode FetchMode, scheduled bool) RunOutcome {
	if !o.fetchMu.TryLock() {
		if scheduled {
			o.log.Info().Msg("⏭️ skipping scheduled run, fetch already in progress")
		} else {
			o.send("⏳ Already fetching — please wait.")
		}
		return OutcomeBusy
	}
	defer o.fetchMu.Unlock()

	if !scheduled {
		o.send("🔍 Fetching jobs... give me a sec.")
	}

	raw, err := o.scraper.FetchAll(ctx)
	if err != nil {
		return o.reportError(err, scheduled)
	}
	o.checkBoardHealth(len(raw))

	jobs := o.filter.Apply(raw)
	o.log.Info().Int("raw", len(raw)).Int("relevant", len(jobs)).Msg("🔎 listings filtered")

	if mode == ModeUnseen {
		jobs = o.seen.FilterUnseen(jobs)
		o.log.Info().Int("unseen", len(jobs)).Msg("🔍 dedup applied")
	}

	if len(jobs) == 0 {
		if !scheduled || !o.cfg.SilentIfEmpty {
			o.send("✅ No new jobs found right now. Check back later!")
		}
		return OutcomeEmpty
	}

	for _, msg := range notify.BuildMessages(jobs) {
		if err := o.transport.SendHTML(msg); err != nil {
			//nothing gets marked seen on a mid-dispatch failure
			return o.reportError(fmt.Errorf("send batch: %w", err), scheduled)
		}
	}

	o.cacheCompanies(jobs)

	if mode == ModeUnseen {
		o.seen.MarkSeen(jobs)
	}

	o.log.Info().Int("sent", len(jobs)).Msg("📨 run complete")
	return OutcomeSent
}

// send delivers a notice, swallowing transport failures.
func (o *Orchestrator) send(text string) {
	if err := o.transport.SendHTML(text); err != nil {
		o.log.Warn().Err(err).Msg("failed to send notice")
	}
}

func (o *Orchestrator) reportError(err error, scheduled bool) RunOutcome {
	o.log.Error().Err(err).Bool("scheduled", scheduled).Msg("❌ fetch run failed")
	if scheduled {
		o.send(fmt.Sprintf("⚠️ Scheduled scrape failed: %v", err))
	} else {
		o.send(fmt.Sprintf("❌ Error fetching jobs: %v", err))
	}
	return OutcomeError
}

func (o *Orchestrator) checkBoardHealth(rawCount int) {
	if o.rawThreshold <= 0 || rawCount >= o.rawThreshold {
		return
	}
	o.send(fmt.Sprintf(
		"⚠️ <b>Board health alert:</b> only %d raw jobs fetched (expected >%d). One or more boards may be down.",
		rawCount, o.rawThreshold,
	))
}

// cacheCompanies refreshes the current-companies cache that backs /twitter.
func (o *Orchestrator) cacheCompanies(jobs []models.Job) {
	seen := mapset.NewSet[string]()
	var names []string
	for _, job := range jobs {
		if job.Company == "" || seen.Contains(job.Company) {
			continue
		}
		seen.Add(job.Company)
		names = append(names, job.Company)
	}
	if err := companies.SaveCurrent(o.cfg.DataDir, names); err != nil {
		o.log.Warn().Err(err).Msg("failed to cache hiring companies")
	}
}

package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"go-web3jobs-bot/internal/companies"
	"go-web3jobs-bot/internal/config"
)

const (
	//server-side long-poll wait per getUpdates call
	pollTimeoutSecs = 30
	//commands older than this were queued while the bot was offline; drop them
	staleCommandWindow = 60 * time.Second
	//pause before retrying after a failed poll
	pollRetryDelay = 5 * time.Second
)

const helpText = "<b>Web3 Job Bot</b> 🤖\n\n" +
	"/jobs — show latest Web3 marketing jobs\n" +
	"/new — show only jobs you haven't seen yet\n" +
	"/twitter — X profiles of companies hiring for marketing\n" +
	"/clear — delete all bot messages in this chat\n" +
	"/help — this message"

// CommandProcessor drives the long-poll loop and maps inbound commands onto
// orchestrator actions. Only messages from the configured chat are honored;
// the offset cursor advances past every update either way.
type CommandProcessor struct {
	orch      *Orchestrator
	transport Transport
	cfg       *config.Config
	log       zerolog.Logger

	offset int
	now    func() time.Time
}

func NewCommandProcessor(orch *Orchestrator, transport Transport, cfg *config.Config, log zerolog.Logger) *CommandProcessor {
	return &CommandProcessor{
		orch:      orch,
		transport: transport,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

// Poll blocks, long-polling for commands until ctx is canceled. Fetches run
// in their own goroutines so the next poll is never blocked by one.
func (p *CommandProcessor) Poll(ctx context.Context) {
	p.log.Info().Msg("🤖 listening for commands")
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		updates, err := p.transport.Updates(p.offset, pollTimeoutSecs)
		if err != nil {
			p.log.Warn().Err(err).Msg("getUpdates failed")
			time.Sleep(pollRetryDelay)
			continue
		}
		for _, update := range updates {
			p.processUpdate(ctx, update)
		}
	}
}

func (p *CommandProcessor) processUpdate(ctx context.Context, update tgbotapi.Update) {
	//cursor discipline: never reprocess an update, acted on or not
	p.offset = update.UpdateID + 1

	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return
	}
	if msg.Chat.ID != p.cfg.TelegramChatID {
		return
	}
	if !strings.HasPrefix(msg.Text, "/") {
		return
	}

	if p.now().Sub(time.Unix(int64(msg.Date), 0)) > staleCommandWindow {
		p.log.Info().Str("command", msg.Text).Msg("ignoring stale command")
		return
	}

	p.log.Info().Str("command", msg.Text).Msg("command received")
	p.handleCommand(ctx, msg.Text)
}

func (p *CommandProcessor) handleCommand(ctx context.Context, text string) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	if len(fields) == 0 {
		return
	}
	cmd, _, _ := strings.Cut(fields[0], "@")

	switch cmd {
	case "/jobs":
		go p.orch.Run(ctx, ModeAll, false)
	case "/new":
		go p.orch.Run(ctx, ModeUnseen, false)
	case "/clear":
		p.handleClear()
	case "/twitter", "/x":
		p.handleTwitter()
	case "/help", "/start":
		p.send(helpText)
	default:
		p.send("Unknown command. Try /jobs, /new, /clear, /twitter, or /help.")
	}
}

func (p *CommandProcessor) handleClear() {
	deleted, tracked := p.transport.ClearSent()
	if tracked == 0 {
		p.send("Nothing to clear yet.")
		return
	}
	p.log.Info().Int("deleted", deleted).Int("tracked", tracked).Msg("🧹 cleared sent messages")
	p.send(fmt.Sprintf("🧹 Deleted %d of %d messages.", deleted, tracked))
}

func (p *CommandProcessor) handleTwitter() {
	names := companies.LoadCurrent(p.cfg.DataDir)
	links := companies.Links(names)
	if len(links) == 0 {
		p.send("No company data cached yet.\nSend /jobs to fetch fresh listings first.")
		return
	}
	p.send(
		"<b>Companies currently hiring for marketing on X:</b>\n" +
			"<i>Tap any to view their profile</i>\n\n" +
			strings.Join(links, "\n"),
	)
}

func (p *CommandProcessor) send(text string) {
	if err := p.transport.SendHTML(text); err != nil {
		p.log.Warn().Err(err).Msg("failed to send reply")
	}
}

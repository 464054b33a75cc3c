package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"go-web3jobs-bot/internal/boards"
	"go-web3jobs-bot/internal/bot"
	"go-web3jobs-bot/internal/config"
	"go-web3jobs-bot/internal/dedup"
	"go-web3jobs-bot/internal/filter"
	"go-web3jobs-bot/internal/telegram"
)

func main() {
	level := zerolog.InfoLevel
	if os.Getenv("DEBUG") != "" {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	//config is fatal at startup: the bot must not run partially configured
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	policy, err := filter.LoadPolicy(cfg.PolicyPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.PolicyPath).Msg("invalid filter policy")
	}

	transport, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init Telegram bot")
	}
	log.Info().Str("bot", transport.Username()).Msg("🤖 Telegram bot initialized")

	client, err := boards.NewClient()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init HTTP client")
	}
	scraper := boards.NewAggregator(log,
		boards.NewLever(client, cfg.LeverCompanies),
		boards.NewRemoteOK(client),
		boards.NewWeb3Career(client),
	)

	cacheDir := ".cache"
	if cfg.DataDir != "" {
		cacheDir = filepath.Join(cfg.DataDir, "cache")
	}
	seen := dedup.NewSeenStore(cacheDir, log)

	ctx := context.Background()
	orch := bot.NewOrchestrator(scraper, seen, transport, filter.New(policy), cfg, log)

	scheduler := bot.NewScheduler(orch, cfg, log)
	if err := scheduler.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to start scheduler")
	}
	defer scheduler.Stop()

	//blocks, long-polling for commands
	bot.NewCommandProcessor(orch, transport, cfg, log).Poll(ctx)
}

// Load envs from .env
// Validate required credentials
// Provide default values

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken  string
	TelegramChatID int64
	// ScrapeIntervalHours drives the scheduled fetch. Floored at 1.
	ScrapeIntervalHours int
	// SilentIfEmpty suppresses the "no new jobs" notice when a run finds nothing.
	SilentIfEmpty bool
	// DataDir is an optional secondary location for cached data (cloud volume).
	DataDir string
	// PolicyPath points at the YAML file holding the filter keyword catalogues.
	PolicyPath string
	// LeverCompanies are the Lever-hosted companies whose postings get polled.
	LeverCompanies []string
}

// defaultLeverCompanies are web3 shops known to host openings on Lever.
var defaultLeverCompanies = []string{
	"ledger",
	"kraken",
	"moonpay",
	"dydx",
	"immutable",
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ScrapeIntervalHours: 24,
		SilentIfEmpty:       true,
		PolicyPath:          "configs/policy.yaml",
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	chatID := os.Getenv("TELEGRAM_CHAT_ID")
	if chatID == "" {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID is required")
	}
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
	}
	cfg.TelegramChatID = id

	if hours := os.Getenv("SCRAPE_INTERVAL_HOURS"); hours != "" {
		h, err := strconv.Atoi(hours)
		if err != nil {
			return nil, fmt.Errorf("invalid SCRAPE_INTERVAL_HOURS: %w", err)
		}
		cfg.ScrapeIntervalHours = h
	}
	if cfg.ScrapeIntervalHours < 1 {
		cfg.ScrapeIntervalHours = 1
	}

	if silent := os.Getenv("SILENT_IF_EMPTY"); silent != "" {
		cfg.SilentIfEmpty = strings.EqualFold(silent, "true")
	}

	cfg.DataDir = os.Getenv("DATA_DIR")

	if path := os.Getenv("POLICY_PATH"); path != "" {
		cfg.PolicyPath = path
	}

	cfg.LeverCompanies = defaultLeverCompanies
	if raw := os.Getenv("LEVER_COMPANIES"); raw != "" {
		var names []string
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		if len(names) > 0 {
			cfg.LeverCompanies = names
		}
	}

	return cfg, nil
}

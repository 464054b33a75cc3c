package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-100200300")
	t.Setenv("SCRAPE_INTERVAL_HOURS", "")
	t.Setenv("SILENT_IF_EMPTY", "")
	t.Setenv("DATA_DIR", "")
	t.Setenv("POLICY_PATH", "")
	t.Setenv("LEVER_COMPANIES", "")
}

func TestLoadLeverCompaniesOverride(t *testing.T) {
	setRequired(t)
	t.Setenv("LEVER_COMPANIES", "acme, chainworks ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"acme", "chainworks"}, cfg.LeverCompanies)
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "123:abc", cfg.TelegramToken)
	assert.Equal(t, int64(-100200300), cfg.TelegramChatID)
	assert.Equal(t, 24, cfg.ScrapeIntervalHours)
	assert.True(t, cfg.SilentIfEmpty)
	assert.Equal(t, "configs/policy.yaml", cfg.PolicyPath)
}

func TestLoadMissingToken(t *testing.T) {
	setRequired(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	_, err := Load()
	assert.ErrorContains(t, err, "TELEGRAM_BOT_TOKEN")
}

func TestLoadMissingChatID(t *testing.T) {
	setRequired(t)
	t.Setenv("TELEGRAM_CHAT_ID", "")

	_, err := Load()
	assert.ErrorContains(t, err, "TELEGRAM_CHAT_ID")
}

func TestLoadInvalidChatID(t *testing.T) {
	setRequired(t)
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")

	_, err := Load()
	assert.ErrorContains(t, err, "invalid TELEGRAM_CHAT_ID")
}

func TestLoadIntervalFlooredAtOne(t *testing.T) {
	setRequired(t)
	t.Setenv("SCRAPE_INTERVAL_HOURS", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.ScrapeIntervalHours)
}

func TestLoadSilentFlag(t *testing.T) {
	setRequired(t)
	t.Setenv("SILENT_IF_EMPTY", "FALSE")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.SilentIfEmpty)
}

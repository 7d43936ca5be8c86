package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "asset", cfg.Statement.Format)
	assert.Equal(t, "windows-1251", cfg.Statement.Encoding)
	assert.Equal(t, 30, cfg.Webhook.TimeoutSeconds)
	assert.Equal(t, "/bank-transactions", cfg.Webhook.Endpoints.BankTransactions)
	assert.Equal(t, 30, cfg.Cache.TTLSeconds)
	assert.Equal(t, "0.02", cfg.Matching.AmountEpsilon)
	assert.Equal(t, 3, cfg.Matching.WindowDays)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("BARIN_LOG_LEVEL", "debug")
	t.Setenv("BARIN_MATCHING_WINDOW_DAYS", "5")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Matching.WindowDays)
}

func TestInitializeConfigWebhookURLAlias(t *testing.T) {
	t.Setenv("BARIN_WEBHOOK_URL", "https://n8n.example.com/webhook")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://n8n.example.com/webhook", cfg.Webhook.BaseURL)
}

func TestInitializeConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad log level", "BARIN_LOG_LEVEL", "chatty"},
		{"bad log format", "BARIN_LOG_FORMAT", "xml"},
		{"multi-char delimiter", "BARIN_CSV_DELIMITER", ";;"},
		{"timeout too large", "BARIN_WEBHOOK_TIMEOUT_SECONDS", "9000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"
	logger := ConfigureLoggingFromConfig(cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

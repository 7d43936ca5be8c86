// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter      string `mapstructure:"delimiter" yaml:"delimiter"`
		IncludeHeaders bool   `mapstructure:"include_headers" yaml:"include_headers"`
	} `mapstructure:"csv" yaml:"csv"`

	Statement struct {
		Format   string `mapstructure:"format" yaml:"format"`
		Encoding string `mapstructure:"encoding" yaml:"encoding"`
	} `mapstructure:"statement" yaml:"statement"`

	Webhook struct {
		BaseURL        string `mapstructure:"base_url" yaml:"base_url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		Endpoints      struct {
			BankTransactions      string `mapstructure:"bank_transactions" yaml:"bank_transactions"`
			SaveBankTransactions  string `mapstructure:"save_bank_transactions" yaml:"save_bank_transactions"`
			UpdateBankTransaction string `mapstructure:"update_bank_transaction" yaml:"update_bank_transaction"`
			Invoices              string `mapstructure:"invoices" yaml:"invoices"`
		} `mapstructure:"endpoints" yaml:"endpoints"`
	} `mapstructure:"webhook" yaml:"webhook"`

	Cache struct {
		TTLSeconds int `mapstructure:"ttl_seconds" yaml:"ttl_seconds"`
	} `mapstructure:"cache" yaml:"cache"`

	Rules struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"rules" yaml:"rules"`

	Matching struct {
		AmountEpsilon string `mapstructure:"amount_epsilon" yaml:"amount_epsilon"`
		WindowDays    int    `mapstructure:"window_days" yaml:"window_days"`
	} `mapstructure:"matching" yaml:"matching"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then BARIN_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.barin-alp")
	v.AddConfigPath(".barin-alp")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BARIN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// The webhook URL is always overridable from the unprefixed variable the
	// deployment scripts export.
	if err := v.BindEnv("webhook.base_url", "BARIN_WEBHOOK_URL"); err != nil {
		fmt.Printf("Warning: failed to bind BARIN_WEBHOOK_URL environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.include_headers", true)

	v.SetDefault("statement.format", "asset")
	v.SetDefault("statement.encoding", "windows-1251")

	v.SetDefault("webhook.base_url", "")
	v.SetDefault("webhook.timeout_seconds", 30)
	v.SetDefault("webhook.endpoints.bank_transactions", "/bank-transactions")
	v.SetDefault("webhook.endpoints.save_bank_transactions", "/bank-transactions/save")
	v.SetDefault("webhook.endpoints.update_bank_transaction", "/bank-transactions/update")
	v.SetDefault("webhook.endpoints.invoices", "/invoices")

	v.SetDefault("cache.ttl_seconds", 30)

	v.SetDefault("rules.file", "rules.yaml")

	v.SetDefault("matching.amount_epsilon", "0.02")
	v.SetDefault("matching.window_days", 3)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Webhook.TimeoutSeconds < 1 || config.Webhook.TimeoutSeconds > 300 {
		return fmt.Errorf("webhook.timeout_seconds must be between 1 and 300, got: %d", config.Webhook.TimeoutSeconds)
	}

	if config.Cache.TTLSeconds < 0 {
		return fmt.Errorf("cache.ttl_seconds must not be negative, got: %d", config.Cache.TTLSeconds)
	}

	if config.Matching.WindowDays < 0 {
		return fmt.Errorf("matching.window_days must not be negative, got: %d", config.Matching.WindowDays)
	}

	return nil
}

// ConfigureLoggingFromConfig configures a logrus logger based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

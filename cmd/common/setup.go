// Package common contains shared wiring for command handlers.
package common

import (
	"fmt"
	"time"

	"github.com/Georgi-Piskov/barin-alp-system/internal/cache"
	"github.com/Georgi-Piskov/barin-alp-system/internal/categorizer"
	"github.com/Georgi-Piskov/barin-alp-system/internal/config"
	"github.com/Georgi-Piskov/barin-alp-system/internal/logging"
	"github.com/Georgi-Piskov/barin-alp-system/internal/matcher"
	"github.com/Georgi-Piskov/barin-alp-system/internal/pipeline"
	"github.com/Georgi-Piskov/barin-alp-system/internal/store"

	"github.com/shopspring/decimal"
)

// NewCategorizer builds a categorizer from the configured rules file,
// falling back to the built-in rule set.
func NewCategorizer(cfg *config.Config, log logging.Logger) (*categorizer.Categorizer, error) {
	rules, err := store.LoadRules(cfg.Rules.File, log)
	if err != nil {
		return nil, err
	}
	return categorizer.New(rules, log), nil
}

// NewMatcher builds a matcher from the configured tolerances.
func NewMatcher(cfg *config.Config) (*matcher.Matcher, error) {
	epsilon, err := decimal.NewFromString(cfg.Matching.AmountEpsilon)
	if err != nil {
		return nil, fmt.Errorf("invalid matching.amount_epsilon %q: %w", cfg.Matching.AmountEpsilon, err)
	}
	return matcher.New(epsilon, cfg.Matching.WindowDays), nil
}

// NewImporter wires the full pipeline against the configured webhook store.
// It fails fast when no webhook base URL is configured, since every store
// operation would fail anyway.
func NewImporter(cfg *config.Config, log logging.Logger) (*pipeline.Importer, error) {
	if cfg.Webhook.BaseURL == "" {
		return nil, fmt.Errorf("no webhook base URL configured; set BARIN_WEBHOOK_URL or webhook.base_url")
	}

	cat, err := NewCategorizer(cfg, log)
	if err != nil {
		return nil, err
	}
	m, err := NewMatcher(cfg)
	if err != nil {
		return nil, err
	}

	c := cache.New(time.Duration(cfg.Cache.TTLSeconds) * time.Second)
	client := store.NewClient(
		cfg.Webhook.BaseURL,
		store.Endpoints{
			BankTransactions:      cfg.Webhook.Endpoints.BankTransactions,
			SaveBankTransactions:  cfg.Webhook.Endpoints.SaveBankTransactions,
			UpdateBankTransaction: cfg.Webhook.Endpoints.UpdateBankTransaction,
			Invoices:              cfg.Webhook.Endpoints.Invoices,
		},
		time.Duration(cfg.Webhook.TimeoutSeconds)*time.Second,
		c,
		log,
	)

	imp := pipeline.New(client, cat, m, log)
	imp.SetEncoding(cfg.Statement.Encoding)
	return imp, nil
}

// Package pipeline wires the parsing, categorization, deduplication and
// persistence stages into the operations the CLI exposes.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/Georgi-Piskov/barin-alp-system/internal/categorizer"
	"github.com/Georgi-Piskov/barin-alp-system/internal/dedup"
	"github.com/Georgi-Piskov/barin-alp-system/internal/logging"
	"github.com/Georgi-Piskov/barin-alp-system/internal/matcher"
	"github.com/Georgi-Piskov/barin-alp-system/internal/models"
	"github.com/Georgi-Piskov/barin-alp-system/internal/parser"
	"github.com/Georgi-Piskov/barin-alp-system/internal/summary"
)

// Store is the persistence surface the pipeline needs. *store.Client
// implements it.
type Store interface {
	GetBankTransactions(ctx context.Context) ([]models.BankTransaction, error)
	SaveBankTransactions(ctx context.Context, txs []models.BankTransaction) (inserted, duplicates int, err error)
	UpdateBankTransaction(ctx context.Context, tx models.BankTransaction) error
	GetInvoices(ctx context.Context) ([]models.Invoice, error)
}

// ImportResult reports what a statement import did. Stats covers the full
// persisted set after the import, not just the new batch.
type ImportResult struct {
	Parsed         int
	Inserted       int
	DuplicateCount int
	Stats          models.Stats
	Transactions   []models.BankTransaction
}

// Importer runs statement files through the full import pipeline.
type Importer struct {
	store       Store
	categorizer *categorizer.Categorizer
	matcher     *matcher.Matcher
	encoding    string
	logger      logging.Logger
}

// New builds an Importer. A nil categorizer or matcher gets the defaults.
func New(store Store, cat *categorizer.Categorizer, m *matcher.Matcher, logger logging.Logger) *Importer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if cat == nil {
		cat = categorizer.New(nil, logger)
	}
	if m == nil {
		m = matcher.New(matcher.DefaultAmountEpsilon, matcher.DefaultWindowDays)
	}
	return &Importer{store: store, categorizer: cat, matcher: m, logger: logger}
}

// SetEncoding overrides the source encoding for CSV statements. An empty
// value keeps the bank's default.
func (imp *Importer) SetEncoding(encoding string) {
	imp.encoding = encoding
}

// Parse reads a statement in the given format and returns the categorized
// transactions without touching the store.
func (imp *Importer) Parse(r io.Reader, format string) ([]models.BankTransaction, error) {
	p, err := parser.GetParserWithEncoding(parser.Type(format), imp.encoding, imp.logger)
	if err != nil {
		return nil, err
	}
	txs, err := p.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s statement: %w", format, err)
	}
	return imp.categorizer.CategorizeAll(txs), nil
}

// Import parses a statement, drops transactions already in the store, saves
// the rest and returns counts plus aggregate statistics over the full stored
// set including the new batch. Re-importing the same statement inserts
// nothing.
func (imp *Importer) Import(ctx context.Context, r io.Reader, format string) (ImportResult, error) {
	txs, err := imp.Parse(r, format)
	if err != nil {
		return ImportResult{}, err
	}

	existing, err := imp.store.GetBankTransactions(ctx)
	if err != nil {
		return ImportResult{}, fmt.Errorf("fetching stored transactions: %w", err)
	}

	toInsert, duplicates := dedup.FilterNew(txs, existing, imp.logger)
	if len(toInsert) > 0 {
		inserted, serverDuplicates, err := imp.store.SaveBankTransactions(ctx, toInsert)
		if err != nil {
			return ImportResult{}, fmt.Errorf("saving transactions: %w", err)
		}
		if inserted != len(toInsert) || serverDuplicates > 0 {
			imp.logger.Warn("store reported different insert counts",
				logging.Field{Key: "sent", Value: len(toInsert)},
				logging.Field{Key: logging.FieldInserted, Value: inserted},
				logging.Field{Key: logging.FieldDuplicates, Value: serverDuplicates},
			)
		}
	}

	persisted := make([]models.BankTransaction, 0, len(existing)+len(toInsert))
	persisted = append(persisted, existing...)
	persisted = append(persisted, toInsert...)

	result := ImportResult{
		Parsed:         len(txs),
		Inserted:       len(toInsert),
		DuplicateCount: duplicates,
		Stats:          summary.Summarize(persisted),
		Transactions:   toInsert,
	}

	imp.logger.Info("statement import finished",
		logging.Field{Key: logging.FieldInserted, Value: result.Inserted},
		logging.Field{Key: logging.FieldDuplicates, Value: result.DuplicateCount},
	)
	return result, nil
}

// Match fetches stored transactions and invoices and pairs them up.
func (imp *Importer) Match(ctx context.Context) ([]matcher.MatchResult, error) {
	txs, err := imp.store.GetBankTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching stored transactions: %w", err)
	}
	invoices, err := imp.store.GetInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching invoices: %w", err)
	}
	return imp.matcher.MatchAll(txs, invoices), nil
}

// Stats summarizes everything currently in the store.
func (imp *Importer) Stats(ctx context.Context) (models.Stats, error) {
	txs, err := imp.store.GetBankTransactions(ctx)
	if err != nil {
		return models.ZeroStats(), fmt.Errorf("fetching stored transactions: %w", err)
	}
	return summary.Summarize(txs), nil
}

// Assign attaches a stored transaction to a construction object and marks
// it matched. Passing objectID 0 clears the assignment.
func (imp *Importer) Assign(ctx context.Context, id int64, objectID int64, objectName string) (models.BankTransaction, error) {
	txs, err := imp.store.GetBankTransactions(ctx)
	if err != nil {
		return models.BankTransaction{}, fmt.Errorf("fetching stored transactions: %w", err)
	}

	var found *models.BankTransaction
	for i := range txs {
		if txs[i].ID == id {
			found = &txs[i]
			break
		}
	}
	if found == nil {
		return models.BankTransaction{}, fmt.Errorf("transaction %d not found", id)
	}

	if objectID == 0 {
		found.ObjectID = nil
		found.ObjectName = ""
	} else {
		found.ObjectID = &objectID
		found.ObjectName = objectName
	}
	found.RecomputeStatus()

	if err := imp.store.UpdateBankTransaction(ctx, *found); err != nil {
		return models.BankTransaction{}, fmt.Errorf("updating transaction %d: %w", id, err)
	}

	imp.logger.Info("transaction assignment updated",
		logging.Field{Key: "transaction_id", Value: id},
		logging.Field{Key: logging.FieldObjectID, Value: objectID},
	)
	return *found, nil
}

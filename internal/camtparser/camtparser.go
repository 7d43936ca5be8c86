// Package camtparser parses ISO 20022 camt.053 bank-to-customer statement
// XML, the alternative export format some banks offer next to CSV.
package camtparser

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/Georgi-Piskov/barin-alp-system/internal/dateutils"
	"github.com/Georgi-Piskov/barin-alp-system/internal/logging"
	"github.com/Georgi-Piskov/barin-alp-system/internal/models"
	"github.com/Georgi-Piskov/barin-alp-system/internal/parsererror"

	"github.com/shopspring/decimal"
)

const parserName = "camt"

// Parser reads camt.053 statement XML.
type Parser struct {
	logger logging.Logger
}

// New creates a camt.053 statement parser.
func New(logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{logger: logger}
}

// Parse reads the XML document and returns normalized transactions in entry
// order. Entries with an unparsable amount or date are skipped with a
// warning; a document without statement entries yields an empty slice.
func (p *Parser) Parse(r io.Reader) ([]models.BankTransaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading statement: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		p.logger.Info("Statement is empty, nothing to parse")
		return []models.BankTransaction{}, nil
	}

	var document camtDocument
	if err := xml.Unmarshal(data, &document); err != nil {
		return nil, &parsererror.InvalidFormatError{
			Parser:         parserName,
			ExpectedFormat: "camt.053 XML",
			Msg:            fmt.Sprintf("cannot unmarshal document: %v", err),
		}
	}

	transactions := []models.BankTransaction{}
	for _, stmt := range document.BkToCstmrStmt.Stmt {
		for i, entry := range stmt.Ntry {
			tx, err := p.entryToTransaction(entry, stmt.Acct.Ccy)
			if err != nil {
				p.logger.WithError(err).Warn("Skipping statement entry",
					logging.Field{Key: logging.FieldRow, Value: i + 1})
				continue
			}
			transactions = append(transactions, tx)
		}
	}

	p.logger.Info("Parsed statement",
		logging.Field{Key: logging.FieldParser, Value: parserName},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return transactions, nil
}

// entryToTransaction converts one camt.053 entry into a normalized record.
func (p *Parser) entryToTransaction(entry camtEntry, accountCcy string) (models.BankTransaction, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(entry.Amt.Text))
	if err != nil {
		return models.BankTransaction{}, &parsererror.ParseError{
			Parser: parserName, Field: "amount", Value: entry.Amt.Text, Err: err,
		}
	}
	if !amount.IsPositive() {
		return models.BankTransaction{}, &parsererror.ParseError{
			Parser: parserName, Field: "amount", Value: entry.Amt.Text,
			Err: fmt.Errorf("amount must be positive"),
		}
	}

	date, err := dateutils.ParseDateString(entry.BookgDt.Dt)
	if err != nil {
		return models.BankTransaction{}, &parsererror.ParseError{
			Parser: parserName, Field: "date", Value: entry.BookgDt.Dt, Err: err,
		}
	}

	txType := models.TypeDebit
	if entry.CdtDbtInd == "CRDT" {
		txType = models.TypeCredit
	}

	currency := entry.Amt.Ccy
	if currency == "" {
		currency = accountCcy
	}

	tx := models.BankTransaction{
		Date:             dateutils.TruncateToDay(date),
		Reference:        entry.NtryRef,
		Description:      entry.description(),
		CounterpartyName: entry.counterparty(txType),
		IBAN:             entry.counterpartyIBAN(txType),
		Type:             txType,
		Amount:           amount,
		Currency:         currency,
	}
	tx.SyncDateString()
	return tx, nil
}

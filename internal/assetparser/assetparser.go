// Package assetparser parses the bank's native statement export: a
// semicolon-delimited CSV encoded in windows-1251, one row per transaction.
package assetparser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/Georgi-Piskov/barin-alp-system/internal/dateutils"
	"github.com/Georgi-Piskov/barin-alp-system/internal/logging"
	"github.com/Georgi-Piskov/barin-alp-system/internal/models"
	"github.com/Georgi-Piskov/barin-alp-system/internal/parsererror"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const parserName = "asset"

// Statement column headers as exported by the bank. Matching is done by
// header name so column reordering between export versions is tolerated.
const (
	colDate         = "Дата"
	colReference    = "Референция"
	colDescription  = "Описание"
	colCounterparty = "Контрагент"
	colIBAN         = "IBAN"
	colDebit        = "Дебит"
	colCredit       = "Кредит"
	colBalance      = "Салдо"
	colCurrency     = "Валута"
)

var requiredColumns = []string{colDate, colDescription, colDebit, colCredit}

// Parser reads Asset Bank CSV statements.
type Parser struct {
	logger   logging.Logger
	encoding string
}

// New creates an Asset Bank statement parser. The statement byte stream is
// decoded from windows-1251 before row parsing.
func New(logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{logger: logger, encoding: "windows-1251"}
}

// NewWithEncoding creates a parser for statements in the given source
// encoding ("windows-1251" or "utf-8").
func NewWithEncoding(logger logging.Logger, encoding string) *Parser {
	p := New(logger)
	if encoding != "" {
		p.encoding = strings.ToLower(encoding)
	}
	return p
}

// Parse reads the statement and returns normalized transactions in the
// statement's row order. Malformed rows are skipped with a warning; an empty
// or header-only statement yields an empty slice. Input whose header cannot
// be recognized at all yields an InvalidFormatError.
func (p *Parser) Parse(r io.Reader) ([]models.BankTransaction, error) {
	decoded, err := p.decodeReader(r)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(decoded)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		p.logger.Info("Statement is empty, nothing to parse")
		return []models.BankTransaction{}, nil
	}
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			Parser:         parserName,
			ExpectedFormat: "semicolon-delimited CSV",
			Msg:            fmt.Sprintf("cannot read header: %v", err),
		}
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	transactions := []models.BankTransaction{}
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			p.logger.WithError(err).Warn("Skipping unreadable statement row",
				logging.Field{Key: logging.FieldRow, Value: rowNum})
			continue
		}

		tx, err := p.convertRecord(record, columns)
		if err != nil {
			p.logger.WithError(err).Warn("Skipping malformed statement row",
				logging.Field{Key: logging.FieldRow, Value: rowNum})
			continue
		}
		transactions = append(transactions, tx)
	}

	p.logger.Info("Parsed statement",
		logging.Field{Key: logging.FieldParser, Value: parserName},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return transactions, nil
}

// decodeReader wraps r with the source-encoding decoder.
func (p *Parser) decodeReader(r io.Reader) (io.Reader, error) {
	switch p.encoding {
	case "windows-1251", "cp1251":
		return transform.NewReader(r, charmap.Windows1251.NewDecoder()), nil
	case "", "utf-8", "utf8":
		return r, nil
	default:
		return nil, fmt.Errorf("unsupported statement encoding: %s", p.encoding)
	}
}

// mapColumns resolves header names to record indexes.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, &parsererror.InvalidFormatError{
				Parser:         parserName,
				ExpectedFormat: "Asset Bank statement CSV",
				Msg:            fmt.Sprintf("missing required column %q", required),
			}
		}
	}
	return columns, nil
}

// field returns the named column of the record, or "" when the row is short.
func field(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// convertRecord turns one statement row into a normalized transaction.
// Direction comes from which of the two amount columns is populated.
func (p *Parser) convertRecord(record []string, columns map[string]int) (models.BankTransaction, error) {
	dateStr := field(record, columns, colDate)
	date, err := dateutils.ParseDateString(dateStr)
	if err != nil {
		return models.BankTransaction{}, &parsererror.ParseError{
			Parser: parserName, Field: "date", Value: dateStr, Err: err,
		}
	}

	debitStr := field(record, columns, colDebit)
	creditStr := field(record, columns, colCredit)
	if (debitStr == "") == (creditStr == "") {
		return models.BankTransaction{}, &parsererror.ParseError{
			Parser: parserName, Field: "amount", Value: debitStr + "/" + creditStr,
			Err: fmt.Errorf("exactly one of debit and credit must be set"),
		}
	}

	txType := models.TypeDebit
	amountStr := debitStr
	if creditStr != "" {
		txType = models.TypeCredit
		amountStr = creditStr
	}
	amount, err := models.ParseAmount(amountStr)
	if err != nil {
		return models.BankTransaction{}, &parsererror.ParseError{
			Parser: parserName, Field: "amount", Value: amountStr, Err: err,
		}
	}
	if !amount.IsPositive() {
		return models.BankTransaction{}, &parsererror.ParseError{
			Parser: parserName, Field: "amount", Value: amountStr,
			Err: fmt.Errorf("amount must be positive"),
		}
	}

	tx := models.BankTransaction{
		Date:             dateutils.TruncateToDay(date),
		Reference:        field(record, columns, colReference),
		Description:      field(record, columns, colDescription),
		CounterpartyName: field(record, columns, colCounterparty),
		IBAN:             field(record, columns, colIBAN),
		Type:             txType,
		Amount:           amount,
		Currency:         field(record, columns, colCurrency),
	}
	if tx.Currency == "" {
		tx.Currency = "BGN"
	}

	if balanceStr := field(record, columns, colBalance); balanceStr != "" {
		if balance, err := models.ParseAmount(balanceStr); err == nil {
			tx.Balance = balance
		}
	}

	tx.SyncDateString()
	return tx, nil
}

// Package common provides the shared CSV export path used by the CLI
// commands.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Georgi-Piskov/barin-alp-system/internal/dateutils"
	"github.com/Georgi-Piskov/barin-alp-system/internal/logging"
	"github.com/Georgi-Piskov/barin-alp-system/internal/models"

	"github.com/gocarina/gocsv"
)

var log = logging.GetLogger()

// Delimiter is the output CSV delimiter. Configurable so exports can feed
// tools that expect semicolons.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger replaces the package logger.
func SetLogger(logger logging.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// exportRow is the flat shape a transaction takes in an exported CSV.
type exportRow struct {
	Date             string `csv:"date"`
	Reference        string `csv:"reference"`
	Description      string `csv:"description"`
	Counterparty     string `csv:"counterparty"`
	Type             string `csv:"type"`
	Amount           string `csv:"amount"`
	Currency         string `csv:"currency"`
	Category         string `csv:"category"`
	DisplayName      string `csv:"display_name"`
	IsCompanyExpense bool   `csv:"is_company_expense"`
	InvoiceRef       string `csv:"invoice_ref"`
	ObjectName       string `csv:"object_name"`
	Status           string `csv:"status"`
}

func toExportRow(tx models.BankTransaction) exportRow {
	return exportRow{
		Date:             dateutils.ToISODate(tx.Date),
		Reference:        tx.Reference,
		Description:      tx.Description,
		Counterparty:     tx.CounterpartyName,
		Type:             string(tx.Type),
		Amount:           tx.Amount.StringFixed(2),
		Currency:         tx.Currency,
		Category:         string(tx.Category),
		DisplayName:      tx.DisplayName,
		IsCompanyExpense: tx.IsCompanyExpense,
		InvoiceRef:       tx.InvoiceRef,
		ObjectName:       tx.ObjectName,
		Status:           string(tx.Status),
	}
}

// WriteTransactions writes transactions to w as CSV with the configured
// delimiter. Amounts are fixed to two decimal places and dates rendered as
// ISO.
func WriteTransactions(transactions []models.BankTransaction, w io.Writer) error {
	rows := make([]exportRow, len(transactions))
	for i, tx := range transactions {
		rows[i] = toExportRow(tx)
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("writing CSV data: %w", err)
	}
	return nil
}

// WriteTransactionsToFile writes transactions to the CSV file at path,
// creating parent directories as needed.
func WriteTransactionsToFile(transactions []models.BankTransaction, path string) error {
	log.Info("writing transactions to CSV file",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "count", Value: len(transactions)},
	)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file %s: %w", path, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("failed to close file")
		}
	}()

	return WriteTransactions(transactions, file)
}

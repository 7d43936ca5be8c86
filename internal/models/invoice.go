package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a supplier invoice recorded elsewhere in the system. This core
// only reads invoices, as candidates when matching debit transactions.
type Invoice struct {
	ID            int64           `json:"id"`
	Date          time.Time       `json:"-"`
	Supplier      string          `json:"supplier"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Total         decimal.Decimal `json:"total"`
	ObjectID      *int64          `json:"objectId,omitempty"`
	ObjectName    string          `json:"objectName,omitempty"`

	// DateString carries the wire representation of Date (ISO day format).
	DateString string `json:"date"`
}

// SyncDate fills the parsed date from the wire date field.
func (i *Invoice) SyncDate() {
	if i.DateString == "" {
		return
	}
	if d, err := time.Parse("2006-01-02", i.DateString); err == nil {
		i.Date = d
	}
}

// SyncDateString fills the wire date field from the parsed date.
func (i *Invoice) SyncDateString() {
	if !i.Date.IsZero() {
		i.DateString = i.Date.Format("2006-01-02")
	}
}

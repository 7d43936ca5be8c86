// Package models provides the data structures used throughout the application.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a bank transaction relative to the account.
type TransactionType string

const (
	TypeDebit  TransactionType = "debit"
	TypeCredit TransactionType = "credit"
)

// Category is the semantic class assigned to a bank transaction.
type Category string

const (
	CategoryCashWithdrawal Category = "cash_withdrawal"
	CategoryBankFees       Category = "bank_fees"
	CategoryLoanPayment    Category = "loan_payment"
	CategoryTransfer       Category = "transfer"
	CategoryOther          Category = "other"
)

// TransactionStatus tells whether a stored transaction has been assigned
// to a construction object.
type TransactionStatus string

const (
	StatusMatched   TransactionStatus = "matched"
	StatusUnmatched TransactionStatus = "unmatched"
)

// NoDescriptionLabel is the display fallback when a statement row carries
// neither a counterparty name nor a description. The Bulgarian literal is
// kept for parity with the reporting front-end.
const NoDescriptionLabel = "Без описание"

// BankTransaction represents one bank-statement line through its whole
// lifecycle: normalized by a parser, annotated by the categorizer, and
// finally persisted by the external store. ID is zero until persisted.
type BankTransaction struct {
	ID               int64             `json:"id,omitempty"`
	Date             time.Time         `json:"-"`
	Reference        string            `json:"reference"`
	Description      string            `json:"description"`
	CounterpartyName string            `json:"counterpartyName,omitempty"`
	Type             TransactionType   `json:"type"`
	Amount           decimal.Decimal   `json:"amount"`
	Balance          decimal.Decimal   `json:"balance,omitempty"`
	Currency         string            `json:"currency"`
	IBAN             string            `json:"iban,omitempty"`
	Category         Category          `json:"category,omitempty"`
	DisplayName      string            `json:"displayName,omitempty"`
	IsCompanyExpense bool              `json:"isCompanyExpense,omitempty"`
	InvoiceRef       string            `json:"invoiceRef,omitempty"`
	Purpose          string            `json:"purpose,omitempty"`
	ObjectID         *int64            `json:"objectId,omitempty"`
	ObjectName       string            `json:"objectName,omitempty"`
	Status           TransactionStatus `json:"status"`

	// DateString carries the wire representation of Date (ISO day format).
	DateString string `json:"date"`
}

// IsDebit returns true if the transaction is outgoing money
func (t *BankTransaction) IsDebit() bool {
	return t.Type == TypeDebit
}

// IsCredit returns true if the transaction is incoming money
func (t *BankTransaction) IsCredit() bool {
	return t.Type == TypeCredit
}

// RecomputeStatus derives Status from the object assignment. Status is never
// set independently.
func (t *BankTransaction) RecomputeStatus() {
	if t.ObjectID != nil {
		t.Status = StatusMatched
	} else {
		t.Status = StatusUnmatched
	}
}

// PartyLabel returns the human-friendly label for the transaction: the
// counterparty name when present, else the cleaned description, else the
// no-description fallback literal.
func (t *BankTransaction) PartyLabel() string {
	if name := strings.TrimSpace(t.CounterpartyName); name != "" {
		return name
	}
	if desc := CleanDescription(t.Description); desc != "" {
		return desc
	}
	return NoDescriptionLabel
}

// CleanDescription collapses runs of whitespace and truncates overly long
// statement narratives for display.
func CleanDescription(desc string) string {
	desc = strings.Join(strings.Fields(desc), " ")
	const maxLen = 80
	if len([]rune(desc)) > maxLen {
		return string([]rune(desc)[:maxLen])
	}
	return desc
}

// SyncDateString fills the wire date field from the parsed date.
func (t *BankTransaction) SyncDateString() {
	if !t.Date.IsZero() {
		t.DateString = t.Date.Format("2006-01-02")
	}
}

// SyncDate fills the parsed date from the wire date field, tolerating an
// unset or malformed value by leaving Date zero.
func (t *BankTransaction) SyncDate() {
	if t.DateString == "" {
		return
	}
	if d, err := time.Parse("2006-01-02", t.DateString); err == nil {
		t.Date = d
	}
}

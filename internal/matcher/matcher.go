// Package matcher links debit bank transactions to candidate invoices by
// amount and date proximity.
package matcher

import (
	"github.com/Georgi-Piskov/barin-alp-system/internal/dateutils"
	"github.com/Georgi-Piskov/barin-alp-system/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultAmountEpsilon absorbs rounding differences between a bank posting
// and the invoice total.
var DefaultAmountEpsilon = decimal.NewFromFloat(0.02)

// DefaultWindowDays is how far apart a posting and an invoice may be, in
// whole days, and still be considered the same payment.
const DefaultWindowDays = 3

// MatchResult pairs a debit transaction with at most one invoice.
type MatchResult struct {
	Transaction models.BankTransaction
	Invoice     *models.Invoice
}

// Matched reports whether an invoice was found for the transaction.
func (r MatchResult) Matched() bool {
	return r.Invoice != nil
}

// Matcher holds the tolerance parameters.
type Matcher struct {
	amountEpsilon decimal.Decimal
	windowDays    int
}

// New creates a Matcher with the given tolerances. A zero epsilon or
// negative window selects the defaults.
func New(amountEpsilon decimal.Decimal, windowDays int) *Matcher {
	if amountEpsilon.LessThanOrEqual(decimal.Zero) {
		amountEpsilon = DefaultAmountEpsilon
	}
	if windowDays < 0 {
		windowDays = DefaultWindowDays
	}
	return &Matcher{amountEpsilon: amountEpsilon, windowDays: windowDays}
}

// FindMatch returns the first invoice, in the given sequence order, whose
// total is within the amount epsilon of the transaction amount and whose
// date is within the day window. Credit transactions never match. The
// first-in-sequence policy deliberately does no ranking among multiple
// candidates.
func (m *Matcher) FindMatch(tx models.BankTransaction, invoices []models.Invoice) (models.Invoice, bool) {
	if !tx.IsDebit() {
		return models.Invoice{}, false
	}

	for _, invoice := range invoices {
		if m.matches(tx, invoice) {
			return invoice, true
		}
	}
	return models.Invoice{}, false
}

// MatchAll evaluates every transaction against the invoice list, preserving
// transaction order. Unmatched transactions carry a nil Invoice.
func (m *Matcher) MatchAll(txs []models.BankTransaction, invoices []models.Invoice) []MatchResult {
	results := make([]MatchResult, len(txs))
	for i, tx := range txs {
		results[i] = MatchResult{Transaction: tx}
		if invoice, ok := m.FindMatch(tx, invoices); ok {
			inv := invoice
			results[i].Invoice = &inv
		}
	}
	return results
}

// UnmatchedDebits counts debit transactions with no invoice match, the
// figure the expense report surfaces as payments without paperwork.
func (m *Matcher) UnmatchedDebits(txs []models.BankTransaction, invoices []models.Invoice) int {
	count := 0
	for _, tx := range txs {
		if !tx.IsDebit() {
			continue
		}
		if _, ok := m.FindMatch(tx, invoices); !ok {
			count++
		}
	}
	return count
}

func (m *Matcher) matches(tx models.BankTransaction, invoice models.Invoice) bool {
	diff := tx.Amount.Sub(invoice.Total).Abs()
	if !diff.LessThan(m.amountEpsilon) {
		return false
	}

	days := dateutils.DaysBetween(tx.Date, invoice.Date)
	if days < 0 {
		days = -days
	}
	return days <= m.windowDays
}

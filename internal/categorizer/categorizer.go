// Package categorizer assigns each normalized bank transaction a semantic
// category using an ordered, first-match-wins list of keyword rules, and
// derives the display fields the reporting layer needs.
package categorizer

import (
	"strings"

	"github.com/Georgi-Piskov/barin-alp-system/internal/logging"
	"github.com/Georgi-Piskov/barin-alp-system/internal/models"
)

// Rule maps a keyword set to a category. Rules are evaluated in slice order
// and the first matching rule wins.
type Rule struct {
	Category models.Category `yaml:"category"`
	Keywords []string        `yaml:"keywords"`
}

// Categorizer evaluates the rule list against normalized transactions.
// Categorization is pure: it reads only the immutable source fields
// (description, counterparty, IBAN), never a previously assigned category,
// so re-categorizing an already categorized transaction is a no-op.
type Categorizer struct {
	rules  []Rule
	logger logging.Logger
}

// New creates a Categorizer with the given ordered rules. Passing no rules
// selects the built-in Bulgarian bank vocabulary from DefaultRules.
func New(rules []Rule, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Categorizer{rules: rules, logger: logger}
}

// DefaultRules returns the built-in rule set covering the bank's statement
// vocabulary, in evaluation order. The transfer rule additionally fires for
// any narrative carrying a counterparty name or an extractable invoice
// reference, so its keywords only catch the explicit wording.
func DefaultRules() []Rule {
	return []Rule{
		{
			Category: models.CategoryCashWithdrawal,
			Keywords: []string{"ТЕГЛЕНЕ", "АТМ", "ATM", "CASH", "КЕШ", "ТЕГЛ.КАСА"},
		},
		{
			Category: models.CategoryBankFees,
			Keywords: []string{"ТАКСА", "КОМИСИОН", "АБОНАМЕНТ", "FEE", "УСВОЯВАНЕ"},
		},
		{
			Category: models.CategoryLoanPayment,
			Keywords: []string{"ПОГАСЯВАНЕ", "ВНОСКА ПО КРЕДИТ", "ПОГАС.КРЕДИТ", "LOAN"},
		},
		{
			Category: models.CategoryTransfer,
			Keywords: []string{"ПРЕВОД", "TRANSFER", "ВИРМЕНТ"},
		},
	}
}

// Categorize returns a copy of tx annotated with category, display name,
// company-expense flag and, for transfers, the extracted invoice reference
// and remaining payment purpose.
func (c *Categorizer) Categorize(tx models.BankTransaction) models.BankTransaction {
	tx.Category = c.resolveCategory(tx)
	tx.DisplayName = tx.PartyLabel()
	tx.IsCompanyExpense = tx.Category == models.CategoryBankFees ||
		tx.Category == models.CategoryLoanPayment

	tx.InvoiceRef = ""
	tx.Purpose = tx.Description
	if tx.Category == models.CategoryTransfer {
		if ref, purpose, ok := ExtractInvoiceRef(tx.Description); ok {
			tx.InvoiceRef = ref
			tx.Purpose = purpose
		}
	}

	c.logger.Debug("Categorized transaction",
		logging.Field{Key: logging.FieldCategory, Value: string(tx.Category)},
		logging.Field{Key: logging.FieldReference, Value: tx.Reference})
	return tx
}

// CategorizeAll annotates every transaction, preserving order.
func (c *Categorizer) CategorizeAll(txs []models.BankTransaction) []models.BankTransaction {
	out := make([]models.BankTransaction, len(txs))
	for i, tx := range txs {
		out[i] = c.Categorize(tx)
	}
	return out
}

// resolveCategory walks the rules in order and returns the first match.
// Rows no keyword rule claims still classify as transfers when they are
// structurally transfer-shaped, whatever the loaded rule set looks like;
// everything else falls through to CategoryOther.
func (c *Categorizer) resolveCategory(tx models.BankTransaction) models.Category {
	haystack := strings.ToUpper(tx.Description + " " + tx.CounterpartyName)

	for _, rule := range c.rules {
		if matchKeywords(haystack, rule.Keywords) {
			return rule.Category
		}
	}
	if isTransfer(tx) {
		return models.CategoryTransfer
	}
	return models.CategoryOther
}

// isTransfer applies the structural transfer test: the row names a
// counterparty (by name or IBAN) or its narrative carries an invoice
// reference.
func isTransfer(tx models.BankTransaction) bool {
	if strings.TrimSpace(tx.CounterpartyName) != "" || strings.TrimSpace(tx.IBAN) != "" {
		return true
	}
	_, _, ok := ExtractInvoiceRef(tx.Description)
	return ok
}

// matchKeywords reports whether any keyword occurs in the uppercased haystack.
func matchKeywords(haystack string, keywords []string) bool {
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToUpper(keyword)) {
			return true
		}
	}
	return false
}

package categorizer

import (
	"testing"

	"github.com/Georgi-Piskov/barin-alp-system/internal/logging"
	"github.com/Georgi-Piskov/barin-alp-system/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCategorizer() *Categorizer {
	return New(nil, &logging.MockLogger{})
}

func debitTx(description string) models.BankTransaction {
	return models.BankTransaction{
		Description: description,
		Type:        models.TypeDebit,
		Amount:      decimal.RequireFromString("100"),
	}
}

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    models.Category
	}{
		{"ATM withdrawal cyrillic", "ТЕГЛЕНЕ НА КАСА", models.CategoryCashWithdrawal},
		{"ATM withdrawal latin", "ATM CASH WITHDRAWAL SOFIA", models.CategoryCashWithdrawal},
		{"bank fee", "ТАКСА ЗА ПРЕВОД", models.CategoryBankFees},
		{"commission", "КОМИСИОНА ОБСЛУЖВАНЕ", models.CategoryBankFees},
		{"loan payment", "ПОГАСЯВАНЕ ПО КРЕДИТ 1234", models.CategoryLoanPayment},
		{"loan installment", "ВНОСКА ПО КРЕДИТ", models.CategoryLoanPayment},
		{"transfer", "ПРЕВОД КЪМ ДОСТАВЧИК", models.CategoryTransfer},
		{"latin transfer", "TRANSFER TO SUPPLIER", models.CategoryTransfer},
		{"lowercase keyword", "превод към доставчик", models.CategoryTransfer},
		{"unclassified", "НЕЩО ДРУГО", models.CategoryOther},
		{"empty description", "", models.CategoryOther},
	}

	c := newTestCategorizer()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Categorize(debitTx(tc.description))
			assert.Equal(t, tc.expected, got.Category)
		})
	}
}

func TestRuleOrderFirstMatchWins(t *testing.T) {
	// A fee for a loan installment hits the fee rule because it comes
	// earlier in the rule order.
	c := newTestCategorizer()
	got := c.Categorize(debitTx("ТАКСА УСВОЯВАНЕ НА КРЕДИТ"))
	assert.Equal(t, models.CategoryBankFees, got.Category)
}

func TestCounterpartyWithIBANIsTransfer(t *testing.T) {
	c := newTestCategorizer()
	tx := debitTx("плащане по договор")
	tx.CounterpartyName = "Строител ЕООД"
	tx.IBAN = "BG80BNBG96611020345678"

	got := c.Categorize(tx)
	assert.Equal(t, models.CategoryTransfer, got.Category)
}

func TestCategorizeSetsDerivedFields(t *testing.T) {
	c := newTestCategorizer()

	fee := c.Categorize(debitTx("ТАКСА ЗА ПРЕВОД"))
	assert.True(t, fee.IsCompanyExpense)
	assert.Equal(t, "ТАКСА ЗА ПРЕВОД", fee.DisplayName)

	loan := c.Categorize(debitTx("ВНОСКА ПО КРЕДИТ"))
	assert.True(t, loan.IsCompanyExpense)

	transfer := c.Categorize(debitTx("ПРЕВОД КЪМ ДОСТАВЧИК"))
	assert.False(t, transfer.IsCompanyExpense)
}

func TestDisplayNameFallsBackWhenEmpty(t *testing.T) {
	c := newTestCategorizer()
	tx := debitTx("")
	got := c.Categorize(tx)
	assert.Equal(t, models.NoDescriptionLabel, got.DisplayName)
}

func TestDisplayNamePrefersCounterparty(t *testing.T) {
	c := newTestCategorizer()
	tx := debitTx("ПРЕВОД")
	tx.CounterpartyName = "Строител ЕООД"
	got := c.Categorize(tx)
	assert.Equal(t, "Строител ЕООД", got.DisplayName)
}

func TestTransferExtractsInvoiceRef(t *testing.T) {
	c := newTestCategorizer()
	// Mixed Latin/Cyrillic narratives are common in real statements.
	tx := debitTx("Превод по Faktura 4521 doplащане")

	got := c.Categorize(tx)
	require.Equal(t, models.CategoryTransfer, got.Category)
	assert.Equal(t, "4521", got.InvoiceRef)
	assert.Equal(t, "Превод по doplащане", got.Purpose)
}

func TestNonTransferKeepsDescriptionAsPurpose(t *testing.T) {
	c := newTestCategorizer()
	got := c.Categorize(debitTx("ТАКСА фактура 4521"))
	assert.Equal(t, models.CategoryBankFees, got.Category)
	assert.Empty(t, got.InvoiceRef)
	assert.Equal(t, "ТАКСА фактура 4521", got.Purpose)
}

func TestCategorizeIsIdempotent(t *testing.T) {
	c := newTestCategorizer()
	tx := debitTx("Превод по фактура № 1077")
	tx.CounterpartyName = "Строител ЕООД"

	once := c.Categorize(tx)
	twice := c.Categorize(once)
	assert.Equal(t, once, twice)
}

func TestCategorizeAllPreservesOrder(t *testing.T) {
	c := newTestCategorizer()
	txs := []models.BankTransaction{
		debitTx("ТАКСА"),
		debitTx("ТЕГЛЕНЕ АТМ"),
		debitTx("НЕОПРЕДЕЛЕНО"),
	}

	got := c.CategorizeAll(txs)
	require.Len(t, got, 3)
	assert.Equal(t, models.CategoryBankFees, got[0].Category)
	assert.Equal(t, models.CategoryCashWithdrawal, got[1].Category)
	assert.Equal(t, models.CategoryOther, got[2].Category)
}

func TestStructuralTransferSurvivesCustomRules(t *testing.T) {
	// A rule set with no transfer rule must not disable the structural
	// counterparty/IBAN test.
	rules := []Rule{
		{Category: models.CategoryBankFees, Keywords: []string{"ТАКСА"}},
	}
	c := New(rules, &logging.MockLogger{})

	tx := debitTx("плащане по договор")
	tx.CounterpartyName = "Строител ЕООД"
	tx.IBAN = "BG80BNBG96611020345678"
	assert.Equal(t, models.CategoryTransfer, c.Categorize(tx).Category)

	// Keyword rules still run first.
	fee := debitTx("ТАКСА ПРЕВОД")
	fee.CounterpartyName = "Банка АД"
	assert.Equal(t, models.CategoryBankFees, c.Categorize(fee).Category)
}

func TestCustomRules(t *testing.T) {
	rules := []Rule{
		{Category: models.CategoryBankFees, Keywords: []string{"CUSTOM FEE"}},
	}
	c := New(rules, &logging.MockLogger{})

	assert.Equal(t, models.CategoryBankFees, c.Categorize(debitTx("custom fee april")).Category)
	// The built-in keywords are replaced, not merged.
	assert.Equal(t, models.CategoryOther, c.Categorize(debitTx("ТАКСА")).Category)
}

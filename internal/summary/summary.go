// Package summary computes aggregate statistics over a set of bank
// transactions.
package summary

import (
	"github.com/Georgi-Piskov/barin-alp-system/internal/models"
)

// Summarize folds the transactions into a Stats value. Addition is
// commutative, so the result does not depend on input order. An empty or
// nil slice yields the zero stats.
func Summarize(txs []models.BankTransaction) models.Stats {
	stats := models.ZeroStats()
	stats.Count = len(txs)

	for _, tx := range txs {
		switch tx.Type {
		case models.TypeDebit:
			stats.TotalDebit = stats.TotalDebit.Add(tx.Amount)
		case models.TypeCredit:
			stats.TotalCredit = stats.TotalCredit.Add(tx.Amount)
		}

		switch tx.Category {
		case models.CategoryBankFees:
			stats.BankFeesTotal = stats.BankFeesTotal.Add(tx.Amount)
		case models.CategoryLoanPayment:
			stats.LoanPaymentsTotal = stats.LoanPaymentsTotal.Add(tx.Amount)
		case models.CategoryCashWithdrawal:
			stats.CashWithdrawalsTotal = stats.CashWithdrawalsTotal.Add(tx.Amount)
		}
	}

	stats.NetChange = stats.TotalCredit.Sub(stats.TotalDebit)
	return stats
}

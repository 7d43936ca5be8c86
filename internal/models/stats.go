package models

import "github.com/shopspring/decimal"

// Stats holds the aggregate figures reported after a statement import.
// NetChange is TotalCredit minus TotalDebit.
type Stats struct {
	Count                int             `json:"count"`
	TotalDebit           decimal.Decimal `json:"totalDebit"`
	TotalCredit          decimal.Decimal `json:"totalCredit"`
	NetChange            decimal.Decimal `json:"netChange"`
	BankFeesTotal        decimal.Decimal `json:"bankFeesTotal"`
	LoanPaymentsTotal    decimal.Decimal `json:"loanPaymentsTotal"`
	CashWithdrawalsTotal decimal.Decimal `json:"cashWithdrawalsTotal"`
}

// ZeroStats returns a Stats value with every total explicitly zero.
func ZeroStats() Stats {
	return Stats{
		TotalDebit:           decimal.Zero,
		TotalCredit:          decimal.Zero,
		NetChange:            decimal.Zero,
		BankFeesTotal:        decimal.Zero,
		LoanPaymentsTotal:    decimal.Zero,
		CashWithdrawalsTotal: decimal.Zero,
	}
}

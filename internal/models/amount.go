package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a statement amount string into a decimal value.
// Statements from the bank use a comma decimal separator and may carry
// space, non-breaking-space or apostrophe thousands separators
// ("1 234,56", "1'234.56"). A mixed form with both '.' and ',' treats the
// rightmost of the two as the decimal separator.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	amount := strings.TrimSpace(amountStr)
	if amount == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	// Strip grouping characters that are never decimal separators.
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, "'", "")

	dotIdx := strings.LastIndex(amount, ".")
	commaIdx := strings.LastIndex(amount, ",")
	switch {
	case dotIdx >= 0 && commaIdx >= 0:
		if commaIdx > dotIdx {
			// "1.234,56" - dot groups thousands, comma is decimal
			amount = strings.ReplaceAll(amount, ".", "")
			amount = strings.Replace(amount, ",", ".", 1)
		} else {
			// "1,234.56" - comma groups thousands
			amount = strings.ReplaceAll(amount, ",", "")
		}
	case commaIdx >= 0:
		if strings.Count(amount, ",") > 1 {
			return decimal.Zero, fmt.Errorf("ambiguous amount: %s", amountStr)
		}
		amount = strings.Replace(amount, ",", ".", 1)
	}

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount '%s': %w", amountStr, err)
	}
	return dec, nil
}

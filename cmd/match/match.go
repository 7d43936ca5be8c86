// Package match handles the invoice matching command.
package match

import (
	"fmt"

	cmdcommon "github.com/Georgi-Piskov/barin-alp-system/cmd/common"
	"github.com/Georgi-Piskov/barin-alp-system/cmd/root"
	"github.com/Georgi-Piskov/barin-alp-system/internal/dateutils"
	"github.com/Georgi-Piskov/barin-alp-system/internal/matcher"
	"github.com/Georgi-Piskov/barin-alp-system/internal/models"

	"github.com/spf13/cobra"
)

var unmatchedOnly bool

// Cmd represents the match command.
var Cmd = &cobra.Command{
	Use:   "match",
	Short: "Match stored debit transactions against supplier invoices",
	Long: `Fetch stored transactions and invoices and pair each debit payment
with the first invoice whose total and date are close enough.`,
	RunE: matchFunc,
}

func init() {
	Cmd.Flags().BoolVar(&unmatchedOnly, "unmatched", false, "Only show debits without an invoice match")
}

func matchFunc(cmd *cobra.Command, args []string) error {
	imp, err := cmdcommon.NewImporter(root.Cfg, root.Log)
	if err != nil {
		return err
	}

	results, err := imp.Match(cmd.Context())
	if err != nil {
		return err
	}

	matched := 0
	for _, r := range results {
		if !r.Transaction.IsDebit() {
			continue
		}
		if r.Matched() {
			matched++
			if unmatchedOnly {
				continue
			}
			fmt.Printf("%s  %s %s  -> invoice %s (%s, %s)\n",
				dateutils.ToISODate(r.Transaction.Date),
				r.Transaction.Amount.StringFixed(2),
				r.Transaction.Currency,
				r.Invoice.InvoiceNumber,
				r.Invoice.Supplier,
				r.Invoice.Total.StringFixed(2),
			)
			continue
		}
		fmt.Printf("%s  %s %s  -> no invoice (%s)\n",
			dateutils.ToISODate(r.Transaction.Date),
			r.Transaction.Amount.StringFixed(2),
			r.Transaction.Currency,
			displayLabel(r.Transaction),
		)
	}

	fmt.Printf("\n%d of %d debit transactions matched an invoice\n", matched, countDebits(results))
	return nil
}

func displayLabel(tx models.BankTransaction) string {
	if tx.DisplayName != "" {
		return tx.DisplayName
	}
	return tx.PartyLabel()
}

func countDebits(results []matcher.MatchResult) int {
	count := 0
	for _, r := range results {
		if r.Transaction.IsDebit() {
			count++
		}
	}
	return count
}

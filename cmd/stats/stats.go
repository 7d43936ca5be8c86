// Package stats handles the aggregate statistics command.
package stats

import (
	"fmt"

	cmdcommon "github.com/Georgi-Piskov/barin-alp-system/cmd/common"
	"github.com/Georgi-Piskov/barin-alp-system/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the stats command.
var Cmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics over stored transactions",
	RunE:  statsFunc,
}

func statsFunc(cmd *cobra.Command, args []string) error {
	imp, err := cmdcommon.NewImporter(root.Cfg, root.Log)
	if err != nil {
		return err
	}

	s, err := imp.Stats(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Transactions:     %d\n", s.Count)
	fmt.Printf("Total debit:      %s\n", s.TotalDebit.StringFixed(2))
	fmt.Printf("Total credit:     %s\n", s.TotalCredit.StringFixed(2))
	fmt.Printf("Net change:       %s\n", s.NetChange.StringFixed(2))
	fmt.Printf("Bank fees:        %s\n", s.BankFeesTotal.StringFixed(2))
	fmt.Printf("Loan payments:    %s\n", s.LoanPaymentsTotal.StringFixed(2))
	fmt.Printf("Cash withdrawals: %s\n", s.CashWithdrawalsTotal.StringFixed(2))
	return nil
}

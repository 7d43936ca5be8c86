// Package assign handles assigning transactions to construction objects.
package assign

import (
	"fmt"

	cmdcommon "github.com/Georgi-Piskov/barin-alp-system/cmd/common"
	"github.com/Georgi-Piskov/barin-alp-system/cmd/root"

	"github.com/spf13/cobra"
)

var (
	transactionID int64
	objectID      int64
	objectName    string
)

// Cmd represents the assign command.
var Cmd = &cobra.Command{
	Use:   "assign",
	Short: "Assign a stored transaction to a construction object",
	Long: `Attach a stored transaction to a construction object, marking it
matched. Use --object-id 0 to clear an assignment.`,
	RunE: assignFunc,
}

func init() {
	Cmd.Flags().Int64Var(&transactionID, "id", 0, "Transaction ID")
	Cmd.Flags().Int64Var(&objectID, "object-id", 0, "Construction object ID (0 clears the assignment)")
	Cmd.Flags().StringVar(&objectName, "object-name", "", "Construction object name")
	if err := Cmd.MarkFlagRequired("id"); err != nil {
		panic(err)
	}
}

func assignFunc(cmd *cobra.Command, args []string) error {
	imp, err := cmdcommon.NewImporter(root.Cfg, root.Log)
	if err != nil {
		return err
	}

	tx, err := imp.Assign(cmd.Context(), transactionID, objectID, objectName)
	if err != nil {
		return err
	}

	if tx.ObjectID == nil {
		fmt.Printf("Transaction %d unassigned, status %s\n", tx.ID, tx.Status)
		return nil
	}
	fmt.Printf("Transaction %d assigned to object %d (%s), status %s\n",
		tx.ID, *tx.ObjectID, tx.ObjectName, tx.Status)
	return nil
}

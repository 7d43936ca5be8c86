// Package importcmd handles the statement import command.
package importcmd

import (
	"fmt"
	"os"

	cmdcommon "github.com/Georgi-Piskov/barin-alp-system/cmd/common"
	"github.com/Georgi-Piskov/barin-alp-system/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the import command.
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import a statement file into the remote store",
	Long: `Parse a bank statement file, categorize the transactions, skip the
ones already stored and save the rest through the webhook API. Importing
the same statement twice inserts nothing the second time.`,
	RunE: importFunc,
}

func importFunc(cmd *cobra.Command, args []string) error {
	input := root.SharedFlags.Input
	if input == "" {
		return fmt.Errorf("no input file given, use --input")
	}

	imp, err := cmdcommon.NewImporter(root.Cfg, root.Log)
	if err != nil {
		return err
	}

	file, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening %s: %w", input, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			root.Log.WithError(err).Warn("failed to close input file")
		}
	}()

	result, err := imp.Import(cmd.Context(), file, root.Format())
	if err != nil {
		return err
	}

	fmt.Printf("Parsed:     %d\n", result.Parsed)
	fmt.Printf("Inserted:   %d\n", result.Inserted)
	fmt.Printf("Duplicates: %d\n", result.DuplicateCount)
	fmt.Printf("Debits:     %s\n", result.Stats.TotalDebit.StringFixed(2))
	fmt.Printf("Credits:    %s\n", result.Stats.TotalCredit.StringFixed(2))
	fmt.Printf("Net change: %s\n", result.Stats.NetChange.StringFixed(2))
	return nil
}

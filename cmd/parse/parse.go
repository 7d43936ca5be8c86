// Package parse handles the offline statement parsing command.
package parse

import (
	"fmt"
	"os"

	cmdcommon "github.com/Georgi-Piskov/barin-alp-system/cmd/common"
	"github.com/Georgi-Piskov/barin-alp-system/cmd/root"
	"github.com/Georgi-Piskov/barin-alp-system/internal/common"
	"github.com/Georgi-Piskov/barin-alp-system/internal/logging"
	"github.com/Georgi-Piskov/barin-alp-system/internal/pipeline"

	"github.com/spf13/cobra"
)

// Cmd represents the parse command.
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a statement file and print categorized transactions as CSV",
	Long: `Parse a bank statement file, categorize every transaction and write
the result as CSV. No data is sent to the remote store.`,
	RunE: parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) error {
	input := root.SharedFlags.Input
	if input == "" {
		return fmt.Errorf("no input file given, use --input")
	}

	cat, err := cmdcommon.NewCategorizer(root.Cfg, root.Log)
	if err != nil {
		return err
	}
	imp := pipeline.New(nil, cat, nil, root.Log)
	imp.SetEncoding(root.Cfg.Statement.Encoding)

	file, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening %s: %w", input, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			root.Log.WithError(err).Warn("failed to close input file")
		}
	}()

	txs, err := imp.Parse(file, root.Format())
	if err != nil {
		return err
	}
	root.Log.Info("statement parsed",
		logging.Field{Key: "transactions", Value: len(txs)})

	if root.SharedFlags.Output != "" {
		return common.WriteTransactionsToFile(txs, root.SharedFlags.Output)
	}
	return common.WriteTransactions(txs, os.Stdout)
}

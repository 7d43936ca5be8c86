// barin-alp imports bank statement exports, categorizes the transactions
// and reconciles them against supplier invoices.
package main

import (
	"fmt"
	"os"

	"github.com/Georgi-Piskov/barin-alp-system/cmd/assign"
	"github.com/Georgi-Piskov/barin-alp-system/cmd/importcmd"
	"github.com/Georgi-Piskov/barin-alp-system/cmd/match"
	"github.com/Georgi-Piskov/barin-alp-system/cmd/parse"
	"github.com/Georgi-Piskov/barin-alp-system/cmd/root"
	"github.com/Georgi-Piskov/barin-alp-system/cmd/stats"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(importcmd.Cmd)
	root.Cmd.AddCommand(match.Cmd)
	root.Cmd.AddCommand(stats.Cmd)
	root.Cmd.AddCommand(assign.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

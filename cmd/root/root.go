// Package root contains the root command for the application.
package root

import (
	"github.com/Georgi-Piskov/barin-alp-system/internal/common"
	"github.com/Georgi-Piskov/barin-alp-system/internal/config"
	"github.com/Georgi-Piskov/barin-alp-system/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by multiple commands.
type CommonFlags struct {
	Input  string
	Output string
	Format string
}

var (
	// Log is the shared logger instance for commands.
	Log logging.Logger = logging.GetLogger()

	// Cfg holds the loaded configuration after PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "barin-alp",
		Short: "Import, categorize and reconcile bank statements.",
		Long: `barin-alp processes bank statement exports for a construction business:
it parses statement files, categorizes transactions by keyword rules,
skips duplicates on re-import and matches debit payments to supplier
invoices.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg

			Log = logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
			logging.SetDefaultLogger(Log)
			common.SetLogger(Log)

			if cfg.CSV.Delimiter != "" {
				common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}
			return nil
		},
	}

	// SharedFlags holds the common flag values.
	SharedFlags = CommonFlags{}
)

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input statement file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Statement format (asset or camt)")
}

// Format returns the statement format to use: the flag if given, otherwise
// the configured default.
func Format() string {
	if SharedFlags.Format != "" {
		return SharedFlags.Format
	}
	if Cfg != nil {
		return Cfg.Statement.Format
	}
	return "asset"
}

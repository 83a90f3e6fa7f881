// Package report implements the report export command
package report

import (
	"github.com/spf13/cobra"

	"imujkanovic/expense-tracker/cmd/root"
	"imujkanovic/expense-tracker/internal/report"
)

var (
	output string
	format string
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Export a formatted report of all expenses",
	Run:   reportFunc,
}

func reportFunc(cmd *cobra.Command, args []string) {
	file := output
	if file == "" {
		file = root.Cfg.Report.File
	}
	fmtName := format
	if fmtName == "" {
		fmtName = root.Cfg.Report.Format
	}

	generator := report.NewGenerator()
	if err := generator.Write(root.Ledger.Records(), fmtName, file); err != nil {
		root.Log.Fatalf("Error exporting report: %v", err)
	}
	root.Log.Infof("Report exported to %s", file)
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Report file (defaults to configuration)")
	Cmd.Flags().StringVar(&format, "format", "", "Report format: text or json (defaults to configuration)")
}

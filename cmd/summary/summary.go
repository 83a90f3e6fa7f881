// Package summary implements the monthly and weekly summary commands
package summary

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"imujkanovic/expense-tracker/cmd/root"
	"imujkanovic/expense-tracker/internal/dateutils"
	"imujkanovic/expense-tracker/internal/models"
)

var (
	year  int
	month int
	week  int
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize expenses by month or ISO week",
}

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Summarize expenses for a calendar month",
	Run:   monthFunc,
}

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Summarize expenses for an ISO week",
	Long: `Summarize expenses for an ISO week. ISO weeks start on Monday and
week 1 is the week containing the year's first Thursday.`,
	Run: weekFunc,
}

func monthFunc(cmd *cobra.Command, args []string) {
	if month < 1 || month > 12 {
		root.Log.Fatalf("Invalid month: %d", month)
	}
	records, total := root.Ledger.MonthlySummary(year, time.Month(month))
	fmt.Printf("Monthly Summary for %d-%02d\n", year, month)
	printSummary(records, total)
}

func weekFunc(cmd *cobra.Command, args []string) {
	if week < 1 || week > 53 {
		root.Log.Fatalf("Invalid week number: %d", week)
	}
	records, total := root.Ledger.WeeklySummary(year, week)
	fmt.Printf("Weekly Summary for %d Week %d\n", year, week)
	printSummary(records, total)
}

func printSummary(records []models.ExpenseRecord, total decimal.Decimal) {
	fmt.Println("----------------------------------------")
	for _, rec := range records {
		fmt.Printf("%s | %-15s | $%8s\n",
			dateutils.ToISODate(rec.Date), rec.Category, rec.Amount.StringFixed(2))
	}
	fmt.Printf("Total: $%s\n", total.StringFixed(2))
}

func init() {
	now := time.Now()
	_, isoWeek := now.ISOWeek()

	monthCmd.Flags().IntVarP(&year, "year", "y", now.Year(), "Year (YYYY)")
	monthCmd.Flags().IntVarP(&month, "month", "m", int(now.Month()), "Month (1-12)")

	weekCmd.Flags().IntVarP(&year, "year", "y", now.Year(), "ISO year (YYYY)")
	weekCmd.Flags().IntVarP(&week, "week", "w", isoWeek, "ISO week number (1-53)")

	Cmd.AddCommand(monthCmd)
	Cmd.AddCommand(weekCmd)
}

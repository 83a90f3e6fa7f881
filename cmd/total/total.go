// Package total implements the commands that display spending totals
package total

import (
	"fmt"

	"github.com/spf13/cobra"

	"imujkanovic/expense-tracker/cmd/root"
)

// Cmd represents the total command
var Cmd = &cobra.Command{
	Use:   "total",
	Short: "Show per-category and overall spending totals",
	Run:   totalFunc,
}

func totalFunc(cmd *cobra.Command, args []string) {
	totals := root.Ledger.Totals()
	if len(totals) == 0 {
		fmt.Println("No expenses recorded yet.")
		return
	}

	fmt.Printf("%-20s%15s\n", "Category", "Total Spent")
	fmt.Println("-----------------------------------")
	for _, ct := range totals {
		fmt.Printf("%-20s%15s\n", ct.Category, ct.Total.StringFixed(2))
	}
	fmt.Printf("\nTotal Expenses: $%s\n", root.Ledger.GrandTotal().StringFixed(2))
}

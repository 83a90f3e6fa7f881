// Package add implements the command that records a new expense
package add

import (
	"fmt"

	"github.com/spf13/cobra"

	"imujkanovic/expense-tracker/cmd/root"
)

var (
	category    string
	amount      string
	description string
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new expense",
	Long: `Record a new expense against a category, stamped with today's date.
The category may be given by name (any case) or as its 1-based number
from the 'categories' listing.`,
	Run: addFunc,
}

func addFunc(cmd *cobra.Command, args []string) {
	canonical, ok := root.Ledger.ResolveCategory(category)
	if !ok {
		canonical = category // let the ledger report the invalid category
	}

	rec, err := root.Ledger.Add(canonical, amount, description)
	if err != nil {
		root.Log.Fatalf("Error adding expense: %v", err)
	}
	root.SaveLedger()

	fmt.Printf("Expense added: %s to %s.\n", rec.Amount.StringFixed(2), rec.Category)
}

func init() {
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Expense category, by name or number (required)")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Expense amount (required)")
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Optional description")
	_ = Cmd.MarkFlagRequired("category")
	_ = Cmd.MarkFlagRequired("amount")
}

// Package top implements the command that finds the highest-spending categories
package top

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"imujkanovic/expense-tracker/cmd/root"
	"imujkanovic/expense-tracker/internal/ledger"
)

// Cmd represents the top command
var Cmd = &cobra.Command{
	Use:   "top",
	Short: "Find the highest-spending category",
	Long:  `Find the category (or categories, on a tie) with the maximum total spending.`,
	Run:   topFunc,
}

func topFunc(cmd *cobra.Command, args []string) {
	top, max, err := root.Ledger.TopCategories()
	if err != nil {
		if errors.Is(err, ledger.ErrNoExpenses) {
			fmt.Println("No expenses to analyze.")
			return
		}
		root.Log.Fatalf("Error finding top categories: %v", err)
	}

	fmt.Println("Highest Spending Category:")
	for _, cat := range top {
		fmt.Printf("%s: $%s\n", cat, max.StringFixed(2))
	}
}

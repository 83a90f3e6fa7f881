// Package budget implements the budget tracking commands
package budget

import (
	"fmt"

	"github.com/spf13/cobra"

	"imujkanovic/expense-tracker/cmd/root"
)

var (
	category string
	amount   string
)

// Cmd represents the budget command
var Cmd = &cobra.Command{
	Use:   "budget",
	Short: "Set and view per-category budgets",
}

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a budget for a category",
	Run:   setFunc,
}

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "View budgets and spending per category",
	Run:   viewFunc,
}

func setFunc(cmd *cobra.Command, args []string) {
	canonical, ok := root.Ledger.ResolveCategory(category)
	if !ok {
		canonical = category
	}

	if err := root.Ledger.SetBudget(canonical, amount); err != nil {
		root.Log.Fatalf("Error setting budget: %v", err)
	}
	root.SaveLedger()

	budget, _ := root.Ledger.Budget(canonical)
	fmt.Printf("Budget for %s set to $%s.\n", canonical, budget.StringFixed(2))
}

func viewFunc(cmd *cobra.Command, args []string) {
	fmt.Printf("%-20s%12s%12s%12s\n", "Category", "Budget", "Spent", "Remaining")
	fmt.Println("--------------------------------------------------------")
	for _, status := range root.Ledger.BudgetStatus() {
		budgetStr, remainingStr := "-", "-"
		if status.Budget != nil {
			budgetStr = "$" + status.Budget.StringFixed(2)
			remainingStr = "$" + status.Remaining.StringFixed(2)
		}
		fmt.Printf("%-20s%12s%12s%12s\n",
			status.Category, budgetStr, status.Spent.StringFixed(2), remainingStr)
	}
}

func init() {
	setCmd.Flags().StringVarP(&category, "category", "c", "", "Budget category, by name or number (required)")
	setCmd.Flags().StringVarP(&amount, "amount", "a", "", "Budget amount (required)")
	_ = setCmd.MarkFlagRequired("category")
	_ = setCmd.MarkFlagRequired("amount")

	Cmd.AddCommand(setCmd)
	Cmd.AddCommand(viewCmd)
}

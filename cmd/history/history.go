// Package history implements the command that lists recorded expenses
package history

import (
	"fmt"

	"github.com/spf13/cobra"

	"imujkanovic/expense-tracker/cmd/root"
	"imujkanovic/expense-tracker/internal/dateutils"
	"imujkanovic/expense-tracker/internal/ledger"
)

var (
	category   string
	startDate  string
	endDate    string
	sortByDate bool
)

// Cmd represents the history command
var Cmd = &cobra.Command{
	Use:   "history",
	Short: "View the expense history",
	Long: `View the chronological expense history, optionally filtered by category
and an inclusive date range (YYYY-MM-DD).`,
	Run: historyFunc,
}

func historyFunc(cmd *cobra.Command, args []string) {
	filter := ledger.HistoryFilter{SortByDate: sortByDate}

	if category != "" {
		canonical, ok := root.Ledger.ResolveCategory(category)
		if !ok {
			root.Log.Fatalf("Invalid category: %s", category)
		}
		filter.Category = canonical
	}
	if startDate != "" {
		from, err := dateutils.ParseDate(startDate)
		if err != nil {
			root.Log.Fatalf("Invalid start date: %v", err)
		}
		filter.From = from
	}
	if endDate != "" {
		to, err := dateutils.ParseDate(endDate)
		if err != nil {
			root.Log.Fatalf("Invalid end date: %v", err)
		}
		filter.To = to
	}

	records := root.Ledger.History(filter)
	if len(records) == 0 {
		fmt.Println("No expenses found for the given filter.")
		return
	}

	fmt.Printf("%-12s%-18s%10s  %s\n", "Date", "Category", "Amount", "Description")
	fmt.Println("----------------------------------------------------------------------")
	for _, rec := range records {
		fmt.Printf("%-12s%-18s%10s  %s\n",
			dateutils.ToISODate(rec.Date), rec.Category,
			rec.Amount.StringFixed(2), rec.Description)
	}
}

func init() {
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category")
	Cmd.Flags().StringVar(&startDate, "from", "", "Start date (inclusive)")
	Cmd.Flags().StringVar(&endDate, "to", "", "End date (inclusive)")
	Cmd.Flags().BoolVar(&sortByDate, "sort", false, "Sort the listing by date")
}

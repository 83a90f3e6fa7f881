// Package search implements the command that searches expense descriptions
package search

import (
	"fmt"

	"github.com/spf13/cobra"

	"imujkanovic/expense-tracker/cmd/root"
	"imujkanovic/expense-tracker/internal/dateutils"
)

// Cmd represents the search command
var Cmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search expenses by description keyword",
	Long:  `Search the expense history for records whose description contains the keyword (case-insensitive).`,
	Args:  cobra.ExactArgs(1),
	Run:   searchFunc,
}

func searchFunc(cmd *cobra.Command, args []string) {
	keyword := args[0]
	records := root.Ledger.Search(keyword)

	fmt.Printf("Search results for '%s':\n", keyword)
	if len(records) == 0 {
		fmt.Println("No matching expenses found.")
		return
	}
	for _, rec := range records {
		fmt.Printf("%s | %-15s | $%8s | %s\n",
			dateutils.ToISODate(rec.Date), rec.Category,
			rec.Amount.StringFixed(2), rec.Description)
	}
}

// Package categories implements the command that lists the known categories
package categories

import (
	"fmt"

	"github.com/spf13/cobra"

	"imujkanovic/expense-tracker/cmd/root"
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List the known expense categories",
	Run: func(cmd *cobra.Command, args []string) {
		for i, cat := range root.Ledger.Categories() {
			fmt.Printf("%2d. %s\n", i+1, cat)
		}
	},
}

// Package reset implements the command that removes all expenses
package reset

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"imujkanovic/expense-tracker/cmd/root"
)

var yes bool

// Cmd represents the reset command
var Cmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove all expenses and zero every category total",
	Long: `Remove all expenses and zero every category total. Budgets are kept
unless reset.clear_budgets is enabled in the configuration.`,
	Run: resetFunc,
}

func resetFunc(cmd *cobra.Command, args []string) {
	if !yes && !confirm() {
		fmt.Println("Reset cancelled.")
		return
	}

	root.Ledger.Reset(root.Cfg.Reset.ClearBudgets)
	root.SaveLedger()
	fmt.Println("All expenses have been removed and totals reset to zero.")
}

func confirm() bool {
	fmt.Print("Are you sure you want to remove ALL expenses? This cannot be undone. (y/n): ")
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

func init() {
	Cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
}

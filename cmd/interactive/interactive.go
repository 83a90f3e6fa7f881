// Package interactive implements the menu-driven terminal session
package interactive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"imujkanovic/expense-tracker/cmd/root"
	"imujkanovic/expense-tracker/internal/dateutils"
	"imujkanovic/expense-tracker/internal/ledger"
	"imujkanovic/expense-tracker/internal/models"
	"imujkanovic/expense-tracker/internal/report"
)

// Cmd represents the interactive command
var Cmd = &cobra.Command{
	Use:   "interactive",
	Short: "Run the interactive expense tracker session",
	Long:  `Run a menu-driven terminal session over the same ledger used by the other commands.`,
	Run:   interactiveFunc,
}

// session holds the prompt state for one interactive run.
type session struct {
	in  *bufio.Reader
	out io.Writer
}

func interactiveFunc(cmd *cobra.Command, args []string) {
	s := &session{in: bufio.NewReader(os.Stdin), out: os.Stdout}
	s.run()
}

func (s *session) run() {
	fmt.Fprintln(s.out, "Welcome to the Personal Expense Tracker!")
	for {
		s.printMenu()
		choice := s.prompt("Select an option: ")
		switch choice {
		case "1":
			s.addExpense()
		case "2":
			s.viewTotals()
		case "3":
			fmt.Fprintf(s.out, "\nTotal Expenses: $%s\n", root.Ledger.GrandTotal().StringFixed(2))
		case "4":
			s.topCategories()
		case "5":
			s.viewHistory()
		case "6":
			s.budgets()
		case "7":
			s.monthlySummary()
		case "8":
			s.weeklySummary()
		case "9":
			s.search()
		case "10":
			s.exportReport()
		case "11":
			s.reset()
		case "0":
			fmt.Fprintln(s.out, "Saving data and exiting...")
			root.SaveLedger()
			fmt.Fprintf(s.out, "Goodbye! Total Expenses: $%s\n", root.Ledger.GrandTotal().StringFixed(2))
			return
		default:
			fmt.Fprintln(s.out, "Invalid selection. Please try again.")
		}
	}
}

func (s *session) printMenu() {
	fmt.Fprintln(s.out, "\n========================================")
	fmt.Fprintln(s.out, "Personal Expense Tracker")
	fmt.Fprintln(s.out, "========================================")
	fmt.Fprintln(s.out, "1. Add Expense")
	fmt.Fprintln(s.out, "2. View Expenses by Category")
	fmt.Fprintln(s.out, "3. View Total Expenses")
	fmt.Fprintln(s.out, "4. Find Highest Spending Category")
	fmt.Fprintln(s.out, "5. View Expense History")
	fmt.Fprintln(s.out, "6. Set/View Budgets")
	fmt.Fprintln(s.out, "7. Monthly Summary")
	fmt.Fprintln(s.out, "8. Weekly Summary")
	fmt.Fprintln(s.out, "9. Search Expenses")
	fmt.Fprintln(s.out, "10. Export Report")
	fmt.Fprintln(s.out, "11. Remove All Expenses")
	fmt.Fprintln(s.out, "0. Exit")
	fmt.Fprintln(s.out, "========================================")
}

func (s *session) prompt(label string) string {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "0" // EOF exits cleanly
	}
	return strings.TrimSpace(line)
}

// promptCategory lists the categories and resolves the user's choice by
// name or 1-based number.
func (s *session) promptCategory() (string, bool) {
	fmt.Fprintln(s.out, "\nAvailable categories:")
	for i, cat := range root.Ledger.Categories() {
		fmt.Fprintf(s.out, "  %d. %s\n", i+1, cat)
	}
	input := s.prompt("Category (name or number): ")
	canonical, ok := root.Ledger.ResolveCategory(input)
	if !ok {
		fmt.Fprintln(s.out, "Invalid category. Please try again.")
		return "", false
	}
	return canonical, true
}

func (s *session) addExpense() {
	category, ok := s.promptCategory()
	if !ok {
		return
	}
	amount := s.prompt("Amount: ")
	description := s.prompt("Description (optional): ")

	rec, err := root.Ledger.Add(category, amount, description)
	if err != nil {
		fmt.Fprintf(s.out, "%v\n", err)
		return
	}
	root.SaveLedger()
	fmt.Fprintf(s.out, "Expense added: %s to %s.\n", rec.Amount.StringFixed(2), rec.Category)
}

func (s *session) viewTotals() {
	totals := root.Ledger.Totals()
	if len(totals) == 0 {
		fmt.Fprintln(s.out, "No expenses recorded yet.")
		return
	}
	fmt.Fprintf(s.out, "\n%-20s%15s\n", "Category", "Total Spent")
	fmt.Fprintln(s.out, "-----------------------------------")
	for _, ct := range totals {
		fmt.Fprintf(s.out, "%-20s%15s\n", ct.Category, ct.Total.StringFixed(2))
	}
}

func (s *session) topCategories() {
	top, max, err := root.Ledger.TopCategories()
	if err != nil {
		if errors.Is(err, ledger.ErrNoExpenses) {
			fmt.Fprintln(s.out, "No expenses to analyze.")
			return
		}
		fmt.Fprintf(s.out, "%v\n", err)
		return
	}
	fmt.Fprintln(s.out, "\nHighest Spending Category:")
	for _, cat := range top {
		fmt.Fprintf(s.out, "%s: $%s\n", cat, max.StringFixed(2))
	}
}

func (s *session) viewHistory() {
	filter := ledger.HistoryFilter{}

	fmt.Fprintln(s.out, "\nFilter by category? (leave blank for all)")
	if input := s.prompt("Category: "); input != "" {
		canonical, ok := root.Ledger.ResolveCategory(input)
		if !ok {
			fmt.Fprintln(s.out, "Invalid category. Please try again.")
			return
		}
		filter.Category = canonical
	}

	fmt.Fprintln(s.out, "Filter by date range? (YYYY-MM-DD)")
	if input := s.prompt("Start date (leave blank): "); input != "" {
		from, err := dateutils.ParseDate(input)
		if err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			return
		}
		filter.From = from
	}
	if input := s.prompt("End date (leave blank): "); input != "" {
		to, err := dateutils.ParseDate(input)
		if err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			return
		}
		filter.To = to
	}

	records := root.Ledger.History(filter)
	if len(records) == 0 {
		fmt.Fprintln(s.out, "No expenses found for the given filter.")
		return
	}
	fmt.Fprintf(s.out, "\n%-12s%-18s%10s  %s\n", "Date", "Category", "Amount", "Description")
	fmt.Fprintln(s.out, "----------------------------------------------------------------------")
	for _, rec := range records {
		s.printRecord(rec)
	}
}

func (s *session) printRecord(rec models.ExpenseRecord) {
	fmt.Fprintf(s.out, "%-12s%-18s%10s  %s\n",
		dateutils.ToISODate(rec.Date), rec.Category,
		rec.Amount.StringFixed(2), rec.Description)
}

func (s *session) budgets() {
	fmt.Fprintln(s.out, "\n1. Set Budget\n2. View Budgets")
	if s.prompt("Select: ") == "1" {
		category, ok := s.promptCategory()
		if !ok {
			return
		}
		amount := s.prompt("Budget amount: ")
		if err := root.Ledger.SetBudget(category, amount); err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			return
		}
		root.SaveLedger()
		budget, _ := root.Ledger.Budget(category)
		fmt.Fprintf(s.out, "Budget for %s set to $%s.\n", category, budget.StringFixed(2))
		return
	}

	fmt.Fprintf(s.out, "\n%-20s%12s%12s%12s\n", "Category", "Budget", "Spent", "Remaining")
	fmt.Fprintln(s.out, "--------------------------------------------------------")
	for _, status := range root.Ledger.BudgetStatus() {
		budgetStr, remainingStr := "-", "-"
		if status.Budget != nil {
			budgetStr = "$" + status.Budget.StringFixed(2)
			remainingStr = "$" + status.Remaining.StringFixed(2)
		}
		fmt.Fprintf(s.out, "%-20s%12s%12s%12s\n",
			status.Category, budgetStr, status.Spent.StringFixed(2), remainingStr)
	}
}

func (s *session) promptInt(label string) (int, bool) {
	n, err := strconv.Atoi(s.prompt(label))
	if err != nil {
		fmt.Fprintln(s.out, "Invalid number.")
		return 0, false
	}
	return n, true
}

func (s *session) monthlySummary() {
	year, ok := s.promptInt("Year (YYYY): ")
	if !ok {
		return
	}
	month, ok := s.promptInt("Month (1-12): ")
	if !ok || month < 1 || month > 12 {
		fmt.Fprintln(s.out, "Invalid year or month.")
		return
	}

	records, total := root.Ledger.MonthlySummary(year, time.Month(month))
	fmt.Fprintf(s.out, "\nMonthly Summary for %d-%02d\n", year, month)
	fmt.Fprintln(s.out, "----------------------------------------")
	for _, rec := range records {
		fmt.Fprintf(s.out, "%s | %-15s | $%8s\n",
			dateutils.ToISODate(rec.Date), rec.Category, rec.Amount.StringFixed(2))
	}
	fmt.Fprintf(s.out, "Total: $%s\n", total.StringFixed(2))
}

func (s *session) weeklySummary() {
	year, ok := s.promptInt("Year (YYYY): ")
	if !ok {
		return
	}
	week, ok := s.promptInt("Week number (1-53): ")
	if !ok || week < 1 || week > 53 {
		fmt.Fprintln(s.out, "Invalid year or week.")
		return
	}

	records, total := root.Ledger.WeeklySummary(year, week)
	fmt.Fprintf(s.out, "\nWeekly Summary for %d Week %d\n", year, week)
	fmt.Fprintln(s.out, "----------------------------------------")
	for _, rec := range records {
		fmt.Fprintf(s.out, "%s | %-15s | $%8s\n",
			dateutils.ToISODate(rec.Date), rec.Category, rec.Amount.StringFixed(2))
	}
	fmt.Fprintf(s.out, "Total: $%s\n", total.StringFixed(2))
}

func (s *session) search() {
	keyword := s.prompt("Keyword to search: ")
	records := root.Ledger.Search(keyword)

	fmt.Fprintf(s.out, "\nSearch results for '%s':\n", keyword)
	if len(records) == 0 {
		fmt.Fprintln(s.out, "No matching expenses found.")
		return
	}
	for _, rec := range records {
		fmt.Fprintf(s.out, "%s | %-15s | $%8s | %s\n",
			dateutils.ToISODate(rec.Date), rec.Category,
			rec.Amount.StringFixed(2), rec.Description)
	}
}

func (s *session) exportReport() {
	file := s.prompt(fmt.Sprintf("Filename (default: %s): ", root.Cfg.Report.File))
	if file == "" {
		file = root.Cfg.Report.File
	}

	generator := report.NewGenerator()
	if err := generator.Write(root.Ledger.Records(), root.Cfg.Report.Format, file); err != nil {
		fmt.Fprintf(s.out, "Error exporting report: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Report exported to %s.\n", file)
}

func (s *session) reset() {
	answer := s.prompt("Are you sure you want to remove ALL expenses? This cannot be undone. (y/n): ")
	if !strings.EqualFold(answer, "y") {
		return
	}
	root.Ledger.Reset(root.Cfg.Reset.ClearBudgets)
	root.SaveLedger()
	fmt.Fprintln(s.out, "All expenses have been removed and totals reset to zero.")
}

// Package models provides the data structures used throughout the application.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCategories is the fixed starting set of expense buckets. The set is
// extensible at load time when persisted data or a categories file names
// categories outside this list.
var DefaultCategories = []string{
	"Food",
	"Transportation",
	"Entertainment",
	"Utilities",
	"Health",
	"Shopping",
	"Education",
	"Other",
}

// ExpenseRecord represents a single recorded expense. Records are immutable
// once created and removed only by a full reset.
type ExpenseRecord struct {
	Date        time.Time
	Category    string
	Amount      decimal.Decimal
	Description string
}

// CategoryTotal pairs a category with its accumulated spending.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// BudgetStatus describes budget versus spending for one category. Budget and
// Remaining are nil when no budget is set; Spent is always the live total.
type BudgetStatus struct {
	Category  string
	Budget    *decimal.Decimal
	Spent     decimal.Decimal
	Remaining *decimal.Decimal
}

// CategoryConfig represents a single category entry from the categories file.
type CategoryConfig struct {
	Name string `yaml:"name"`
}

// CategoriesConfig is the top-level structure of the categories file.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}

// ParseAmount parses a string into a decimal amount. It tolerates a leading
// currency symbol, surrounding whitespace and a comma decimal separator.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	amount := strings.TrimSpace(amountStr)
	amount = strings.TrimPrefix(amount, "$")
	amount = strings.ReplaceAll(amount, ",", ".")
	return decimal.NewFromString(amount)
}

// ResolveCategory maps free-text user input to a canonical category name.
// It accepts case-insensitive names or a 1-based index into the category
// list. Returns the canonical name and whether a match was found.
func ResolveCategory(input string, categories []string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}
	if idx, ok := parseIndex(input); ok {
		if idx >= 1 && idx <= len(categories) {
			return categories[idx-1], true
		}
		return "", false
	}
	for _, cat := range categories {
		if strings.EqualFold(input, cat) {
			return cat, true
		}
	}
	return "", false
}

func parseIndex(s string) (int, bool) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// Package ledger implements the in-memory expense ledger: per-category
// totals, optional budgets and the append-only expense history.
package ledger

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"imujkanovic/expense-tracker/internal/dateutils"
	"imujkanovic/expense-tracker/internal/models"
	"imujkanovic/expense-tracker/internal/trackererror"
)

// ErrNoExpenses is returned by TopCategories when every category total is
// zero, so there is nothing to analyze.
var ErrNoExpenses = errors.New("no expenses to analyze")

// Ledger owns the in-memory expense state. It is not safe for concurrent
// use; the application is single-threaded by design.
type Ledger struct {
	categories []string // canonical iteration order
	known      map[string]struct{}
	totals     map[string]decimal.Decimal
	budgets    map[string]decimal.Decimal
	history    []models.ExpenseRecord

	clock func() time.Time
}

// HistoryFilter narrows History results. Zero values leave the corresponding
// filter unset; From and To are inclusive bounds. SortByDate orders the
// result by date for display without assuming the history itself is sorted.
type HistoryFilter struct {
	Category   string
	From       time.Time
	To         time.Time
	SortByDate bool
}

// New creates an empty ledger over the given category set, or the default
// set when none is given.
func New(categories ...string) *Ledger {
	if len(categories) == 0 {
		categories = models.DefaultCategories
	}
	l := &Ledger{
		known:   make(map[string]struct{}, len(categories)),
		totals:  make(map[string]decimal.Decimal, len(categories)),
		budgets: make(map[string]decimal.Decimal),
		clock:   dateutils.Today,
	}
	for _, cat := range categories {
		l.RegisterCategory(cat)
	}
	return l
}

// SetClock overrides the date source used to stamp new records.
func (l *Ledger) SetClock(clock func() time.Time) {
	if clock != nil {
		l.clock = clock
	}
}

// RegisterCategory adds a category to the known set. Registering an already
// known category is a no-op, so insertion order stays stable.
func (l *Ledger) RegisterCategory(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if _, ok := l.known[name]; ok {
		return
	}
	l.known[name] = struct{}{}
	l.categories = append(l.categories, name)
	l.totals[name] = decimal.Zero
}

// Categories returns the known categories in canonical order.
func (l *Ledger) Categories() []string {
	out := make([]string, len(l.categories))
	copy(out, l.categories)
	return out
}

// ResolveCategory maps user input (case-insensitive name or 1-based index)
// to a canonical category name.
func (l *Ledger) ResolveCategory(input string) (string, bool) {
	return models.ResolveCategory(input, l.categories)
}

// Add validates and records a new expense stamped with the current date.
// The category must be a known name and the amount a positive decimal.
func (l *Ledger) Add(category, amount, description string) (models.ExpenseRecord, error) {
	if _, ok := l.known[category]; !ok {
		return models.ExpenseRecord{}, &trackererror.InvalidCategoryError{
			Category: category,
			Known:    l.Categories(),
		}
	}

	value, err := models.ParseAmount(amount)
	if err != nil {
		return models.ExpenseRecord{}, &trackererror.InvalidAmountError{
			Value:  amount,
			Reason: "not a number",
		}
	}
	if !value.IsPositive() {
		return models.ExpenseRecord{}, &trackererror.InvalidAmountError{
			Value:  amount,
			Reason: "must be positive",
		}
	}

	rec := models.ExpenseRecord{
		Date:        l.clock(),
		Category:    category,
		Amount:      value,
		Description: description,
	}
	l.Record(rec)
	return rec, nil
}

// Record appends an already validated record and accumulates its total.
// Unknown categories are registered on the fly; this is the hydration path
// used when loading persisted data.
func (l *Ledger) Record(rec models.ExpenseRecord) {
	l.RegisterCategory(rec.Category)
	l.history = append(l.history, rec)
	l.totals[rec.Category] = l.totals[rec.Category].Add(rec.Amount)
}

// Totals returns the categories with spending above zero, in canonical
// order. An empty result means no expenses have been recorded yet.
func (l *Ledger) Totals() []models.CategoryTotal {
	var out []models.CategoryTotal
	for _, cat := range l.categories {
		if total := l.totals[cat]; total.IsPositive() {
			out = append(out, models.CategoryTotal{Category: cat, Total: total})
		}
	}
	return out
}

// Total returns the accumulated spending for one category.
func (l *Ledger) Total(category string) decimal.Decimal {
	return l.totals[category]
}

// GrandTotal sums spending across all categories.
func (l *Ledger) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, cat := range l.categories {
		total = total.Add(l.totals[cat])
	}
	return total
}

// TopCategories returns the categories whose total equals the maximum
// total, with the maximum itself. Ties are reported as a list. When the
// maximum is zero it returns ErrNoExpenses instead of reporting every
// empty category as a top spender.
func (l *Ledger) TopCategories() ([]string, decimal.Decimal, error) {
	max := decimal.Zero
	for _, cat := range l.categories {
		if l.totals[cat].GreaterThan(max) {
			max = l.totals[cat]
		}
	}
	if max.IsZero() {
		return nil, decimal.Zero, ErrNoExpenses
	}

	var top []string
	for _, cat := range l.categories {
		if l.totals[cat].Equal(max) {
			top = append(top, cat)
		}
	}
	return top, max, nil
}

// History returns the records matching every filter that is set, preserving
// insertion order unless SortByDate is requested. No matches is a valid
// empty result.
func (l *Ledger) History(f HistoryFilter) []models.ExpenseRecord {
	var out []models.ExpenseRecord
	for _, rec := range l.history {
		if f.Category != "" && rec.Category != f.Category {
			continue
		}
		if !dateutils.Between(rec.Date, f.From, f.To) {
			continue
		}
		out = append(out, rec)
	}
	if f.SortByDate {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date.Before(out[j].Date)
		})
	}
	return out
}

// Records returns the full history in insertion order.
func (l *Ledger) Records() []models.ExpenseRecord {
	out := make([]models.ExpenseRecord, len(l.history))
	copy(out, l.history)
	return out
}

// Search returns the records whose description contains the keyword,
// matched case-insensitively.
func (l *Ledger) Search(keyword string) []models.ExpenseRecord {
	keyword = strings.ToLower(keyword)
	var out []models.ExpenseRecord
	for _, rec := range l.history {
		if strings.Contains(strings.ToLower(rec.Description), keyword) {
			out = append(out, rec)
		}
	}
	return out
}

// MonthlySummary returns the records falling in the given calendar month
// together with their total.
func (l *Ledger) MonthlySummary(year int, month time.Month) ([]models.ExpenseRecord, decimal.Decimal) {
	var out []models.ExpenseRecord
	total := decimal.Zero
	for _, rec := range l.history {
		if dateutils.SameMonth(rec.Date, year, month) {
			out = append(out, rec)
			total = total.Add(rec.Amount)
		}
	}
	return out, total
}

// WeeklySummary returns the records falling in the given ISO week together
// with their total. ISO weeks start on Monday; week 1 contains the year's
// first Thursday.
func (l *Ledger) WeeklySummary(year, week int) ([]models.ExpenseRecord, decimal.Decimal) {
	var out []models.ExpenseRecord
	total := decimal.Zero
	for _, rec := range l.history {
		if dateutils.SameISOWeek(rec.Date, year, week) {
			out = append(out, rec)
			total = total.Add(rec.Amount)
		}
	}
	return out, total
}

// SetBudget sets a spending limit for a category, under the same category
// and amount validation rules as Add.
func (l *Ledger) SetBudget(category, amount string) error {
	if _, ok := l.known[category]; !ok {
		return &trackererror.InvalidCategoryError{
			Category: category,
			Known:    l.Categories(),
		}
	}

	value, err := models.ParseAmount(amount)
	if err != nil {
		return &trackererror.InvalidAmountError{Value: amount, Reason: "not a number"}
	}
	if !value.IsPositive() {
		return &trackererror.InvalidAmountError{Value: amount, Reason: "must be positive"}
	}

	l.budgets[category] = value
	return nil
}

// Budget returns the budget for a category and whether one is set.
func (l *Ledger) Budget(category string) (decimal.Decimal, bool) {
	b, ok := l.budgets[category]
	return b, ok
}

// BudgetStatus reports, per category in canonical order, the budget (if
// set), the live spending and the remaining headroom.
func (l *Ledger) BudgetStatus() []models.BudgetStatus {
	out := make([]models.BudgetStatus, 0, len(l.categories))
	for _, cat := range l.categories {
		status := models.BudgetStatus{
			Category: cat,
			Spent:    l.totals[cat],
		}
		if budget, ok := l.budgets[cat]; ok {
			remaining := budget.Sub(status.Spent)
			status.Budget = &budget
			status.Remaining = &remaining
		}
		out = append(out, status)
	}
	return out
}

// Reset zeroes every category total and clears the history. Budgets are
// kept unless clearBudgets is set; whether a reset clears budgets is an
// explicit configuration choice.
func (l *Ledger) Reset(clearBudgets bool) {
	for _, cat := range l.categories {
		l.totals[cat] = decimal.Zero
	}
	l.history = nil
	if clearBudgets {
		l.budgets = make(map[string]decimal.Decimal)
	}
}

// TotalsSnapshot returns a copy of the per-category totals map.
func (l *Ledger) TotalsSnapshot() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(l.totals))
	for cat, total := range l.totals {
		out[cat] = total
	}
	return out
}

// BudgetsSnapshot returns a copy of the budgets map.
func (l *Ledger) BudgetsSnapshot() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(l.budgets))
	for cat, budget := range l.budgets {
		out[cat] = budget
	}
	return out
}

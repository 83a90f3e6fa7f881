package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imujkanovic/expense-tracker/internal/ledger"
	"imujkanovic/expense-tracker/internal/models"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)
}

func newTestStore(t *testing.T) *LedgerStore {
	t.Helper()
	return NewLedgerStore(filepath.Join(t.TempDir(), "expenses.txt"))
}

func TestLoad_MissingFilesYieldEmptyLedger(t *testing.T) {
	s := newTestStore(t)

	l, err := s.Load()
	require.NoError(t, err)
	assert.True(t, l.GrandTotal().IsZero())
	assert.Empty(t, l.Records())
	assert.Equal(t, models.DefaultCategories, l.Categories())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	l := ledger.New()
	l.SetClock(func() time.Time {
		return time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	})
	_, err := l.Add("Food", "12.50", "lunch, with a comma")
	require.NoError(t, err)
	_, err = l.Add("Transportation", "3.20", `bus "ticket"`)
	require.NoError(t, err)
	require.NoError(t, l.SetBudget("Food", "200"))

	require.NoError(t, s.Save(l))

	loaded, err := s.Load()
	require.NoError(t, err)

	require.Len(t, loaded.Records(), 2)
	assert.Equal(t, "lunch, with a comma", loaded.Records()[0].Description)
	assert.Equal(t, `bus "ticket"`, loaded.Records()[1].Description)
	assert.True(t, loaded.GrandTotal().Equal(l.GrandTotal()))
	assert.True(t, loaded.Total("Food").Equal(decimal.RequireFromString("12.50")))

	budget, ok := loaded.Budget("Food")
	assert.True(t, ok)
	assert.True(t, budget.Equal(decimal.RequireFromString("200")))
}

func TestLoad_RecomputesTotalsFromRecords(t *testing.T) {
	// A stale totals snapshot must not be added on top of the recomputed
	// totals; the records are the sole source of truth.
	s := newTestStore(t)

	writeFile(t, s.Path, "date,category,amount,description\n2024-01-01,Food,10.00,a\n")
	writeFile(t, s.MetaPath(), `{"expenses": {"Food": 10.0}, "budgets": {"Food": null}}`)

	l, err := s.Load()
	require.NoError(t, err)
	assert.True(t, l.Total("Food").Equal(decimal.RequireFromString("10")))
	assert.True(t, l.GrandTotal().Equal(decimal.RequireFromString("10")))
}

func TestLoad_SkipsMalformedRows(t *testing.T) {
	s := newTestStore(t)

	content := strings.Join([]string{
		"date,category,amount,description",
		"2024-01-01,Food,10.00,ok",
		"short,row",
		"not-a-date,Food,5.00,bad date",
		"2024-01-02,Food,-3.00,negative",
		"2024-01-03,Food,abc,non-numeric",
		"2024-01-04,Transportation,2.50,ok too",
	}, "\n") + "\n"
	writeFile(t, s.Path, content)

	l, err := s.Load()
	require.NoError(t, err)
	require.Len(t, l.Records(), 2)
	assert.True(t, l.GrandTotal().Equal(decimal.RequireFromString("12.50")))
}

func TestLoad_UnknownCategoriesAreRegistered(t *testing.T) {
	s := newTestStore(t)

	writeFile(t, s.Path, "date,category,amount,description\n2024-01-01,Travel,99.00,flight\n")
	writeFile(t, s.MetaPath(), `{"expenses": {"Rent": 0}, "budgets": {"Rent": 800}}`)

	l, err := s.Load()
	require.NoError(t, err)

	assert.Contains(t, l.Categories(), "Travel")
	assert.Contains(t, l.Categories(), "Rent")
	assert.True(t, l.Total("Travel").Equal(decimal.RequireFromString("99")))

	budget, ok := l.Budget("Rent")
	assert.True(t, ok)
	assert.True(t, budget.Equal(decimal.RequireFromString("800")))
}

func TestLoad_PythonStyleMeta(t *testing.T) {
	// The sidecar may hold plain JSON numbers or nulls, as written by
	// earlier versions of the tracker.
	s := newTestStore(t)

	writeFile(t, s.MetaPath(), `{"expenses": {"Food": 0.0}, "budgets": {"Food": 150.5, "Health": null}}`)

	l, err := s.Load()
	require.NoError(t, err)

	budget, ok := l.Budget("Food")
	assert.True(t, ok)
	assert.True(t, budget.Equal(decimal.RequireFromString("150.5")))

	_, ok = l.Budget("Health")
	assert.False(t, ok)
}

func TestSave_WritesHeaderAndMeta(t *testing.T) {
	s := newTestStore(t)

	l := ledger.New()
	l.SetClock(func() time.Time {
		return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	})
	_, err := l.Add("Food", "10", "x")
	require.NoError(t, err)
	require.NoError(t, l.SetBudget("Health", "50"))

	require.NoError(t, s.Save(l))

	data, err := os.ReadFile(s.Path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "date,category,amount,description", lines[0])
	assert.Equal(t, "2024-06-01,Food,10.00,x", lines[1])

	metaData, err := os.ReadFile(s.MetaPath())
	require.NoError(t, err)

	var meta struct {
		Expenses map[string]decimal.Decimal  `json:"expenses"`
		Budgets  map[string]*decimal.Decimal `json:"budgets"`
	}
	require.NoError(t, json.Unmarshal(metaData, &meta))
	assert.True(t, meta.Expenses["Food"].Equal(decimal.RequireFromString("10")))
	require.NotNil(t, meta.Budgets["Health"])
	assert.True(t, meta.Budgets["Health"].Equal(decimal.RequireFromString("50")))
	// Unset budgets are serialized as null, one entry per known category
	assert.Contains(t, meta.Budgets, "Food")
	assert.Nil(t, meta.Budgets["Food"])
}

func TestSave_CustomDelimiter(t *testing.T) {
	s := newTestStore(t)
	s.Delimiter = ';'

	l := ledger.New()
	_, err := l.Add("Food", "10", "x")
	require.NoError(t, err)
	require.NoError(t, s.Save(l))

	data, err := os.ReadFile(s.Path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "date;category;amount;description"))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, loaded.Records(), 1)
}

func TestSave_OverwritesPriorSnapshot(t *testing.T) {
	s := newTestStore(t)

	l := ledger.New()
	_, err := l.Add("Food", "10", "first")
	require.NoError(t, err)
	require.NoError(t, s.Save(l))

	l.Reset(false)
	require.NoError(t, s.Save(l))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.Records())
	assert.True(t, loaded.GrandTotal().IsZero())
}

func TestSave_FailureLeavesPreviousSnapshot(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}
	dir := t.TempDir()
	s := NewLedgerStore(filepath.Join(dir, "expenses.txt"))

	l := ledger.New()
	_, err := l.Add("Food", "10", "x")
	require.NoError(t, err)
	require.NoError(t, s.Save(l))

	// Make the directory unwritable so the temp file cannot be created
	require.NoError(t, os.Chmod(dir, 0500))
	defer func() {
		_ = os.Chmod(dir, 0700)
	}()

	_, err = l.Add("Food", "5", "y")
	require.NoError(t, err)
	saveErr := s.Save(l)
	require.Error(t, saveErr)

	require.NoError(t, os.Chmod(dir, 0700))
	loaded, err := s.Load()
	require.NoError(t, err)
	// The previous snapshot is intact
	require.Len(t, loaded.Records(), 1)
	assert.Equal(t, "x", loaded.Records()[0].Description)
}

// Package store persists the ledger to a pair of flat files: a CSV record
// file and a JSON metadata sidecar holding the totals snapshot and budgets.
package store

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"imujkanovic/expense-tracker/internal/dateutils"
	"imujkanovic/expense-tracker/internal/fileutils"
	"imujkanovic/expense-tracker/internal/ledger"
	"imujkanovic/expense-tracker/internal/logging"
	"imujkanovic/expense-tracker/internal/models"
	"imujkanovic/expense-tracker/internal/trackererror"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// MetaSuffix is appended to the record file name to form the sidecar path.
const MetaSuffix = ".meta"

// expenseRow maps one expense record onto the CSV columns.
type expenseRow struct {
	Date        string `csv:"date"`
	Category    string `csv:"category"`
	Amount      string `csv:"amount"`
	Description string `csv:"description"`
}

// metadata is the sidecar document: the totals snapshot and the budgets.
// A nil budget means no budget is set for that category.
type metadata struct {
	Expenses map[string]decimal.Decimal  `json:"expenses"`
	Budgets  map[string]*decimal.Decimal `json:"budgets"`
}

// LedgerStore reads and writes a ledger's two artifact files.
type LedgerStore struct {
	Path      string
	Delimiter rune
}

// NewLedgerStore creates a store for the given record file path. The
// metadata sidecar lives at the same path with the ".meta" suffix.
func NewLedgerStore(path string) *LedgerStore {
	return &LedgerStore{Path: path, Delimiter: ','}
}

// MetaPath returns the path of the metadata sidecar.
func (s *LedgerStore) MetaPath() string {
	return s.Path + MetaSuffix
}

// Load recovers a ledger from disk. Absent files are not an error and yield
// an empty ledger. Totals are recomputed from the records themselves; the
// stored totals snapshot only registers categories that no record mentions,
// so the two artifacts can never double-count. Budgets merge from the
// sidecar. Malformed rows are skipped rather than aborting the load.
func (s *LedgerStore) Load(categories ...string) (*ledger.Ledger, error) {
	l := ledger.New(categories...)

	if err := s.loadRecords(l); err != nil {
		return l, err
	}
	if err := s.loadMetadata(l); err != nil {
		return l, err
	}
	return l, nil
}

func (s *LedgerStore) loadRecords(l *ledger.Ledger) error {
	if !fileutils.FileExists(s.Path) {
		log.WithField(logging.FieldFile, s.Path).Info("No previous data found, starting fresh")
		return nil
	}

	file, err := os.Open(s.Path)
	if err != nil {
		return &trackererror.PersistenceError{Op: "load", Path: s.Path, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = s.Delimiter
	// Rows with the wrong field count are skipped, not fatal.
	reader.FieldsPerRecord = -1

	loaded, skipped, rowNum := 0, 0, 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return &trackererror.PersistenceError{Op: "load", Path: s.Path, Err: err}
		}
		rowNum++
		if rowNum == 1 {
			// header row
			continue
		}

		rec, ok := parseRow(row)
		if !ok {
			skipped++
			log.WithFields(logrus.Fields{
				logging.FieldFile: s.Path,
				logging.FieldRow:  rowNum,
			}).Warn("Skipping malformed row")
			continue
		}
		l.Record(rec)
		loaded++
	}

	log.WithFields(logrus.Fields{
		logging.FieldFile:  s.Path,
		logging.FieldCount: loaded,
		"skipped":          skipped,
	}).Info("Loaded expense records")
	return nil
}

// parseRow converts a raw CSV row into an expense record. It reports false
// for rows with too few fields, unparseable dates or non-positive amounts.
func parseRow(row []string) (models.ExpenseRecord, bool) {
	if len(row) < 4 {
		return models.ExpenseRecord{}, false
	}

	date, err := dateutils.ParseDate(row[0])
	if err != nil {
		return models.ExpenseRecord{}, false
	}
	amount, err := models.ParseAmount(row[2])
	if err != nil || !amount.IsPositive() {
		return models.ExpenseRecord{}, false
	}

	return models.ExpenseRecord{
		Date:        date,
		Category:    row[1],
		Amount:      amount,
		Description: row[3],
	}, true
}

func (s *LedgerStore) loadMetadata(l *ledger.Ledger) error {
	metaPath := s.MetaPath()
	if !fileutils.FileExists(metaPath) {
		return nil
	}

	data, err := os.ReadFile(metaPath)
	if err != nil {
		return &trackererror.PersistenceError{Op: "load", Path: metaPath, Err: err}
	}

	var meta metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return &trackererror.PersistenceError{Op: "load", Path: metaPath, Err: err}
	}

	// The totals snapshot only extends the known category set; the totals
	// themselves stay as recomputed from the records.
	for cat := range meta.Expenses {
		l.RegisterCategory(cat)
	}
	for cat, budget := range meta.Budgets {
		if budget == nil || !budget.IsPositive() {
			continue
		}
		l.RegisterCategory(cat)
		if err := l.SetBudget(cat, budget.String()); err != nil {
			log.WithError(err).WithField(logging.FieldCategory, cat).Warn("Skipping invalid budget")
		}
	}

	log.WithField(logging.FieldFile, metaPath).Debug("Merged metadata sidecar")
	return nil
}

// Save rewrites both artifact files from the ledger's current state. Each
// file is written to a temp file and renamed into place so a crash mid-write
// leaves the previous snapshot intact.
func (s *LedgerStore) Save(l *ledger.Ledger) error {
	records := l.Records()

	csvData, err := marshalRecords(records, s.Delimiter)
	if err != nil {
		return &trackererror.PersistenceError{Op: "save", Path: s.Path, Err: err}
	}
	if err := fileutils.WriteFileAtomic(s.Path, csvData, 0644); err != nil {
		log.WithError(err).Error("Failed to write record file")
		return &trackererror.PersistenceError{Op: "save", Path: s.Path, Err: err}
	}

	metaData, err := marshalMetadata(l)
	if err != nil {
		return &trackererror.PersistenceError{Op: "save", Path: s.MetaPath(), Err: err}
	}
	if err := fileutils.WriteFileAtomic(s.MetaPath(), metaData, 0644); err != nil {
		log.WithError(err).Error("Failed to write metadata sidecar")
		return &trackererror.PersistenceError{Op: "save", Path: s.MetaPath(), Err: err}
	}

	log.WithFields(logrus.Fields{
		logging.FieldFile:  s.Path,
		logging.FieldCount: len(records),
	}).Debug("Saved ledger")
	return nil
}

// marshalRecords renders the record table (header plus one row per record)
// with the configured delimiter.
func marshalRecords(records []models.ExpenseRecord, delimiter rune) ([]byte, error) {
	rows := make([]expenseRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, expenseRow{
			Date:        dateutils.ToISODate(rec.Date),
			Category:    rec.Category,
			Amount:      rec.Amount.StringFixed(2),
			Description: rec.Description,
		})
	}

	var buf bytes.Buffer
	csvWriter := csv.NewWriter(&buf)
	csvWriter.Comma = delimiter
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return nil, fmt.Errorf("error marshaling records to CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func marshalMetadata(l *ledger.Ledger) ([]byte, error) {
	budgets := l.BudgetsSnapshot()
	meta := metadata{
		Expenses: l.TotalsSnapshot(),
		Budgets:  make(map[string]*decimal.Decimal, len(budgets)),
	}
	// Every known category appears in the budgets map; null means unset.
	for _, cat := range l.Categories() {
		if budget, ok := budgets[cat]; ok {
			meta.Budgets[cat] = &budget
		} else {
			meta.Budgets[cat] = nil
		}
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshaling metadata: %w", err)
	}
	return data, nil
}

// Package report renders the expense history as an exportable report.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"imujkanovic/expense-tracker/internal/dateutils"
	"imujkanovic/expense-tracker/internal/fileutils"
	"imujkanovic/expense-tracker/internal/logging"
	"imujkanovic/expense-tracker/internal/models"
)

// Generator produces expense reports in the supported formats.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a new report generator.
func NewGenerator() *Generator {
	return &Generator{
		logger: logging.NewLogrusAdapter(nil).WithField("component", "ReportGenerator"),
	}
}

// Generate renders the records in the given format ("text" or "json").
func (g *Generator) Generate(records []models.ExpenseRecord, format string) ([]byte, error) {
	switch format {
	case "text":
		return g.generateTextReport(records), nil
	case "json":
		return g.generateJSONReport(records)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// Write renders the records and writes them atomically to path.
func (g *Generator) Write(records []models.ExpenseRecord, format, path string) error {
	data, err := g.Generate(records, format)
	if err != nil {
		return err
	}
	if err := fileutils.WriteFileAtomic(path, data, 0644); err != nil {
		g.logger.WithError(err).Error("Failed to write report",
			logging.Field{Key: logging.FieldOutputFile, Value: path})
		return fmt.Errorf("error writing report: %w", err)
	}
	g.logger.Info("Report exported",
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(records)})
	return nil
}

// generateTextReport renders the human-readable report, one line per record.
func (g *Generator) generateTextReport(records []models.ExpenseRecord) []byte {
	var b strings.Builder
	b.WriteString("Expense Report\n")
	b.WriteString(strings.Repeat("=", 40) + "\n")
	for _, rec := range records {
		fmt.Fprintf(&b, "%s, %s, $%s, %s\n",
			dateutils.ToISODate(rec.Date), rec.Category,
			rec.Amount.StringFixed(2), rec.Description)
	}
	return []byte(b.String())
}

// reportRow is the JSON shape of one record.
type reportRow struct {
	Date        string `json:"date"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

// generateJSONReport renders the report in JSON format.
func (g *Generator) generateJSONReport(records []models.ExpenseRecord) ([]byte, error) {
	rows := make([]reportRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, reportRow{
			Date:        dateutils.ToISODate(rec.Date),
			Category:    rec.Category,
			Amount:      rec.Amount.StringFixed(2),
			Description: rec.Description,
		})
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

package tabular

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/xpense/xpense/internal/model"
)

// ExportResult reports a single export operation as one outcome.
type ExportResult struct {
	// Path is the file that was written.
	Path string
	// Rows is the number of transaction rows exported.
	Rows int
	// FellBack is true when the workbook codec was unavailable and only
	// the transactions table was written as delimited text.
	FellBack bool
}

// Exporter builds tabular documents from the ledger.
type Exporter struct {
	codec  Codec
	logger *slog.Logger
}

// NewExporter creates an exporter. A nil codec is allowed; every export
// then takes the delimited-text fallback.
func NewExporter(codec Codec, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{codec: codec, logger: logger}
}

// Export writes the three-sheet workbook into dir, falling back to a
// flat CSV of the transactions table when the codec is unavailable or
// fails. Codec trouble never propagates: the fallback is reported, not
// raised.
func (e *Exporter) Export(txns []model.Transaction, dir string) (*ExportResult, error) {
	wb := BuildWorkbook(txns)

	if e.codec != nil {
		data, err := e.codec.Encode(wb)
		if err == nil {
			path := filepath.Join(dir, WorkbookFilename)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return nil, fmt.Errorf("failed to write %s: %w", path, err)
			}
			return &ExportResult{Path: path, Rows: len(txns)}, nil
		}
		e.logger.Warn("workbook codec failed, falling back to CSV", "error", err)
	}

	data, err := EncodeCSV(wb.Sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to build CSV fallback: %w", err)
	}
	path := filepath.Join(dir, FallbackFilename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return &ExportResult{Path: path, Rows: len(txns), FellBack: true}, nil
}

// BuildWorkbook assembles the three export tables from the collection,
// in fixed order: the raw transactions, the per-category expense
// summary, and the monthly income/expense pivot.
func BuildWorkbook(txns []model.Transaction) *Workbook {
	return &Workbook{Sheets: []Sheet{
		transactionsSheet(txns),
		summarySheet(txns),
		byMonthSheet(txns),
	}}
}

// transactionsSheet lists every record in store enumeration order.
func transactionsSheet(txns []model.Transaction) Sheet {
	sheet := Sheet{
		Name:   SheetTransactions,
		Header: []string{"Date", "Description", "Category", "Type", "Amount"},
	}
	for _, tx := range txns {
		sheet.Rows = append(sheet.Rows, []any{tx.Date, tx.Desc, tx.Category, string(tx.Type), tx.Amount})
	}
	return sheet
}

// summarySheet sums expense amounts per category, in first-appearance
// order, and closes with a TOTAL row equal to the sum of all the rows
// above it.
func summarySheet(txns []model.Transaction) Sheet {
	sheet := Sheet{
		Name:   SheetSummary,
		Header: []string{"Category", "Expense"},
	}

	sums := make(map[string]float64)
	var order []string
	var total float64
	for _, tx := range txns {
		if tx.Type != model.TypeExpense {
			continue
		}
		if _, seen := sums[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		sums[tx.Category] += tx.Amount
		total += tx.Amount
	}

	for _, category := range order {
		sheet.Rows = append(sheet.Rows, []any{category, sums[category]})
	}
	sheet.Rows = append(sheet.Rows, []any{"TOTAL", total})
	return sheet
}

// byMonthSheet pivots the ledger into one row per month, ascending,
// with zero-filled income and expense sums and their net.
func byMonthSheet(txns []model.Transaction) Sheet {
	sheet := Sheet{
		Name:   SheetByMonth,
		Header: []string{"Month", "Income", "Expense", "Net"},
	}

	income := make(map[string]float64)
	expense := make(map[string]float64)
	monthSet := make(map[string]struct{})
	for _, tx := range txns {
		m := tx.Month()
		monthSet[m] = struct{}{}
		if tx.Type == model.TypeIncome {
			income[m] += tx.Amount
		} else {
			expense[m] += tx.Amount
		}
	}

	months := make([]string, 0, len(monthSet))
	for m := range monthSet {
		months = append(months, m)
	}
	sort.Strings(months)

	for _, m := range months {
		sheet.Rows = append(sheet.Rows, []any{m, income[m], expense[m], income[m] - expense[m]})
	}
	return sheet
}

package tabular

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xpense/xpense/internal/model"
)

func exportFixture() []model.Transaction {
	return []model.Transaction{
		{ID: "a", Date: "2024-01-05", Desc: "Groceries", Category: "Food", Type: model.TypeExpense, Amount: 100},
		{ID: "b", Date: "2024-01-10", Desc: "Salary", Category: "Work", Type: model.TypeIncome, Amount: 2500},
		{ID: "c", Date: "2024-02-01", Desc: "Coffee", Category: "Food", Type: model.TypeExpense, Amount: 20},
		{ID: "d", Date: "2024-02-14", Desc: "Dinner, with friends", Category: "Restaurants", Type: model.TypeExpense, Amount: 85.5},
	}
}

func TestBuildWorkbook_SheetOrder(t *testing.T) {
	wb := BuildWorkbook(exportFixture())
	require.Len(t, wb.Sheets, 3)
	assert.Equal(t, SheetTransactions, wb.Sheets[0].Name)
	assert.Equal(t, SheetSummary, wb.Sheets[1].Name)
	assert.Equal(t, SheetByMonth, wb.Sheets[2].Name)
}

func TestBuildWorkbook_Transactions(t *testing.T) {
	sheet := BuildWorkbook(exportFixture()).Sheets[0]

	assert.Equal(t, []string{"Date", "Description", "Category", "Type", "Amount"}, sheet.Header)
	require.Len(t, sheet.Rows, 4)
	// Store enumeration order, not re-sorted.
	assert.Equal(t, []any{"2024-01-05", "Groceries", "Food", "expense", 100.0}, sheet.Rows[0])
	assert.Equal(t, []any{"2024-01-10", "Salary", "Work", "income", 2500.0}, sheet.Rows[1])
}

func TestBuildWorkbook_SummaryTotal(t *testing.T) {
	sheet := BuildWorkbook(exportFixture()).Sheets[1]

	assert.Equal(t, []string{"Category", "Expense"}, sheet.Header)
	require.NotEmpty(t, sheet.Rows)

	last := sheet.Rows[len(sheet.Rows)-1]
	assert.Equal(t, "TOTAL", last[0])

	var sum float64
	for _, row := range sheet.Rows[:len(sheet.Rows)-1] {
		amount, ok := row[1].(float64)
		require.True(t, ok)
		sum += amount
	}
	assert.InDelta(t, sum, last[1].(float64), 1e-9)
	assert.InDelta(t, 205.5, last[1].(float64), 1e-9)

	// Income categories never appear in the summary.
	for _, row := range sheet.Rows {
		assert.NotEqual(t, "Work", row[0])
	}
}

func TestBuildWorkbook_ByMonthPivot(t *testing.T) {
	sheet := BuildWorkbook(exportFixture()).Sheets[2]

	assert.Equal(t, []string{"Month", "Income", "Expense", "Net"}, sheet.Header)
	require.Len(t, sheet.Rows, 2)

	assert.Equal(t, "2024-01", sheet.Rows[0][0])
	assert.InDelta(t, 2500, sheet.Rows[0][1].(float64), 1e-9)
	assert.InDelta(t, 100, sheet.Rows[0][2].(float64), 1e-9)
	assert.InDelta(t, 2400, sheet.Rows[0][3].(float64), 1e-9)

	// February has no income; the bucket is zero-filled.
	assert.Equal(t, "2024-02", sheet.Rows[1][0])
	assert.InDelta(t, 0, sheet.Rows[1][1].(float64), 1e-9)
	assert.InDelta(t, 105.5, sheet.Rows[1][2].(float64), 1e-9)
	assert.InDelta(t, -105.5, sheet.Rows[1][3].(float64), 1e-9)
}

func TestEncodeCSV_Quoting(t *testing.T) {
	sheet := Sheet{
		Header: []string{"Date", "Description", "Amount"},
		Rows: [][]any{
			{"2024-01-05", `Dinner, "fancy"` + "\nplace", 85.5},
		},
	}

	data, err := EncodeCSV(sheet)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "Date,Description,Amount")
	// Embedded quotes are doubled and the field is wrapped in quotes.
	assert.Contains(t, text, `"Dinner, ""fancy""`)
	assert.Contains(t, text, "85.5")
}

func TestDecodeCSV_Naive(t *testing.T) {
	table := DecodeCSV("date, desc ,amount\r\n2024-01-05, Coffee ,4.5\n\n2024-01-06,Lunch,12\n")

	assert.Equal(t, []string{"date", "desc", "amount"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Coffee", table.Rows[0]["desc"])
	assert.Equal(t, "12", table.Rows[1]["amount"])
}

func TestExporter_WritesWorkbook(t *testing.T) {
	dir := t.TempDir()
	exporter := NewExporter(NewXLSXCodec(), nil)

	result, err := exporter.Export(exportFixture(), dir)
	require.NoError(t, err)
	assert.False(t, result.FellBack)
	assert.Equal(t, filepath.Join(dir, WorkbookFilename), result.Path)
	assert.Equal(t, 4, result.Rows)

	// The written workbook decodes back to the transactions table.
	data, err := os.ReadFile(result.Path)
	require.NoError(t, err)
	table, err := NewXLSXCodec().Decode(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Description", "Category", "Type", "Amount"}, table.Headers)
	assert.Len(t, table.Rows, 4)
}

func TestExporter_FallbackWithoutCodec(t *testing.T) {
	dir := t.TempDir()
	exporter := NewExporter(nil, nil)

	result, err := exporter.Export(exportFixture(), dir)
	require.NoError(t, err)
	assert.True(t, result.FellBack)
	assert.Equal(t, filepath.Join(dir, FallbackFilename), result.Path)

	data, err := os.ReadFile(result.Path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// Header plus one line per transaction; only the transactions table.
	assert.Len(t, lines, 5)
	assert.Equal(t, "Date,Description,Category,Type,Amount", strings.TrimSpace(lines[0]))
}

type brokenCodec struct{}

func (brokenCodec) Decode([]byte) (*Table, error) { return nil, errors.New("corrupt") }

func (brokenCodec) Encode(*Workbook) ([]byte, error) { return nil, errors.New("no backend") }

func TestExporter_FallbackOnCodecError(t *testing.T) {
	dir := t.TempDir()
	exporter := NewExporter(brokenCodec{}, nil)

	result, err := exporter.Export(exportFixture(), dir)
	require.NoError(t, err, "codec trouble must not propagate")
	assert.True(t, result.FellBack)
}

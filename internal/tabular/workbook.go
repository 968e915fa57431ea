// Package tabular converts between the ledger and tabular spreadsheet
// documents: a three-sheet workbook on export, and loosely typed row
// maps on import. The untyped row shape never leaks past this package;
// the importer hands the normalizer canonical field candidates and the
// store strongly typed transactions.
package tabular

import (
	"fmt"
	"strconv"
)

// Names of the exported artifacts.
const (
	WorkbookFilename = "expenses.xlsx"
	FallbackFilename = "expenses.csv"

	SheetTransactions = "Transactions"
	SheetSummary      = "Summary"
	SheetByMonth      = "By Month"
)

// Sheet is a named grid: a header row followed by data rows. Cells are
// strings or float64s; anything else is formatted with %v.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]any
}

// Workbook is an ordered set of sheets.
type Workbook struct {
	Sheets []Sheet
}

// Row is a loosely typed imported row, keyed by header cell.
type Row map[string]string

// Table is the boundary shape a codec hands back on import: the header
// row as written in the document, plus one Row per data row.
type Table struct {
	Headers []string
	Rows    []Row
}

// Codec converts between serialized tabular documents and in-memory
// tables. The core holds no codec-specific state.
type Codec interface {
	// Decode reads the first sheet of a tabular document.
	Decode(data []byte) (*Table, error)
	// Encode serializes a multi-sheet workbook.
	Encode(wb *Workbook) ([]byte, error)
}

// formatCell renders a cell value the way it should appear in delimited
// text: floats compactly, without trailing zeros.
func formatCell(v any) string {
	switch c := v.(type) {
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", c)
	}
}

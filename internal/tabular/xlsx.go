package tabular

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXCodec reads and writes XLSX workbooks through excelize.
type XLSXCodec struct{}

// NewXLSXCodec creates the workbook codec.
func NewXLSXCodec() *XLSXCodec {
	return &XLSXCodec{}
}

// Decode reads the first sheet of an XLSX document into a Table.
func (c *XLSXCodec) Decode(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}

	table := &Table{Headers: rows[0]}
	for _, cells := range rows[1:] {
		row := make(Row, len(table.Headers))
		for i, h := range table.Headers {
			if i < len(cells) {
				row[h] = cells[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// Encode serializes the workbook, one named sheet per Sheet, with
// column widths sized to the headers.
func (c *XLSXCodec) Encode(wb *Workbook) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, sheet := range wb.Sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return nil, fmt.Errorf("failed to name sheet %q: %w", sheet.Name, err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return nil, fmt.Errorf("failed to add sheet %q: %w", sheet.Name, err)
			}
		}

		header := make([]any, len(sheet.Header))
		for j, h := range sheet.Header {
			header[j] = h
		}
		if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
			return nil, fmt.Errorf("failed to write header of %q: %w", sheet.Name, err)
		}

		for r, cells := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return nil, fmt.Errorf("failed to address row %d: %w", r+2, err)
			}
			row := append([]any(nil), cells...)
			if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
				return nil, fmt.Errorf("failed to write row %d of %q: %w", r+2, sheet.Name, err)
			}
		}

		if err := c.sizeColumns(f, sheet); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sizeColumns widens each column to fit its header, with a floor of 10.
func (c *XLSXCodec) sizeColumns(f *excelize.File, sheet Sheet) error {
	for j, h := range sheet.Header {
		col, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return fmt.Errorf("failed to name column %d: %w", j+1, err)
		}
		width := float64(len(h) + 2)
		if width < 10 {
			width = 10
		}
		if err := f.SetColWidth(sheet.Name, col, col, width); err != nil {
			return fmt.Errorf("failed to size column %s of %q: %w", col, sheet.Name, err)
		}
	}
	return nil
}

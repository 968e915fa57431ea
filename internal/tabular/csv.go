package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// DecodeCSV parses delimited text into a Table. The parse is
// intentionally naive: each line is split strictly on commas and cells
// are trimmed, so delimiter or quote characters inside a field are not
// supported. That matches the import contract; quoted-field CSV input
// is out of scope.
func DecodeCSV(text string) *Table {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return &Table{}
	}

	table := &Table{Headers: splitLine(lines[0])}
	for _, line := range lines[1:] {
		cells := splitLine(line)
		row := make(Row, len(table.Headers))
		for i, h := range table.Headers {
			if i < len(cells) {
				row[h] = cells[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func splitLine(line string) []string {
	cells := strings.Split(line, ",")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// EncodeCSV serializes a single sheet as delimited text with RFC-4180
// quoting: fields containing the delimiter, quotes or newlines are
// wrapped in quotes and embedded quotes are doubled.
func EncodeCSV(sheet Sheet) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(sheet.Header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	record := make([]string, len(sheet.Header))
	for _, cells := range sheet.Rows {
		for i := range record {
			record[i] = ""
			if i < len(cells) {
				record[i] = formatCell(cells[i])
			}
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

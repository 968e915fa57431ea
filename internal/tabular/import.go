package tabular

import (
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xpense/xpense/internal/common"
	"github.com/xpense/xpense/internal/model"
	"github.com/xpense/xpense/internal/normalize"
)

// fieldAliases lists the accepted header spellings per canonical field,
// in priority order. Spreadsheet exports disagree on capitalization, so
// both the canonical lowercase name and the display variant are taken.
var fieldAliases = map[string][]string{
	"date":     {"date", "Date"},
	"desc":     {"desc", "Description"},
	"category": {"category", "Category"},
	"type":     {"type", "Type"},
	"amount":   {"amount", "Amount"},
}

// ImportBatch is the outcome of reading and normalizing one import
// payload. The batch has not touched the store yet.
type ImportBatch struct {
	// Transactions are the rows that passed normalization, with fresh IDs.
	Transactions []model.Transaction
	// Skipped counts rows dropped by per-record validation.
	Skipped int
}

// Importer turns uploaded tabular payloads into normalized candidate
// batches for the dedup merger.
type Importer struct {
	codec  Codec
	logger *slog.Logger
}

// NewImporter creates an importer. A nil codec restricts imports to
// delimited text.
func NewImporter(codec Codec, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{codec: codec, logger: logger}
}

// Read parses an import payload, routed by filename extension: .csv is
// treated as delimited text, anything else goes through the workbook
// codec. Rows failing required-field validation are skipped without
// aborting the batch. A payload with zero valid rows is reported as
// ErrNothingToImport, distinct from a codec failure.
func (i *Importer) Read(filename string, data []byte) (*ImportBatch, error) {
	var table *Table
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		table = DecodeCSV(string(data))
	} else {
		if i.codec == nil {
			return nil, common.ErrCodecUnavailable
		}
		decoded, err := i.codec.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrCodecFailure, err)
		}
		table = decoded
	}

	// Resolve each canonical field to an actual header once, up front,
	// instead of probing every row for every spelling.
	columns := make(map[string]string, len(fieldAliases))
	for field, aliases := range fieldAliases {
		for _, alias := range aliases {
			if containsHeader(table.Headers, alias) {
				columns[field] = alias
				break
			}
		}
	}

	batch := &ImportBatch{}
	for n, row := range table.Rows {
		tx, err := i.normalizeRow(row, columns)
		if err != nil {
			// Per-record validation problems are local: skip and go on.
			i.logger.Debug("skipping import row", "row", n+1, "error", err)
			batch.Skipped++
			continue
		}
		batch.Transactions = append(batch.Transactions, tx)
	}

	if len(batch.Transactions) == 0 {
		return nil, common.ErrNothingToImport
	}
	return batch, nil
}

// normalizeRow maps one loosely typed row into a strongly typed
// transaction, refusing the row when a required field fails.
func (i *Importer) normalizeRow(row Row, columns map[string]string) (model.Transaction, error) {
	date, ok := normalize.Date(row[columns["date"]])
	if !ok {
		return model.Transaction{}, common.NewValidationError("date", row[columns["date"]])
	}
	desc, ok := normalize.Desc(row[columns["desc"]])
	if !ok {
		return model.Transaction{}, common.NewValidationError("desc", row[columns["desc"]])
	}
	amount, ok := normalize.Amount(row[columns["amount"]])
	if !ok {
		return model.Transaction{}, common.NewValidationError("amount", row[columns["amount"]])
	}

	return model.Transaction{
		ID:       uuid.NewString(),
		Date:     date,
		Desc:     desc,
		Category: normalize.Category(row[columns["category"]]),
		Type:     normalize.Type(row[columns["type"]]),
		// Direction lives in Type; only the magnitude is stored.
		Amount: math.Abs(amount),
	}, nil
}

func containsHeader(headers []string, name string) bool {
	for _, h := range headers {
		if strings.TrimSpace(h) == name {
			return true
		}
	}
	return false
}

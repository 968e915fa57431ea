package ledger

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xpense/xpense/internal/model"
)

// Type constraint values accepted by Filter.
const (
	TypeAll = "all"
)

// ParseType validates a raw type constraint. Empty is normalized to
// TypeAll; anything besides all, expense or income is an error, so a
// typo surfaces instead of silently matching nothing.
func ParseType(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "":
		return TypeAll, nil
	case TypeAll, string(model.TypeExpense), string(model.TypeIncome):
		return s, nil
	default:
		return "", fmt.Errorf("invalid type %q (want all, expense or income)", raw)
	}
}

// Filter is the conjunction of three independent predicates. A zero
// value for any field makes that predicate neutral.
type Filter struct {
	// Month is a YYYY-MM prefix; empty matches every date.
	Month string
	// Query is matched case-insensitively as a substring of the
	// description or the category; empty matches everything.
	Query string
	// Type is "all", "expense" or "income"; empty behaves like "all".
	Type string
}

// Match reports whether the transaction satisfies all active predicates.
func (f Filter) Match(tx model.Transaction) bool {
	if f.Month != "" && !strings.HasPrefix(tx.Date, f.Month) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(tx.Desc), q) &&
			!strings.Contains(strings.ToLower(tx.Category), q) {
			return false
		}
	}
	if f.Type != "" && f.Type != TypeAll && string(tx.Type) != f.Type {
		return false
	}
	return true
}

// Apply derives the display view: the matching transactions sorted by
// date descending. The sort is stable and keyed on date only, so
// same-day entries keep their original relative order. The result is a
// fresh slice, recomputed on every call.
func Apply(txns []model.Transaction, f Filter) []model.Transaction {
	var out []model.Transaction
	for _, tx := range txns {
		if f.Match(tx) {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// Categories returns the distinct category names present in the
// collection, sorted alphabetically.
func Categories(txns []model.Transaction) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, tx := range txns {
		if tx.Category == "" {
			continue
		}
		if _, ok := seen[tx.Category]; !ok {
			seen[tx.Category] = struct{}{}
			out = append(out, tx.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Package normalize turns raw field values from forms and imported rows
// into the canonical shapes the ledger admits. Each function either
// produces a valid canonical value or refuses; a refused field never
// yields a partially-valid record.
package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xpense/xpense/internal/model"
)

// DefaultCategory is assigned when the category field is blank.
const DefaultCategory = "Uncategorized"

// Spreadsheet serial dates are counted from this epoch (the "1900 system"
// with its leap-year quirk already absorbed).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Serial values outside these exclusive bounds are not treated as dates.
// The window covers 1954-2119, wide enough for any plausible statement
// while rejecting values that are far more likely to be amounts.
const (
	serialMin = 20000
	serialMax = 80000
)

var canonicalDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// localLayouts carry no zone: the value is a wall-clock date and must be
// parsed in local time, or the calendar date shifts for anyone west of
// UTC. zonedLayouts carry an offset or zone name and are converted to
// the local date instead.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"02-Jan-2006",
}

var zonedLayouts = []string{
	time.RFC3339,
	time.RFC1123,
	time.RFC1123Z,
}

// Date parses a raw date value into canonical YYYY-MM-DD form.
//
// Three tiers are attempted: an already-canonical string is accepted as
// is, a numeric value inside the spreadsheet-serial window is resolved
// against the serial epoch, and anything else goes through a general
// calendar parse truncated to the local date. Refusal returns ok=false.
func Date(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	if canonicalDate.MatchString(s) {
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return "", false
		}
		return s, true
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		if n > serialMin && n < serialMax {
			d := serialEpoch.AddDate(0, 0, int(n))
			return d.Format("2006-01-02"), true
		}
		// Numeric but outside the window: more likely an amount.
		return "", false
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Local().Format("2006-01-02"), true
		}
	}
	return "", false
}

// Amount parses a raw amount into a float. Non-numeric input, NaN and
// infinities are refused. The sign is preserved here; the caller decides
// whether a negative value is refused (creation) or folded to its
// magnitude (edit and import).
func Amount(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// Type classifies a raw type value. Anything containing "inc" (case
// insensitive) is income; everything else, including blank, is expense.
// The loose match tolerates header variants like "Income" or "inc.".
// It is scoped strictly to the type field and must not be reused for
// free-text matching.
func Type(raw string) model.TxType {
	if strings.Contains(strings.ToLower(raw), "inc") {
		return model.TypeIncome
	}
	return model.TypeExpense
}

// Category trims a raw category, substituting DefaultCategory when blank.
func Category(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return DefaultCategory
	}
	return s
}

// Desc trims a raw description. Blank descriptions are refused; the
// field is required on every path that creates a record.
func Desc(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	return s, true
}

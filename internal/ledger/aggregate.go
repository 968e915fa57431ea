package ledger

import (
	"sort"
	"time"

	"github.com/xpense/xpense/internal/model"
)

// KPIs are the headline scalars computed over the whole ledger,
// independent of any active filter.
type KPIs struct {
	// CurrentMonth is the YYYY-MM bucket the KPIs were computed for.
	CurrentMonth string
	// TotalExpense is the all-time sum of expense amounts.
	TotalExpense float64
	// TotalIncome is the all-time sum of income amounts.
	TotalIncome float64
	// MonthExpense is the expense sum for the calendar month containing
	// the evaluation date.
	MonthExpense float64
}

// Series is a labeled numeric sequence ready for a chart sink. Labels
// and Values are index-aligned; every label has a value, zero-filled
// where no data contributed.
type Series struct {
	Labels []string
	Values []float64
}

// Summary bundles everything a single aggregation pass produces.
type Summary struct {
	KPIs KPIs
	// CategoryBreakdown sums expense amounts per category, in first-
	// appearance order. Income is not categorized in charts.
	CategoryBreakdown Series
	// MonthlyExpense sums expense amounts per month over the full month
	// axis, ascending.
	MonthlyExpense Series
	// MonthlyNet is the signed per-month sum: income positive, expense
	// negative. Its axis is the union of all months seen in the data.
	MonthlyNet Series
	// CumulativeNet is the running prefix sum of MonthlyNet.
	CumulativeNet Series
}

// Aggregate computes the full summary in one pass over the collection.
// The evaluation date is taken once, from now, so repeated calls never
// reuse a stale "today".
func Aggregate(txns []model.Transaction, now time.Time) Summary {
	currentMonth := now.Format("2006-01")

	var k KPIs
	k.CurrentMonth = currentMonth

	byCategory := make(map[string]float64)
	var categoryOrder []string
	byMonthExpense := make(map[string]float64)
	byMonthNet := make(map[string]float64)

	for _, tx := range txns {
		month := tx.Month()

		if tx.Type == model.TypeExpense {
			k.TotalExpense += tx.Amount
			if month == currentMonth {
				k.MonthExpense += tx.Amount
			}
			if _, seen := byCategory[tx.Category]; !seen {
				categoryOrder = append(categoryOrder, tx.Category)
			}
			byCategory[tx.Category] += tx.Amount
			byMonthExpense[month] += tx.Amount
		} else {
			k.TotalIncome += tx.Amount
		}

		byMonthNet[month] += tx.Signed()
	}

	// The month axis is the union of both groupings so a month with only
	// income still appears, with a zero expense bucket.
	monthSet := make(map[string]struct{}, len(byMonthNet))
	for m := range byMonthExpense {
		monthSet[m] = struct{}{}
	}
	for m := range byMonthNet {
		monthSet[m] = struct{}{}
	}
	months := make([]string, 0, len(monthSet))
	for m := range monthSet {
		months = append(months, m)
	}
	sort.Strings(months)

	expense := Series{Labels: months, Values: make([]float64, len(months))}
	net := Series{Labels: months, Values: make([]float64, len(months))}
	cumulative := Series{Labels: months, Values: make([]float64, len(months))}
	var running float64
	for i, m := range months {
		expense.Values[i] = byMonthExpense[m]
		net.Values[i] = byMonthNet[m]
		running += byMonthNet[m]
		cumulative.Values[i] = running
	}

	breakdown := Series{
		Labels: categoryOrder,
		Values: make([]float64, len(categoryOrder)),
	}
	for i, c := range categoryOrder {
		breakdown.Values[i] = byCategory[c]
	}

	return Summary{
		KPIs:              k,
		CategoryBreakdown: breakdown,
		MonthlyExpense:    expense,
		MonthlyNet:        net,
		CumulativeNet:     cumulative,
	}
}

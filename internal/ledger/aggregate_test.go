package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xpense/xpense/internal/model"
)

func TestAggregate(t *testing.T) {
	txns := []model.Transaction{
		tx("a", "2024-01-05", "Groceries", "Food", model.TypeExpense, 100),
		tx("b", "2024-01-10", "Refund", "Misc", model.TypeIncome, 50),
		tx("c", "2024-02-01", "Coffee", "Food", model.TypeExpense, 20),
	}
	now := time.Date(2024, time.February, 15, 12, 0, 0, 0, time.UTC)

	s := Aggregate(txns, now)

	assert.Equal(t, "2024-02", s.KPIs.CurrentMonth)
	assert.InDelta(t, 120, s.KPIs.TotalExpense, 1e-9)
	assert.InDelta(t, 50, s.KPIs.TotalIncome, 1e-9)
	assert.InDelta(t, 20, s.KPIs.MonthExpense, 1e-9)

	require.Equal(t, []string{"2024-01", "2024-02"}, s.MonthlyNet.Labels)
	assert.InDelta(t, -50, s.MonthlyNet.Values[0], 1e-9)
	assert.InDelta(t, -20, s.MonthlyNet.Values[1], 1e-9)

	assert.InDelta(t, -50, s.CumulativeNet.Values[0], 1e-9)
	assert.InDelta(t, -70, s.CumulativeNet.Values[1], 1e-9)

	require.Equal(t, []string{"2024-01", "2024-02"}, s.MonthlyExpense.Labels)
	assert.InDelta(t, 100, s.MonthlyExpense.Values[0], 1e-9)
	assert.InDelta(t, 20, s.MonthlyExpense.Values[1], 1e-9)

	// Only expense-typed entries are categorized.
	assert.Equal(t, []string{"Food"}, s.CategoryBreakdown.Labels)
	assert.InDelta(t, 120, s.CategoryBreakdown.Values[0], 1e-9)
}

func TestAggregate_IncomeOnlyMonthAppears(t *testing.T) {
	txns := []model.Transaction{
		tx("a", "2024-01-05", "Groceries", "Food", model.TypeExpense, 100),
		tx("b", "2024-03-10", "Bonus", "Work", model.TypeIncome, 500),
	}
	now := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)

	s := Aggregate(txns, now)

	// The month axis is the union: March has no expenses but still shows
	// up with a zero expense bucket.
	require.Equal(t, []string{"2024-01", "2024-03"}, s.MonthlyExpense.Labels)
	assert.InDelta(t, 0, s.MonthlyExpense.Values[1], 1e-9)
	assert.InDelta(t, 500, s.MonthlyNet.Values[1], 1e-9)
	assert.InDelta(t, 400, s.CumulativeNet.Values[1], 1e-9)
}

func TestAggregate_Empty(t *testing.T) {
	s := Aggregate(nil, time.Now())
	assert.Zero(t, s.KPIs.TotalExpense)
	assert.Zero(t, s.KPIs.TotalIncome)
	assert.Empty(t, s.MonthlyNet.Labels)
	assert.Empty(t, s.CategoryBreakdown.Labels)
}

func TestAggregate_CurrentMonthTracksClock(t *testing.T) {
	txns := []model.Transaction{
		tx("a", "2024-01-05", "Groceries", "Food", model.TypeExpense, 100),
		tx("b", "2024-02-05", "Coffee", "Food", model.TypeExpense, 20),
	}

	january := Aggregate(txns, time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC))
	february := Aggregate(txns, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))

	assert.InDelta(t, 100, january.KPIs.MonthExpense, 1e-9)
	assert.InDelta(t, 20, february.KPIs.MonthExpense, 1e-9)
}

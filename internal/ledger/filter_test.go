package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xpense/xpense/internal/model"
)

func fixtureTxns() []model.Transaction {
	return []model.Transaction{
		tx("a", "2024-01-05", "Coffee at Blue Bottle", "Food", model.TypeExpense, 4.5),
		tx("b", "2024-01-10", "January salary", "Work", model.TypeIncome, 2500),
		tx("c", "2024-02-01", "Groceries", "Food", model.TypeExpense, 60),
		tx("d", "2024-02-14", "Dinner", "Restaurants", model.TypeExpense, 85),
	}
}

func TestFilter_Match(t *testing.T) {
	txns := fixtureTxns()

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []string
	}{
		{name: "empty filters match everything", filter: Filter{}, wantIDs: []string{"d", "c", "b", "a"}},
		{name: "type all is neutral", filter: Filter{Type: "all"}, wantIDs: []string{"d", "c", "b", "a"}},
		{name: "month prefix", filter: Filter{Month: "2024-01"}, wantIDs: []string{"b", "a"}},
		{name: "type expense", filter: Filter{Type: "expense"}, wantIDs: []string{"d", "c", "a"}},
		{name: "type income", filter: Filter{Type: "income"}, wantIDs: []string{"b"}},
		{name: "query matches description", filter: Filter{Query: "coffee"}, wantIDs: []string{"a"}},
		{name: "query matches category", filter: Filter{Query: "restau"}, wantIDs: []string{"d"}},
		{name: "conjunction of all three", filter: Filter{Month: "2024-02", Query: "food", Type: "expense"}, wantIDs: []string{"c"}},
		{name: "conjunction can be empty", filter: Filter{Month: "2024-01", Type: "expense", Query: "groceries"}, wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(txns, tt.filter)
			var ids []string
			for _, tx := range got {
				ids = append(ids, tx.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "", want: TypeAll},
		{raw: "all", want: TypeAll},
		{raw: "expense", want: "expense"},
		{raw: " Income ", want: "income"},
		// A typo must error rather than build a filter that matches nothing.
		{raw: "expence", wantErr: true},
		{raw: "both", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseType(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, "ParseType(%q)", tt.raw)
			continue
		}
		assert.NoError(t, err, "ParseType(%q)", tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

func TestApply_StableDateDescending(t *testing.T) {
	txns := []model.Transaction{
		tx("first", "2024-01-05", "One", "A", model.TypeExpense, 1),
		tx("second", "2024-01-05", "Two", "B", model.TypeExpense, 2),
		tx("newer", "2024-01-06", "Three", "C", model.TypeExpense, 3),
	}

	got := Apply(txns, Filter{})
	// Newest date first; same-day entries keep their original order.
	assert.Equal(t, "newer", got[0].ID)
	assert.Equal(t, "first", got[1].ID)
	assert.Equal(t, "second", got[2].ID)
}

func TestCategories(t *testing.T) {
	got := Categories(fixtureTxns())
	assert.Equal(t, []string{"Food", "Restaurants", "Work"}, got)
}

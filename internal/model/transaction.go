// Package model defines the core domain types for the ledger.
package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TxType is the direction of a transaction: money in or money out.
type TxType string

// The only two admissible transaction types.
const (
	TypeExpense TxType = "expense"
	TypeIncome  TxType = "income"
)

// Valid reports whether t is one of the two known types.
func (t TxType) Valid() bool {
	return t == TypeExpense || t == TypeIncome
}

// datePattern matches the canonical YYYY-MM-DD form.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Transaction is a single ledger entry. Amount carries magnitude only;
// direction comes from Type.
type Transaction struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"` // canonical YYYY-MM-DD
	Desc     string  `json:"desc"`
	Category string  `json:"category"`
	Type     TxType  `json:"type"`
	Amount   float64 `json:"amount"`
}

// Validate checks the invariants a transaction must satisfy before it is
// admitted into the store.
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("transaction ID is required")
	}
	if !datePattern.MatchString(t.Date) {
		return fmt.Errorf("date %q is not in YYYY-MM-DD form", t.Date)
	}
	if _, err := time.Parse("2006-01-02", t.Date); err != nil {
		return fmt.Errorf("date %q is not a valid calendar date", t.Date)
	}
	if strings.TrimSpace(t.Desc) == "" {
		return fmt.Errorf("description is required")
	}
	if t.Category == "" {
		return fmt.Errorf("category is required")
	}
	if !t.Type.Valid() {
		return fmt.Errorf("type %q must be %q or %q", t.Type, TypeExpense, TypeIncome)
	}
	if t.Amount < 0 {
		return fmt.Errorf("amount must be non-negative, got %v", t.Amount)
	}
	return nil
}

// DedupKey builds the composite key used for duplicate detection during
// import merges. Two transactions with the same key are considered the
// same entry regardless of their IDs.
func (t *Transaction) DedupKey() string {
	return strings.Join([]string{
		t.Date,
		t.Desc,
		t.Category,
		string(t.Type),
		strconv.FormatFloat(t.Amount, 'f', -1, 64),
	}, "|")
}

// Month returns the YYYY-MM bucket the transaction falls in.
func (t *Transaction) Month() string {
	if len(t.Date) < 7 {
		return t.Date
	}
	return t.Date[:7]
}

// Signed returns the amount with its direction applied: income positive,
// expense negative.
func (t *Transaction) Signed() float64 {
	if t.Type == TypeIncome {
		return t.Amount
	}
	return -t.Amount
}

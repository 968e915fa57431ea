package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/xpense/xpense/internal/common"
	"github.com/xpense/xpense/internal/model"
	"github.com/xpense/xpense/internal/normalize"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Long: `Record a single income or expense entry in the ledger.

The date defaults to today. Amounts are magnitudes; use --type to say
which way the money moved.`,
		RunE: runAdd,
	}

	cmd.Flags().StringP("date", "d", "", "transaction date (YYYY-MM-DD, default: today)")
	cmd.Flags().String("desc", "", "description (required)")
	cmd.Flags().StringP("category", "c", "", "category (default: Uncategorized)")
	cmd.Flags().StringP("type", "t", "expense", "transaction type (expense or income)")
	cmd.Flags().StringP("amount", "a", "", "amount (required, non-negative)")
	_ = cmd.MarkFlagRequired("desc")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runAdd(cmd *cobra.Command, _ []string) error {
	rawDate, _ := cmd.Flags().GetString("date")
	rawDesc, _ := cmd.Flags().GetString("desc")
	rawCategory, _ := cmd.Flags().GetString("category")
	rawType, _ := cmd.Flags().GetString("type")
	rawAmount, _ := cmd.Flags().GetString("amount")

	if rawDate == "" {
		rawDate = time.Now().Format("2006-01-02")
	}
	date, ok := normalize.Date(rawDate)
	if !ok {
		return common.NewUserError("invalid date", common.NewValidationError("date", rawDate))
	}
	desc, ok := normalize.Desc(rawDesc)
	if !ok {
		return common.NewUserError("description is required", common.NewValidationError("desc", rawDesc))
	}
	amount, ok := normalize.Amount(rawAmount)
	if !ok || amount < 0 {
		// Negative amounts are refused outright at creation; direction is
		// expressed with --type, never with a sign.
		return common.NewUserError("amount must be a non-negative number", common.NewValidationError("amount", rawAmount))
	}

	tx := model.Transaction{
		ID:       uuid.NewString(),
		Date:     date,
		Desc:     desc,
		Category: normalize.Category(rawCategory),
		Type:     normalize.Type(rawType),
		Amount:   amount,
	}

	store, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := store.Add(tx); err != nil {
		return fmt.Errorf("failed to add transaction: %w", err)
	}

	fmt.Printf("Added %s %s (%s) on %s [%s]\n", tx.Type, tx.Desc, tx.Category, tx.Date, tx.ID)
	return nil
}

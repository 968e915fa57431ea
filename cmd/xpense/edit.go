package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"github.com/xpense/xpense/internal/common"
	"github.com/xpense/xpense/internal/normalize"
)

func editCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Long: `Edit fields of an existing ledger entry.

Only the flags you pass change; everything else is kept. Every field is
re-validated and the entry keeps its ID. A signed amount is stored as
its magnitude; direction always comes from the type.`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().StringP("date", "d", "", "new date")
	cmd.Flags().String("desc", "", "new description")
	cmd.Flags().StringP("category", "c", "", "new category")
	cmd.Flags().StringP("type", "t", "", "new type (expense or income)")
	cmd.Flags().StringP("amount", "a", "", "new amount")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	store, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	tx, ok := store.Find(args[0])
	if !ok {
		return common.ErrNotFound
	}

	if cmd.Flags().Changed("date") {
		raw, _ := cmd.Flags().GetString("date")
		date, dateOK := normalize.Date(raw)
		if !dateOK {
			return common.NewUserError("invalid date", common.NewValidationError("date", raw))
		}
		tx.Date = date
	}
	if cmd.Flags().Changed("desc") {
		raw, _ := cmd.Flags().GetString("desc")
		desc, descOK := normalize.Desc(raw)
		if !descOK {
			return common.NewUserError("description cannot be empty", common.NewValidationError("desc", raw))
		}
		tx.Desc = desc
	}
	if cmd.Flags().Changed("category") {
		raw, _ := cmd.Flags().GetString("category")
		tx.Category = normalize.Category(raw)
	}
	if cmd.Flags().Changed("type") {
		raw, _ := cmd.Flags().GetString("type")
		tx.Type = normalize.Type(raw)
	}
	if cmd.Flags().Changed("amount") {
		raw, _ := cmd.Flags().GetString("amount")
		amount, amountOK := normalize.Amount(raw)
		if !amountOK {
			return common.NewUserError("invalid amount", common.NewValidationError("amount", raw))
		}
		tx.Amount = math.Abs(amount)
	}

	if err := store.Update(tx); err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	fmt.Printf("Updated %s\n", tx.ID)
	return nil
}

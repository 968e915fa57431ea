package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/xpense/xpense/internal/cli"
	"github.com/xpense/xpense/internal/common"
	"github.com/xpense/xpense/internal/ledger"
	"github.com/xpense/xpense/internal/model"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long: `List ledger entries, newest first.

Three independent filters can be combined: a month (YYYY-MM), a free
text query matched against description and category, and a type.
Omitting a filter leaves it neutral.`,
		RunE: runList,
	}

	cmd.Flags().StringP("month", "m", "", "only this month (YYYY-MM)")
	cmd.Flags().StringP("query", "q", "", "substring match on description or category")
	cmd.Flags().StringP("type", "t", "all", "transaction type (all, expense or income)")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	month, _ := cmd.Flags().GetString("month")
	query, _ := cmd.Flags().GetString("query")
	rawType, _ := cmd.Flags().GetString("type")
	typ, err := ledger.ParseType(rawType)
	if err != nil {
		return common.NewUserError("invalid --type", err)
	}

	store, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	view := ledger.Apply(store.All(), ledger.Filter{Month: month, Query: query, Type: typ})

	// Styled text confuses tabwriter's width accounting, so rows stay
	// plain and only the trailing amount is colored.
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tDESCRIPTION\tCATEGORY\tTYPE\tID\tAMOUNT")
	for _, tx := range view {
		amount := cli.FormatCurrency(tx.Amount)
		if tx.Type == model.TypeExpense {
			amount = cli.ExpenseStyle.Render(amount)
		} else {
			amount = cli.IncomeStyle.Render(amount)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			tx.Date, tx.Desc, tx.Category, tx.Type, tx.ID, amount)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d transaction(s)\n", len(view))
	return nil
}

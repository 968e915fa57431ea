package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/xpense/xpense/internal/ledger"
	"github.com/xpense/xpense/internal/report"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show spending KPIs and charts",
		Long: `Aggregate the whole ledger and chart it in the terminal:
headline totals, spending by category, monthly expenses, monthly net
flow and the cumulative net over time. Filters do not apply here; the
report always covers everything.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, cleanup, err := openLedger()
			if err != nil {
				return err
			}
			defer cleanup()

			summary := ledger.Aggregate(store.All(), time.Now())
			return report.Render(os.Stdout, report.NewTerminalSink(os.Stdout), summary)
		},
	}
}

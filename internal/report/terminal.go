// Package report renders aggregation output for the terminal: the KPI
// scalars and the labeled series that would otherwise feed a charting
// frontend.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/xpense/xpense/internal/cli"
	"github.com/xpense/xpense/internal/ledger"
	"github.com/xpense/xpense/internal/service"
)

const barWidth = 40

// TerminalSink is a chart sink that draws labeled series as horizontal
// bar charts.
type TerminalSink struct {
	w io.Writer
}

// NewTerminalSink creates a sink writing to w.
func NewTerminalSink(w io.Writer) *TerminalSink {
	return &TerminalSink{w: w}
}

// Series renders one labeled series. Bars are scaled against the
// largest magnitude in the series; negative values render in the
// expense color, positive in the income color.
func (s *TerminalSink) Series(title string, labels []string, values []float64) error {
	if _, err := fmt.Fprintln(s.w, cli.TitleStyle.Render(title)); err != nil {
		return err
	}
	if len(labels) == 0 {
		_, err := fmt.Fprintln(s.w, cli.SubtleStyle.Render("  (no data)"))
		return err
	}

	var max float64
	labelWidth := 0
	for i, label := range labels {
		if v := math.Abs(values[i]); v > max {
			max = v
		}
		if len(label) > labelWidth {
			labelWidth = len(label)
		}
	}

	for i, label := range labels {
		bar := renderBar(values[i], max)
		amount := cli.FormatCurrency(values[i])
		if values[i] < 0 {
			amount = cli.ExpenseStyle.Render(amount)
		} else {
			amount = cli.IncomeStyle.Render(amount)
		}
		if _, err := fmt.Fprintf(s.w, "  %-*s %s %s\n", labelWidth, label, bar, amount); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(s.w)
	return err
}

func renderBar(value, max float64) string {
	if max == 0 {
		return ""
	}
	n := int(math.Abs(value) / max * barWidth)
	if n == 0 && value != 0 {
		n = 1
	}
	bar := strings.Repeat("█", n)
	if value < 0 {
		return cli.ExpenseStyle.Render(bar)
	}
	return cli.IncomeStyle.Render(bar)
}

// RenderKPIs draws the headline scalars in a bordered box.
func RenderKPIs(w io.Writer, k ledger.KPIs) error {
	lines := []string{
		fmt.Sprintf("%s  %s", cli.HeaderStyle.Render("Total Expenses"), cli.ExpenseStyle.Render(cli.FormatCurrency(k.TotalExpense))),
		fmt.Sprintf("%s    %s", cli.HeaderStyle.Render("Total Income"), cli.IncomeStyle.Render(cli.FormatCurrency(k.TotalIncome))),
		fmt.Sprintf("%s  %s", cli.HeaderStyle.Render(fmt.Sprintf("%s Expenses", k.CurrentMonth)), cli.ExpenseStyle.Render(cli.FormatCurrency(k.MonthExpense))),
	}
	_, err := fmt.Fprintln(w, cli.KPIBoxStyle.Render(strings.Join(lines, "\n")))
	return err
}

// Render pushes the full aggregation summary through the sink: the KPI
// box followed by the category, monthly expense, monthly net and
// cumulative net series.
func Render(w io.Writer, sink service.ChartSink, s ledger.Summary) error {
	if err := RenderKPIs(w, s.KPIs); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	if err := sink.Series("Spending by Category", s.CategoryBreakdown.Labels, s.CategoryBreakdown.Values); err != nil {
		return err
	}
	if err := sink.Series("Monthly Expenses", s.MonthlyExpense.Labels, s.MonthlyExpense.Values); err != nil {
		return err
	}
	if err := sink.Series("Monthly Net Flow", s.MonthlyNet.Labels, s.MonthlyNet.Values); err != nil {
		return err
	}
	return sink.Series("Cumulative Net", s.CumulativeNet.Labels, s.CumulativeNet.Values)
}

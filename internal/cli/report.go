package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harishanth5445-jpg/my-trade/internal/journal"
)

// addReportCommands adds performance reporting commands.
func addReportCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Performance reports",
		Long:  "Summary statistics, setup rankings, weekday distribution, and the equity curve.",
	}

	cmd.AddCommand(newReportSummaryCmd(app))
	cmd.AddCommand(newReportSetupsCmd(app))
	cmd.AddCommand(newReportWeekdayCmd(app))
	cmd.AddCommand(newReportOutcomesCmd(app))
	cmd.AddCommand(newReportEquityCmd(app))

	rootCmd.AddCommand(cmd)
}

func newReportSummaryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summary statistics",
		Example: `  nexus report summary
  nexus report summary --month 3 --setup Breakout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			trades, _, err := fetchFiltered(ctx, cmd, app)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			summary := journal.Summarize(trades)

			if output.IsJSON() {
				return output.JSON(summary)
			}

			output.Bold("Summary")
			output.Printf("  Total Trades:     %d\n", summary.Total)
			output.Printf("  Winning Trades:   %d\n", summary.Wins)
			output.Printf("  Losing Trades:    %d\n", summary.Losses)
			output.Printf("  Breakeven Trades: %d\n", summary.Breakevens)
			output.Printf("  Gross Profit:     %s\n", output.Green(FormatCurrency(summary.GrossProfit)))
			output.Printf("  Gross Loss:       %s\n", output.Red(FormatCurrency(summary.GrossLoss)))
			output.Printf("  Net P&L:          %s\n", output.FormatPnL(summary.NetPL))
			output.Println()

			output.Bold("Performance Metrics")
			output.Printf("  Win Rate:         %.2f%%\n", summary.WinRate)
			output.Printf("  Profit Factor:    %.2f\n", summary.ProfitFactor)
			output.Printf("  Avg Win:          %s\n", FormatCurrency(summary.AvgWin))
			output.Printf("  Avg Loss:         %s\n", FormatCurrency(summary.AvgLoss))
			output.Printf("  Expectancy:       %s\n", FormatCurrency(summary.Expectancy))
			output.Printf("  Efficiency:       %.2f%%\n", summary.Efficiency)

			if symbols := journal.DistinctSymbols(trades); len(symbols) > 0 {
				output.Println()
				output.Printf("  Symbols:          %s\n", strings.Join(symbols, ", "))
			}

			return nil
		},
	}

	addFilterFlags(cmd)

	return cmd
}

func newReportSetupsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setups",
		Short: "Setup efficiency ranking",
		Long:  "Rank setups by win rate with trade counts and net P&L per setup.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			trades, _, err := fetchFiltered(ctx, cmd, app)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			groups := journal.GroupBySetup(trades)

			if output.IsJSON() {
				return output.JSON(groups)
			}

			if len(groups) == 0 {
				output.Info("No trades match.")
				return nil
			}

			output.Bold("Setup Efficiency")
			table := NewTable(output, "Setup", "Trades", "Wins", "Win Rate", "Net P&L")
			for _, g := range groups {
				name := g.Setup
				if name == "" {
					name = "(none)"
				}
				table.AddRow(
					TruncateString(name, 20),
					fmt.Sprintf("%d", g.Count),
					fmt.Sprintf("%d", g.Wins),
					fmt.Sprintf("%d%%", g.WinRate),
					output.FormatPnL(g.NetPL),
				)
			}
			table.Render()
			return nil
		},
	}

	addFilterFlags(cmd)

	return cmd
}

func newReportWeekdayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weekday",
		Short: "P&L by day of week",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			trades, _, err := fetchFiltered(ctx, cmd, app)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			days := journal.GroupByWeekday(trades)

			if output.IsJSON() {
				return output.JSON(days)
			}

			output.Bold("P&L by Weekday")
			table := NewTable(output, "Day", "Trades", "Net P&L")
			for _, d := range days {
				table.AddRow(
					d.Weekday.String(),
					fmt.Sprintf("%d", d.Count),
					output.FormatPnL(d.NetPL),
				)
			}
			table.Render()
			return nil
		},
	}

	addFilterFlags(cmd)

	return cmd
}

func newReportOutcomesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outcomes",
		Short: "Outcome distribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			trades, _, err := fetchFiltered(ctx, cmd, app)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			counts := journal.GroupByOutcome(trades)

			if output.IsJSON() {
				return output.JSON(counts)
			}

			total := counts.Wins + counts.Losses + counts.Breakevens
			output.Bold("Outcome Distribution")
			output.Printf("  %s  %s\n", output.Green("Wins:      "), outcomeBar(counts.Wins, total))
			output.Printf("  %s  %s\n", output.Red("Losses:    "), outcomeBar(counts.Losses, total))
			output.Printf("  %s  %s\n", output.Yellow("Breakeven: "), outcomeBar(counts.Breakevens, total))
			return nil
		},
	}

	addFilterFlags(cmd)

	return cmd
}

// outcomeBar renders a count as a proportional bar with the count appended.
func outcomeBar(count, total int) string {
	const width = 30
	filled := 0
	if total > 0 {
		filled = width * count / total
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf("  %d", count)
}

func newReportEquityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equity",
		Short: "Cumulative P&L curve",
		Long:  "Print the chronological equity curve with running peak and drawdown.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			trades, _, err := fetchFiltered(ctx, cmd, app)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			// Store order is newest-first, the curve wants chronological
			points := journal.Curve(trades, journal.NewestFirst)

			if output.IsJSON() {
				return output.JSON(points)
			}

			if len(points) == 0 {
				output.Info("No trades match.")
				return nil
			}

			output.Bold("Equity Curve")
			table := NewTable(output, "#", "Date", "Symbol", "Equity", "Peak", "Drawdown")
			for _, p := range points {
				table.AddRow(
					fmt.Sprintf("%d", p.Index),
					p.Date,
					p.Symbol,
					output.FormatPnL(p.Equity),
					FormatCurrency(p.Peak),
					output.ColoredString(ColorRed, FormatCurrency(p.Drawdown)),
				)
			}
			table.Render()

			output.Println()
			output.Printf("  Final Equity: %s   Max Drawdown: %s\n",
				output.FormatPnL(points[len(points)-1].Equity),
				output.Red(FormatCurrency(journal.MaxDrawdown(points))))
			return nil
		},
	}

	addFilterFlags(cmd)

	return cmd
}

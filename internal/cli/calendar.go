package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harishanth5445-jpg/my-trade/internal/journal"
	"github.com/harishanth5445-jpg/my-trade/internal/logging"
	"github.com/harishanth5445-jpg/my-trade/internal/store"
)

// addCalendarCommands adds the monthly P&L calendar command.
func addCalendarCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Monthly P&L calendar",
		Long:  "Render a month grid with per-day net P&L, trade counts, and weekly rollups.",
		Example: `  nexus calendar
  nexus calendar --year 2026 --month 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			accountID, err := resolveAccountID(ctx, cmd, app)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			now := time.Now()
			year, _ := cmd.Flags().GetInt("year")
			monthNum, _ := cmd.Flags().GetInt("month")
			if year == 0 {
				year = now.Year()
			}
			if monthNum == 0 {
				monthNum = int(now.Month())
			}
			month := time.Month(monthNum)

			trades, err := app.Store.GetTrades(ctx, store.TradeQuery{AccountID: accountID})
			if err != nil {
				output.Error("Failed to fetch trades: %v", err)
				return err
			}

			for _, tr := range trades {
				if _, perr := tr.ParsedDate(); perr != nil {
					logging.LogDroppedDate(app.Logger, tr.ID, tr.Date)
				}
			}

			days := journal.GroupByDay(trades)
			weeks := journal.MonthGrid(year, month, days)

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"year":  year,
					"month": month.String(),
					"weeks": weeks,
				})
			}

			renderCalendar(output, year, month, weeks)
			return nil
		},
	}

	cmd.Flags().Int("year", 0, "year (default: current)")
	cmd.Flags().Int("month", 0, "month 1-12 (default: current)")

	rootCmd.AddCommand(cmd)
}

// cellWidth is wide enough for a day number plus a signed P&L figure.
const cellWidth = 12

func renderCalendar(output *Output, year int, month time.Month, weeks []journal.Week) {
	output.Bold("%s %d", month.String(), year)
	output.Println()

	header := ""
	for _, d := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		header += Center(d, cellWidth) + " "
	}
	header += Center("Week", cellWidth)
	output.Println(output.BoldText(header))

	var monthTotal float64
	for _, week := range weeks {
		// Day-number line
		line := ""
		for _, cell := range week.Cells {
			if cell.Day == 0 {
				line += PadRight("", cellWidth) + " "
			} else {
				line += PadRight(fmt.Sprintf("%d", cell.Day), cellWidth) + " "
			}
		}
		output.Println(output.DimText(line))

		// P&L line with weekly rollup
		line = ""
		for _, cell := range week.Cells {
			if cell.Stat == nil {
				line += PadRight("", cellWidth) + " "
				continue
			}
			pnl := FormatPnL(cell.Stat.NetPL)
			padded := PadRight(pnl, cellWidth)
			line += output.ColoredString(output.PnLColor(cell.Stat.NetPL), padded) + " "
		}
		weekLabel := PadRight(FormatPnL(week.NetPL), cellWidth)
		line += output.ColoredString(output.PnLColor(week.NetPL), weekLabel)
		output.Println(line)

		// Trade-count and symbols line
		line = ""
		for _, cell := range week.Cells {
			if cell.Stat == nil {
				line += PadRight("", cellWidth) + " "
				continue
			}
			label := fmt.Sprintf("%d %s", len(cell.Stat.Trades), strings.Join(cell.Stat.Symbols, ","))
			line += PadRight(TruncateString(label, cellWidth), cellWidth) + " "
		}
		output.Println(output.DimText(line))
		output.Println()

		monthTotal += week.NetPL
	}

	output.Printf("Month Net P&L: %s\n", output.FormatPnL(monthTotal))
}

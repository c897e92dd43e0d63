package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	apperrors "github.com/harishanth5445-jpg/my-trade/internal/errors"
	"github.com/harishanth5445-jpg/my-trade/internal/journal"
	"github.com/harishanth5445-jpg/my-trade/internal/logging"
	"github.com/harishanth5445-jpg/my-trade/internal/models"
	"github.com/harishanth5445-jpg/my-trade/internal/store"
)

// addLogCommands adds trade logging commands.
func addLogCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Trade journal entries",
		Long:  "Log trades and browse the journal with filters.",
	}

	cmd.AddCommand(newLogAddCmd(app))
	cmd.AddCommand(newLogListCmd(app))
	cmd.AddCommand(newLogShowCmd(app))
	cmd.AddCommand(newLogEditCmd(app))
	cmd.AddCommand(newLogDeleteCmd(app))

	rootCmd.AddCommand(cmd)
}

// addFilterFlags registers the journal filter flags shared by list, report,
// and export commands.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("search", "", "substring match on symbol or setup")
	cmd.Flags().String("status", "", "filter by outcome (WIN, LOSS, BE)")
	cmd.Flags().String("side", "", "filter by direction (LONG, SHORT)")
	cmd.Flags().String("setup", "", "filter by setup")
	cmd.Flags().String("symbol", "", "filter by symbol")
	cmd.Flags().Int("month", 0, "filter by month (1-12)")
	cmd.Flags().String("from", "", "start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().String("to", "", "end date (YYYY-MM-DD, inclusive)")
}

// buildFilter assembles a journal.Filter from the shared flags.
func buildFilter(cmd *cobra.Command) (journal.Filter, error) {
	f := journal.NewFilter()

	f.SearchTerm, _ = cmd.Flags().GetString("search")
	f.Status = strings.ToUpper(flagString(cmd, "status"))
	f.Side = strings.ToUpper(flagString(cmd, "side"))
	f.Setup, _ = cmd.Flags().GetString("setup")
	if symbol, _ := cmd.Flags().GetString("symbol"); symbol != "" {
		f.Symbol = models.NormalizeSymbol(symbol)
	}

	if month, _ := cmd.Flags().GetInt("month"); month != 0 {
		if month < 1 || month > 12 {
			return f, &apperrors.ValidationError{Field: "month", Value: fmt.Sprint(month), Message: "must be between 1 and 12"}
		}
		f.Month = month - 1
	}

	if from, _ := cmd.Flags().GetString("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return f, &apperrors.ValidationError{Field: "from", Value: from, Message: "expected YYYY-MM-DD"}
		}
		f.Start = t
	}
	if to, _ := cmd.Flags().GetString("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return f, &apperrors.ValidationError{Field: "to", Value: to, Message: "expected YYYY-MM-DD"}
		}
		f.End = t
	}

	return f, nil
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

// fetchFiltered loads the account's trades newest-first and applies the
// filter flags in memory.
func fetchFiltered(ctx context.Context, cmd *cobra.Command, app *App) ([]models.Trade, string, error) {
	accountID, err := resolveAccountID(ctx, cmd, app)
	if err != nil {
		return nil, "", err
	}

	filter, err := buildFilter(cmd)
	if err != nil {
		return nil, "", err
	}

	trades, err := app.Store.GetTrades(ctx, store.TradeQuery{AccountID: accountID})
	if err != nil {
		return nil, "", err
	}

	return filter.Apply(trades), accountID, nil
}

func newLogAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <symbol>",
		Short: "Log a trade",
		Example: `  nexus log add ES --side LONG --status WIN --pnl 250 --setup Breakout
  nexus log add NQ --side SHORT --status LOSS --pnl -120.50 --contracts 2 --rating 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			accountID, err := resolveAccountID(ctx, cmd, app)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			side := strings.ToUpper(flagString(cmd, "side"))
			if side != string(models.SideLong) && side != string(models.SideShort) {
				err := &apperrors.ValidationError{Field: "side", Value: side, Message: "must be LONG or SHORT"}
				output.Error("%v", err)
				return err
			}

			status := strings.ToUpper(flagString(cmd, "status"))
			if status == "" {
				status = strings.ToUpper(app.Config.Journal.DefaultStatus)
			}
			switch status {
			case string(models.StatusWin), string(models.StatusLoss), string(models.StatusBreakeven):
			default:
				err := &apperrors.ValidationError{Field: "status", Value: status, Message: "must be WIN, LOSS or BE"}
				output.Error("%v", err)
				return err
			}

			date := flagString(cmd, "date")
			if date == "" {
				date = time.Now().Format("01/02/2006")
			} else if _, err := models.ParseTradeDate(date); err != nil {
				verr := &apperrors.ValidationError{Field: "date", Value: date, Message: "unrecognized date format"}
				output.Error("%v", verr)
				return verr
			}

			pnl, _ := cmd.Flags().GetFloat64("pnl")
			contracts, _ := cmd.Flags().GetInt("contracts")
			if contracts < 1 {
				err := &apperrors.ValidationError{Field: "contracts", Value: fmt.Sprint(contracts), Message: "must be at least 1"}
				output.Error("%v", err)
				return err
			}
			duration := flagString(cmd, "duration")
			mae, _ := cmd.Flags().GetFloat64("mae")
			mfe, _ := cmd.Flags().GetFloat64("mfe")
			setup := flagString(cmd, "setup")
			mistakes, _ := cmd.Flags().GetStringSlice("mistakes")
			rating, _ := cmd.Flags().GetInt("rating")
			remarks := flagString(cmd, "remarks")

			if rating < 0 || rating > 5 {
				err := &apperrors.ValidationError{Field: "rating", Value: fmt.Sprint(rating), Message: "must be between 0 and 5"}
				output.Error("%v", err)
				return err
			}

			trade := &models.Trade{
				ID:        models.NewTradeID(),
				AccountID: accountID,
				Date:      date,
				Symbol:    models.NormalizeSymbol(args[0]),
				Side:      models.Side(side),
				Status:    models.Status(status),
				NetPL:     pnl,
				Contracts: contracts,
				Duration:  duration,
				MAE:       mae,
				MFE:       mfe,
				Setup:     setup,
				Mistakes:  mistakes,
				Rating:    rating,
				Remarks:   remarks,
			}

			if err := app.Store.LogTrade(ctx, trade); err != nil {
				output.Error("Failed to log trade: %v", err)
				return err
			}

			logging.LogTrade(app.Logger, trade.ID, trade.Symbol, side, trade.NetPL)

			if output.IsJSON() {
				return output.JSON(trade)
			}
			output.Success("✓ Trade logged: %s %s %s", trade.Symbol, side, output.FormatPnL(trade.NetPL))
			output.Dim("ID: %s", trade.ID)
			return nil
		},
	}

	cmd.Flags().String("date", "", "trade date (default: today)")
	cmd.Flags().String("side", "LONG", "direction (LONG, SHORT)")
	cmd.Flags().String("status", "", "outcome (WIN, LOSS, BE)")
	cmd.Flags().Float64("pnl", 0, "net profit or loss")
	cmd.Flags().Int("contracts", 1, "number of contracts")
	cmd.Flags().String("duration", "", "hold duration label, e.g. '32m'")
	cmd.Flags().Float64("mae", 0, "maximum adverse excursion")
	cmd.Flags().Float64("mfe", 0, "maximum favorable excursion")
	cmd.Flags().String("setup", "", "setup name")
	cmd.Flags().StringSlice("mistakes", nil, "mistake tags")
	cmd.Flags().Int("rating", 0, "execution rating (0-5)")
	cmd.Flags().String("remarks", "", "free-form notes")

	return cmd
}

func newLogListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		Long:  "List trades newest-first with optional filters and a summary strip.",
		Example: `  nexus log list
  nexus log list --status WIN --month 3
  nexus log list --search breakout --from 2026-01-01 --to 2026-03-31`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			trades, _, err := fetchFiltered(ctx, cmd, app)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(trades)
			}

			summary := journal.Summarize(trades)

			output.Bold("Journal")
			output.Printf("  Net P&L: %s   Trades: %d   Win Rate: %.2f%%   Profit Factor: %.2f   Efficiency: %.2f%%\n",
				output.FormatPnL(summary.NetPL), summary.Total, summary.WinRate, summary.ProfitFactor, summary.Efficiency)
			output.Println()

			if len(trades) == 0 {
				output.Info("No trades match.")
				return nil
			}

			limit, _ := cmd.Flags().GetInt("limit")
			if limit > 0 && len(trades) > limit {
				trades = trades[:limit]
			}

			table := NewTable(output, "ID", "Date", "Symbol", "Side", "Status", "P&L", "Setup", "Rating")
			for _, t := range trades {
				table.AddRow(
					TruncateString(t.ID, 8),
					t.Date,
					t.Symbol,
					string(t.Side),
					output.StatusTag(string(t.Status)),
					output.FormatPnL(t.NetPL),
					TruncateString(t.Setup, 15),
					FormatRating(t.Rating),
				)
			}
			table.Render()
			return nil
		},
	}

	addFilterFlags(cmd)
	cmd.Flags().Int("limit", 0, "maximum rows to print (0 = all)")

	return cmd
}

func newLogShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <trade-id>",
		Short: "Show one trade in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			trade, err := app.Store.GetTrade(ctx, args[0])
			if err != nil {
				output.Error("Failed to fetch trade: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(trade)
			}

			output.Bold("Trade %s", trade.ID)
			output.Printf("  Date:       %s\n", trade.Date)
			output.Printf("  Symbol:     %s\n", trade.Symbol)
			output.Printf("  Side:       %s\n", trade.Side)
			output.Printf("  Status:     %s\n", output.StatusTag(string(trade.Status)))
			output.Printf("  Net P&L:    %s\n", output.FormatPnL(trade.NetPL))
			output.Printf("  Contracts:  %d\n", trade.Contracts)
			if trade.Duration != "" {
				output.Printf("  Duration:   %s\n", trade.Duration)
			}
			if trade.MAE != 0 || trade.MFE != 0 {
				output.Printf("  MAE/MFE:    %s / %s\n", FormatCurrency(trade.MAE), FormatCurrency(trade.MFE))
			}
			if trade.Setup != "" {
				output.Printf("  Setup:      %s\n", trade.Setup)
			}
			if len(trade.Mistakes) > 0 {
				output.Printf("  Mistakes:   %s\n", strings.Join(trade.Mistakes, ", "))
			}
			output.Printf("  Rating:     %s\n", FormatRating(trade.Rating))
			if trade.Remarks != "" {
				output.Printf("  Remarks:    %s\n", trade.Remarks)
			}
			return nil
		},
	}
}

func newLogEditCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <trade-id>",
		Short: "Replace fields of a logged trade",
		Long:  "Update a trade by full-record replacement. Only supplied flags change.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			trade, err := app.Store.GetTrade(ctx, args[0])
			if err != nil {
				output.Error("Failed to fetch trade: %v", err)
				return err
			}

			if cmd.Flags().Changed("pnl") {
				trade.NetPL, _ = cmd.Flags().GetFloat64("pnl")
			}
			if cmd.Flags().Changed("status") {
				status := strings.ToUpper(flagString(cmd, "status"))
				switch status {
				case string(models.StatusWin), string(models.StatusLoss), string(models.StatusBreakeven):
					trade.Status = models.Status(status)
				default:
					verr := &apperrors.ValidationError{Field: "status", Value: status, Message: "must be WIN, LOSS or BE"}
					output.Error("%v", verr)
					return verr
				}
			}
			if cmd.Flags().Changed("setup") {
				trade.Setup = flagString(cmd, "setup")
			}
			if cmd.Flags().Changed("rating") {
				trade.Rating, _ = cmd.Flags().GetInt("rating")
			}
			if cmd.Flags().Changed("remarks") {
				trade.Remarks = flagString(cmd, "remarks")
			}
			if cmd.Flags().Changed("mistakes") {
				trade.Mistakes, _ = cmd.Flags().GetStringSlice("mistakes")
			}

			if err := app.Store.ReplaceTrade(ctx, trade); err != nil {
				output.Error("Failed to update trade: %v", err)
				return err
			}

			output.Success("✓ Trade updated")
			return nil
		},
	}

	cmd.Flags().Float64("pnl", 0, "net profit or loss")
	cmd.Flags().String("status", "", "outcome (WIN, LOSS, BE)")
	cmd.Flags().String("setup", "", "setup name")
	cmd.Flags().Int("rating", 0, "execution rating (0-5)")
	cmd.Flags().String("remarks", "", "free-form notes")
	cmd.Flags().StringSlice("mistakes", nil, "mistake tags")

	return cmd
}

func newLogDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <trade-id>",
		Short: "Delete a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			if err := app.Store.DeleteTrade(ctx, args[0]); err != nil {
				output.Error("Failed to delete trade: %v", err)
				return err
			}

			app.Logger.Info().Str("trade_id", args[0]).Msg("Trade deleted")
			output.Success("✓ Trade deleted")
			return nil
		},
	}
}

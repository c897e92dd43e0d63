package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/harishanth5445-jpg/my-trade/internal/journal"
)

// addExportCommands adds the CSV export command.
func addExportCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the journal to CSV",
		Long:  "Write the (optionally filtered) journal to a spreadsheet-compatible CSV file.",
		Example: `  nexus export
  nexus export --output trades.csv --status WIN --month 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			trades, accountID, err := fetchFiltered(ctx, cmd, app)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			path, _ := cmd.Flags().GetString("output")
			if path == "" {
				name := fmt.Sprintf("journal-%s.csv", time.Now().Format("2006-01-02"))
				path = filepath.Join(app.Config.Export.Directory, name)
			}

			if err := journal.ExportCSVFile(path, trades); err != nil {
				output.Error("Failed to export: %v", err)
				return err
			}

			app.Logger.Info().
				Str("account_id", accountID).
				Str("path", path).
				Int("trades", len(trades)).
				Msg("Journal exported")

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"path":   path,
					"trades": len(trades),
				})
			}
			output.Success("✓ Exported %d trades to %s", len(trades), path)
			return nil
		},
	}

	addFilterFlags(cmd)
	cmd.Flags().String("output", "", "output file path (default: journal-<date>.csv in export dir)")

	rootCmd.AddCommand(cmd)
}

package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	apperrors "github.com/harishanth5445-jpg/my-trade/internal/errors"
	"github.com/harishanth5445-jpg/my-trade/internal/models"
)

// commandTimeout bounds every store round trip issued from a command.
const commandTimeout = 30 * time.Second

// addAccountCommands adds account management commands.
func addAccountCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Trading account management",
		Long:  "Create, list, and select trading accounts. Every trade belongs to one account.",
	}

	cmd.AddCommand(newAccountAddCmd(app))
	cmd.AddCommand(newAccountListCmd(app))
	cmd.AddCommand(newAccountRenameCmd(app))
	cmd.AddCommand(newAccountDeleteCmd(app))
	cmd.AddCommand(newAccountSelectCmd(app))

	rootCmd.AddCommand(cmd)
}

// resolveAccountID returns the account to operate on: the --account flag if
// set, otherwise the persisted selection, otherwise the sole account.
func resolveAccountID(ctx context.Context, cmd *cobra.Command, app *App) (string, error) {
	if id, _ := cmd.Flags().GetString("account"); id != "" {
		if _, err := app.Store.GetAccount(ctx, id); err != nil {
			return "", err
		}
		return id, nil
	}

	if id, err := app.Store.SelectedAccount(ctx); err != nil {
		return "", err
	} else if id != "" {
		return id, nil
	}

	accounts, err := app.Store.ListAccounts(ctx)
	if err != nil {
		return "", err
	}
	if len(accounts) == 0 {
		return "", apperrors.ErrNoAccounts
	}
	return accounts[0].ID, nil
}

func newAccountAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new account",
		Example: `  nexus account add "Apex Eval"
  nexus account add "Personal" --type LIVE --provider Tradovate`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			accType, _ := cmd.Flags().GetString("type")
			provider, _ := cmd.Flags().GetString("provider")

			account := &models.Account{
				ID:       models.NewAccountID(),
				Name:     args[0],
				Type:     accType,
				Provider: provider,
			}
			if err := app.Store.SaveAccount(ctx, account); err != nil {
				output.Error("Failed to create account: %v", err)
				return err
			}

			// First account becomes the selection automatically
			if selected, _ := app.Store.SelectedAccount(ctx); selected == "" {
				if err := app.Store.SetSelectedAccount(ctx, account.ID); err != nil {
					return err
				}
			}

			app.Logger.Info().Str("account_id", account.ID).Str("name", account.Name).Msg("Account created")

			if output.IsJSON() {
				return output.JSON(account)
			}
			output.Success("✓ Account created: %s", account.Name)
			output.Dim("ID: %s", account.ID)
			return nil
		},
	}

	cmd.Flags().String("type", "SIM", "account type (SIM, EVAL, FUNDED, LIVE)")
	cmd.Flags().String("provider", "", "broker or prop firm name")

	return cmd
}

func newAccountListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			accounts, err := app.Store.ListAccounts(ctx)
			if err != nil {
				output.Error("Failed to list accounts: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(accounts)
			}

			if len(accounts) == 0 {
				output.Info("No accounts yet. Create one with 'nexus account add <name>'.")
				return nil
			}

			selected, _ := app.Store.SelectedAccount(ctx)

			table := NewTable(output, "", "ID", "Name", "Type", "Provider")
			for _, a := range accounts {
				marker := " "
				if a.ID == selected {
					marker = output.Green("●")
				}
				table.AddRow(marker, a.ID, a.Name, a.Type, a.Provider)
			}
			table.Render()
			return nil
		},
	}
}

func newAccountRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			if err := app.Store.RenameAccount(ctx, args[0], args[1]); err != nil {
				output.Error("Failed to rename account: %v", err)
				return err
			}
			output.Success("✓ Account renamed to %s", args[1])
			return nil
		},
	}
}

func newAccountDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account and its trades",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			force, _ := cmd.Flags().GetBool("force")
			if !force {
				output.Warning("This deletes the account and every trade logged to it.")
				output.Println("Re-run with --force to confirm.")
				return nil
			}

			if err := app.Store.DeleteAccount(ctx, args[0]); err != nil {
				output.Error("Failed to delete account: %v", err)
				return err
			}

			app.Logger.Info().Str("account_id", args[0]).Msg("Account deleted")
			output.Success("✓ Account deleted")
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "skip confirmation")

	return cmd
}

func newAccountSelectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "select <id>",
		Short: "Select the default account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
			defer cancel()

			if err := app.Store.SetSelectedAccount(ctx, args[0]); err != nil {
				output.Error("Failed to select account: %v", err)
				return err
			}

			account, err := app.Store.GetAccount(ctx, args[0])
			if err != nil {
				return err
			}
			output.Success("✓ Selected account: %s", account.Name)
			return nil
		},
	}
}

// Package store provides data persistence implementations.
package store

import (
	"context"

	"github.com/harishanth5445-jpg/my-trade/internal/journal"
	"github.com/harishanth5445-jpg/my-trade/internal/models"
)

// TradeQuery filters trade queries at the storage layer. Zero values
// mean "no constraint"; an unset Ordering is newest-first. Finer-grained
// filtering happens in memory via journal.Filter.
type TradeQuery struct {
	AccountID string
	Symbol    string
	Ordering  journal.Ordering
	Limit     int
}

// DataStore defines the interface for data persistence.
type DataStore interface {
	// Accounts
	SaveAccount(ctx context.Context, account *models.Account) error
	GetAccount(ctx context.Context, id string) (*models.Account, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
	RenameAccount(ctx context.Context, id, name string) error
	DeleteAccount(ctx context.Context, id string) error

	// Selected account persists across invocations.
	SelectedAccount(ctx context.Context) (string, error)
	SetSelectedAccount(ctx context.Context, id string) error

	// Trades
	LogTrade(ctx context.Context, trade *models.Trade) error
	GetTrades(ctx context.Context, query TradeQuery) ([]models.Trade, error)
	GetTrade(ctx context.Context, id string) (*models.Trade, error)
	ReplaceTrade(ctx context.Context, trade *models.Trade) error
	DeleteTrade(ctx context.Context, id string) error
	ReplaceAllTrades(ctx context.Context, accountID string, trades []models.Trade) error

	Close() error
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	apperrors "github.com/harishanth5445-jpg/my-trade/internal/errors"
	"github.com/harishanth5445-jpg/my-trade/internal/journal"
	"github.com/harishanth5445-jpg/my-trade/internal/models"
)

// SQLiteStore implements DataStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based data store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Trading accounts
	CREATE TABLE IF NOT EXISTS accounts (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		provider TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Journaled trades
	CREATE TABLE IF NOT EXISTS trades (
		id TEXT PRIMARY KEY,
		account_id TEXT NOT NULL,
		date TEXT NOT NULL,
		symbol TEXT NOT NULL,
		side TEXT NOT NULL,
		status TEXT NOT NULL,
		net_pl REAL NOT NULL,
		contracts INTEGER NOT NULL DEFAULT 0,
		duration TEXT,
		mae REAL,
		mfe REAL,
		setup TEXT,
		mistakes TEXT,
		rating INTEGER,
		remarks TEXT,
		screenshot TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (account_id) REFERENCES accounts(id)
	);

	-- Application settings (selected account and the like)
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_trades_account ON trades(account_id);
	CREATE INDEX IF NOT EXISTS idx_trades_symbol ON trades(symbol);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveAccount inserts or replaces an account.
func (s *SQLiteStore) SaveAccount(ctx context.Context, account *models.Account) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO accounts (id, name, type, provider)
		VALUES (?, ?, ?, ?)
	`, account.ID, account.Name, account.Type, account.Provider)
	if err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

// GetAccount retrieves an account by ID.
func (s *SQLiteStore) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	var a models.Account
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, type, provider FROM accounts WHERE id = ?
	`, id).Scan(&a.ID, &a.Name, &a.Type, &a.Provider)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query account: %w", err)
	}
	return &a, nil
}

// ListAccounts returns all accounts in creation order.
func (s *SQLiteStore) ListAccounts(ctx context.Context) ([]models.Account, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, type, provider FROM accounts ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Type, &a.Provider); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// RenameAccount updates an account's display name.
func (s *SQLiteStore) RenameAccount(ctx context.Context, id, name string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE accounts SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("failed to rename account: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}

// DeleteAccount removes an account and all of its trades.
func (s *SQLiteStore) DeleteAccount(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM trades WHERE account_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete account trades: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperrors.ErrAccountNotFound
	}

	// Clear the selection if it pointed at the deleted account
	if _, err := tx.ExecContext(ctx, `DELETE FROM settings WHERE key = 'selected_account' AND value = ?`, id); err != nil {
		return fmt.Errorf("failed to clear selected account: %w", err)
	}

	return tx.Commit()
}

// SelectedAccount returns the persisted account selection, or "" if none.
func (s *SQLiteStore) SelectedAccount(ctx context.Context) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM settings WHERE key = 'selected_account'
	`).Scan(&id)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query selected account: %w", err)
	}
	return id, nil
}

// SetSelectedAccount persists the account selection.
func (s *SQLiteStore) SetSelectedAccount(ctx context.Context, id string) error {
	if _, err := s.GetAccount(ctx, id); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO settings (key, value, updated_at)
		VALUES ('selected_account', ?, CURRENT_TIMESTAMP)
	`, id)
	if err != nil {
		return fmt.Errorf("failed to set selected account: %w", err)
	}
	return nil
}

// LogTrade persists a journaled trade.
func (s *SQLiteStore) LogTrade(ctx context.Context, trade *models.Trade) error {
	mistakesJSON, _ := json.Marshal(trade.Mistakes)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO trades (id, account_id, date, symbol, side, status, net_pl, contracts, duration, mae, mfe, setup, mistakes, rating, remarks, screenshot)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, trade.ID, trade.AccountID, trade.Date, trade.Symbol, string(trade.Side), string(trade.Status),
		trade.NetPL, trade.Contracts, trade.Duration, trade.MAE, trade.MFE, trade.Setup,
		string(mistakesJSON), trade.Rating, trade.Remarks, trade.Screenshot)
	if err != nil {
		return fmt.Errorf("failed to log trade: %w", err)
	}
	return nil
}

// GetTrades returns trades matching the query. The default ordering is
// newest-first by insertion.
func (s *SQLiteStore) GetTrades(ctx context.Context, query TradeQuery) ([]models.Trade, error) {
	q := "SELECT id, account_id, date, symbol, side, status, net_pl, contracts, duration, mae, mfe, setup, mistakes, rating, remarks, screenshot FROM trades WHERE 1=1"
	args := []interface{}{}

	if query.AccountID != "" {
		q += " AND account_id = ?"
		args = append(args, query.AccountID)
	}
	if query.Symbol != "" {
		q += " AND symbol = ?"
		args = append(args, query.Symbol)
	}

	if query.Ordering == journal.OldestFirst {
		q += " ORDER BY rowid ASC"
	} else {
		q += " ORDER BY rowid DESC"
	}
	if query.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, query.Limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades: %w", err)
	}
	defer rows.Close()

	var trades []models.Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		trades = append(trades, t)
	}
	return trades, rows.Err()
}

// GetTrade retrieves a single trade by ID.
func (s *SQLiteStore) GetTrade(ctx context.Context, id string) (*models.Trade, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, account_id, date, symbol, side, status, net_pl, contracts, duration, mae, mfe, setup, mistakes, rating, remarks, screenshot
		FROM trades WHERE id = ?
	`, id)

	t, err := scanTrade(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrTradeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ReplaceTrade overwrites an existing trade row.
func (s *SQLiteStore) ReplaceTrade(ctx context.Context, trade *models.Trade) error {
	mistakesJSON, _ := json.Marshal(trade.Mistakes)

	res, err := s.db.ExecContext(ctx, `
		UPDATE trades SET account_id = ?, date = ?, symbol = ?, side = ?, status = ?, net_pl = ?, contracts = ?, duration = ?, mae = ?, mfe = ?, setup = ?, mistakes = ?, rating = ?, remarks = ?, screenshot = ?
		WHERE id = ?
	`, trade.AccountID, trade.Date, trade.Symbol, string(trade.Side), string(trade.Status),
		trade.NetPL, trade.Contracts, trade.Duration, trade.MAE, trade.MFE, trade.Setup,
		string(mistakesJSON), trade.Rating, trade.Remarks, trade.Screenshot, trade.ID)
	if err != nil {
		return fmt.Errorf("failed to replace trade: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperrors.ErrTradeNotFound
	}
	return nil
}

// DeleteTrade removes a trade by ID.
func (s *SQLiteStore) DeleteTrade(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM trades WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trade: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return apperrors.ErrTradeNotFound
	}
	return nil
}

// ReplaceAllTrades atomically swaps the account's trade history. Used by
// imports. Trades are inserted in slice order so insertion ordering still
// reflects the incoming sequence.
func (s *SQLiteStore) ReplaceAllTrades(ctx context.Context, accountID string, trades []models.Trade) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM trades WHERE account_id = ?`, accountID); err != nil {
		return fmt.Errorf("failed to clear trades: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trades (id, account_id, date, symbol, side, status, net_pl, contracts, duration, mae, mfe, setup, mistakes, rating, remarks, screenshot)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, t := range trades {
		mistakesJSON, _ := json.Marshal(t.Mistakes)
		if t.ID == "" {
			t.ID = models.NewTradeID()
		}
		if _, err := stmt.ExecContext(ctx, t.ID, accountID, t.Date, t.Symbol, string(t.Side), string(t.Status),
			t.NetPL, t.Contracts, t.Duration, t.MAE, t.MFE, t.Setup,
			string(mistakesJSON), t.Rating, t.Remarks, t.Screenshot); err != nil {
			return fmt.Errorf("failed to insert trade: %w", err)
		}
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTrade(row rowScanner) (models.Trade, error) {
	var t models.Trade
	var side, status, mistakesJSON string

	err := row.Scan(&t.ID, &t.AccountID, &t.Date, &t.Symbol, &side, &status, &t.NetPL,
		&t.Contracts, &t.Duration, &t.MAE, &t.MFE, &t.Setup, &mistakesJSON,
		&t.Rating, &t.Remarks, &t.Screenshot)
	if err == sql.ErrNoRows {
		return t, err
	}
	if err != nil {
		return t, fmt.Errorf("failed to scan trade: %w", err)
	}

	t.Side = models.Side(side)
	t.Status = models.Status(status)
	if mistakesJSON != "" {
		json.Unmarshal([]byte(mistakesJSON), &t.Mistakes)
	}
	return t, nil
}

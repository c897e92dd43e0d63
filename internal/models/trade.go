// Package models provides domain models for the trading journal.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Side represents the direction of a trade.
type Side string

const (
	SideLong  Side = "LONG"
	SideShort Side = "SHORT"
)

// Status represents the recorded outcome of a trade.
type Status string

const (
	StatusWin       Status = "WIN"
	StatusLoss      Status = "LOSS"
	StatusBreakeven Status = "BE"
)

// Trade represents one logged execution. Records are immutable except via
// full-record replacement; the status field is trusted as stored and never
// re-derived from the sign of NetPL.
type Trade struct {
	ID         string
	AccountID  string
	Date       string // formatted date, see ParseTradeDate
	Symbol     string
	Side       Side
	Status     Status
	NetPL      float64
	Contracts  int
	Duration   string // opaque display label, e.g. "1h 12m"
	MAE        float64
	MFE        float64
	Setup      string
	Mistakes   []string
	Rating     int // 0-5
	Remarks    string
	Screenshot string // opaque encoded image, never inspected
}

// NewTradeID returns a fresh unique trade identifier.
func NewTradeID() string {
	return uuid.NewString()
}

// NormalizeSymbol uppercases a ticker the way the journal stores it.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// tradeDateLayouts are the formats journal dates are stored in, most common
// first. MM/DD/YYYY is the canonical display format; ISO forms come from
// imports and the add command.
var tradeDateLayouts = []string{
	"01/02/2006",
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseTradeDate parses a stored trade date. Callers treat an error as
// "date unknown": such trades fail date-based filters and are excluded from
// calendar buckets without aborting the scan.
func ParseTradeDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range tradeDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ParsedDate returns the trade's date as a time value.
func (t Trade) ParsedDate() (time.Time, error) {
	return ParseTradeDate(t.Date)
}

// Package journal provides the pure aggregation, filtering, and reporting
// engine over in-memory trade collections. Every function here is a
// deterministic transformation: no storage, no I/O, no shared state.
package journal

import (
	"strings"
	"time"

	"github.com/harishanth5445-jpg/my-trade/internal/models"
)

// All is the sentinel for enum criteria that should not constrain the scan.
const All = "ALL"

// MonthAll disables the month criterion.
const MonthAll = -1

// Filter combines independently optional criteria into a single predicate
// over a trade. Zero values (empty string, MonthAll, zero time) mean "no
// constraint"; supplied criteria are ANDed.
type Filter struct {
	SearchTerm string // case-insensitive substring of symbol or setup
	Status     string // exact match, "" or "ALL" = any
	Side       string
	Setup      string
	Symbol     string
	Month      int       // 0=January..11=December, MonthAll = any
	Start      time.Time // inclusive lower bound, zero = unbounded
	End        time.Time // inclusive upper bound (whole day), zero = unbounded
}

// NewFilter returns a filter that matches every trade.
func NewFilter() Filter {
	return Filter{Month: MonthAll}
}

// Match reports whether the trade satisfies all supplied criteria. A trade
// whose date fails to parse is non-matching for date-based criteria but is
// never an error.
func (f Filter) Match(t models.Trade) bool {
	if f.SearchTerm != "" {
		term := strings.ToLower(f.SearchTerm)
		if !strings.Contains(strings.ToLower(t.Symbol), term) &&
			!strings.Contains(strings.ToLower(t.Setup), term) {
			return false
		}
	}
	if !matchEnum(f.Status, string(t.Status)) {
		return false
	}
	if !matchEnum(f.Side, string(t.Side)) {
		return false
	}
	if !matchEnum(f.Setup, t.Setup) {
		return false
	}
	if !matchEnum(f.Symbol, t.Symbol) {
		return false
	}

	if f.Month != MonthAll || !f.Start.IsZero() || !f.End.IsZero() {
		date, err := t.ParsedDate()
		if err != nil {
			return false
		}
		if f.Month != MonthAll && int(date.Month())-1 != f.Month {
			return false
		}
		if !f.Start.IsZero() && date.Before(f.Start) {
			return false
		}
		if !f.End.IsZero() && date.After(endOfDay(f.End)) {
			return false
		}
	}

	return true
}

// Apply returns the trades matching the filter, preserving order. The input
// slice is never mutated.
func (f Filter) Apply(trades []models.Trade) []models.Trade {
	matched := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if f.Match(t) {
			matched = append(matched, t)
		}
	}
	return matched
}

func matchEnum(criterion, value string) bool {
	if criterion == "" || criterion == All {
		return true
	}
	return criterion == value
}

// endOfDay extends an end bound to 23:59:59.999 so a same-day range covers
// the whole day.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999e6, t.Location())
}

package journal

import (
	"time"

	"github.com/harishanth5445-jpg/my-trade/internal/models"
)

// DayKeyLayout is the ISO date format used as calendar bucket keys.
const DayKeyLayout = "2006-01-02"

// DayStat is the per-calendar-date rollup backing one month-grid cell.
type DayStat struct {
	NetPL   float64
	Trades  []models.Trade // encounter order, not sorted within the day
	Symbols []string       // distinct, first-seen order
}

// GroupByDay buckets trades by calendar date, keyed YYYY-MM-DD. Trades whose
// date fails to parse are dropped from the result; the caller owns surfacing
// that data-quality gap. The input is never mutated, and grouping the same
// collection twice yields identical maps.
func GroupByDay(trades []models.Trade) map[string]*DayStat {
	days := make(map[string]*DayStat)
	for _, t := range trades {
		date, err := t.ParsedDate()
		if err != nil {
			continue
		}
		key := date.Format(DayKeyLayout)
		stat, ok := days[key]
		if !ok {
			stat = &DayStat{}
			days[key] = stat
		}
		stat.NetPL += t.NetPL
		stat.Trades = append(stat.Trades, t)
		if !containsString(stat.Symbols, t.Symbol) {
			stat.Symbols = append(stat.Symbols, t.Symbol)
		}
	}
	return days
}

// Cell is one slot of a 7-column month grid. Day 0 marks padding cells
// outside the displayed month.
type Cell struct {
	Day  int
	Stat *DayStat // nil when the day has no trades or the cell is padding
}

// Week is one 7-cell row of the month grid with its trailing net rollup.
type Week struct {
	Cells [7]Cell
	NetPL float64
}

// MonthGrid lays out a month as full weeks of seven cells, padded with blank
// cells before day 1 (aligned to its weekday, Sunday-first) and after the
// last day. Each week carries the summed P&L of its seven cells, so the
// first week's rollup covers fewer live days when the month starts
// mid-week.
func MonthGrid(year int, month time.Month, days map[string]*DayStat) []Week {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	totalCells := (offset + daysInMonth + 6) / 7 * 7
	weeks := make([]Week, totalCells/7)

	for i := 0; i < totalCells; i++ {
		day := i - offset + 1
		if day < 1 || day > daysInMonth {
			continue
		}
		key := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(DayKeyLayout)
		cell := Cell{Day: day, Stat: days[key]}
		w := &weeks[i/7]
		w.Cells[i%7] = cell
		if cell.Stat != nil {
			w.NetPL += cell.Stat.NetPL
		}
	}
	return weeks
}

// DistinctSymbols returns the unique symbols across a collection in
// first-seen order.
func DistinctSymbols(trades []models.Trade) []string {
	var symbols []string
	for _, t := range trades {
		if !containsString(symbols, t.Symbol) {
			symbols = append(symbols, t.Symbol)
		}
	}
	return symbols
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

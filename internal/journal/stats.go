package journal

import (
	"math"
	"sort"
	"time"

	"github.com/harishanth5445-jpg/my-trade/internal/models"
)

// Summary holds the scalar statistics over a trade collection. Every ratio
// degrades to a documented fallback instead of dividing by zero: rates are 0
// on an empty collection, averages are 0 without wins/losses, and profit
// factor collapses to gross profit when there are no losing trades.
type Summary struct {
	Total        int
	Wins         int
	Losses       int
	Breakevens   int
	NetPL        float64
	WinRate      float64 // percent, [0,100]
	GrossProfit  float64
	GrossLoss    float64 // magnitude of losing P&L, >= 0
	ProfitFactor float64
	AvgWin       float64
	AvgLoss      float64
	Expectancy   float64 // net P&L per trade
	Efficiency   float64 // percent of trades that are not losses
}

// Summarize reduces a (typically already filtered) trade collection into its
// summary statistics. Trades with an unrecognized status count toward Total,
// NetPL, and the gross sums, but not toward the WIN/LOSS/BE tallies.
func Summarize(trades []models.Trade) Summary {
	s := Summary{Total: len(trades)}

	var notLoss int
	for _, t := range trades {
		switch t.Status {
		case models.StatusWin:
			s.Wins++
		case models.StatusLoss:
			s.Losses++
		case models.StatusBreakeven:
			s.Breakevens++
		}
		if t.Status != models.StatusLoss {
			notLoss++
		}

		s.NetPL += t.NetPL
		if t.NetPL > 0 {
			s.GrossProfit += t.NetPL
		} else if t.NetPL < 0 {
			s.GrossLoss += -t.NetPL
		}
	}

	if s.Total > 0 {
		s.WinRate = float64(s.Wins) / float64(s.Total) * 100
		s.Efficiency = float64(notLoss) / float64(s.Total) * 100
		s.Expectancy = s.NetPL / float64(s.Total)
	}
	if s.GrossLoss > 0 {
		s.ProfitFactor = s.GrossProfit / s.GrossLoss
	} else {
		s.ProfitFactor = s.GrossProfit
	}
	if s.Wins > 0 {
		s.AvgWin = s.GrossProfit / float64(s.Wins)
	}
	if s.Losses > 0 {
		s.AvgLoss = s.GrossLoss / float64(s.Losses)
	}

	return s
}

// SetupStat is a per-setup aggregate used to rank setup efficiency.
type SetupStat struct {
	Setup   string
	Count   int
	Wins    int
	NetPL   float64
	WinRate int // percent, rounded to nearest integer
}

// GroupBySetup aggregates trades per setup tag and returns the groups sorted
// by win rate descending. The sort is stable: setups tied on win rate keep
// first-encounter order.
func GroupBySetup(trades []models.Trade) []SetupStat {
	index := make(map[string]int)
	var groups []SetupStat

	for _, t := range trades {
		i, ok := index[t.Setup]
		if !ok {
			i = len(groups)
			index[t.Setup] = i
			groups = append(groups, SetupStat{Setup: t.Setup})
		}
		groups[i].Count++
		groups[i].NetPL += t.NetPL
		if t.Status == models.StatusWin {
			groups[i].Wins++
		}
	}

	for i := range groups {
		groups[i].WinRate = int(math.Round(float64(groups[i].Wins) / float64(groups[i].Count) * 100))
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].WinRate > groups[b].WinRate
	})
	return groups
}

// WeekdayStat is the per-weekday P&L aggregate.
type WeekdayStat struct {
	Weekday time.Weekday
	Count   int
	NetPL   float64
}

// GroupByWeekday sums P&L per day of week. The result always has exactly
// seven entries, Sunday through Saturday, so chart consumers render a full
// week axis; weekdays with no trades carry zero. Trades whose date does not
// parse are excluded.
func GroupByWeekday(trades []models.Trade) [7]WeekdayStat {
	var days [7]WeekdayStat
	for i := range days {
		days[i].Weekday = time.Weekday(i)
	}
	for _, t := range trades {
		date, err := t.ParsedDate()
		if err != nil {
			continue
		}
		wd := date.Weekday()
		days[wd].Count++
		days[wd].NetPL += t.NetPL
	}
	return days
}

// OutcomeCounts is the WIN/LOSS/BE distribution. Unrecognized statuses are
// not counted here.
type OutcomeCounts struct {
	Wins       int
	Losses     int
	Breakevens int
}

// GroupByOutcome counts trades per recorded outcome.
func GroupByOutcome(trades []models.Trade) OutcomeCounts {
	var c OutcomeCounts
	for _, t := range trades {
		switch t.Status {
		case models.StatusWin:
			c.Wins++
		case models.StatusLoss:
			c.Losses++
		case models.StatusBreakeven:
			c.Breakevens++
		}
	}
	return c
}

package journal

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/harishanth5445-jpg/my-trade/internal/models"
)

// genTrade builds a random trade with plausible journal data: mixed
// outcomes, signed P&L, and a date somewhere in 2026.
func genTrade() gopter.Gen {
	symbols := []string{"ES", "NQ", "CL", "GC", "YM", "RTY"}
	setups := []string{"Breakout", "Pullback", "Reversal", "Range", ""}
	statuses := []models.Status{models.StatusWin, models.StatusLoss, models.StatusBreakeven}

	return gopter.CombineGens(
		gen.IntRange(0, len(symbols)-1),
		gen.IntRange(0, len(setups)-1),
		gen.IntRange(0, len(statuses)-1),
		gen.Float64Range(-5000, 5000),
		gen.IntRange(0, 364),
	).Map(func(vals []interface{}) models.Trade {
		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		date := base.AddDate(0, 0, vals[4].(int))
		return models.Trade{
			ID:     models.NewTradeID(),
			Date:   date.Format("01/02/2006"),
			Symbol: symbols[vals[0].(int)],
			Side:   models.SideLong,
			Status: statuses[vals[2].(int)],
			NetPL:  vals[3].(float64),
			Setup:  setups[vals[1].(int)],
		}
	})
}

func genTrades() gopter.Gen {
	return gen.SliceOf(genTrade())
}

// Property: summary rates stay inside their documented ranges and the
// tallies partition the collection.
func TestProperty_SummaryInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("win rate and efficiency stay within [0,100]", prop.ForAll(
		func(trades []models.Trade) bool {
			s := Summarize(trades)
			if s.WinRate < 0 || s.WinRate > 100 {
				t.Logf("WinRate out of range: %v", s.WinRate)
				return false
			}
			if s.Efficiency < 0 || s.Efficiency > 100 {
				t.Logf("Efficiency out of range: %v", s.Efficiency)
				return false
			}
			return true
		},
		genTrades(),
	))

	properties.Property("tallies never exceed the total", prop.ForAll(
		func(trades []models.Trade) bool {
			s := Summarize(trades)
			if s.Wins+s.Losses+s.Breakevens > s.Total {
				t.Logf("tallies %d/%d/%d exceed total %d", s.Wins, s.Losses, s.Breakevens, s.Total)
				return false
			}
			return true
		},
		genTrades(),
	))

	properties.Property("profit factor is never negative and falls back without losses", prop.ForAll(
		func(trades []models.Trade) bool {
			s := Summarize(trades)
			if s.ProfitFactor < 0 {
				t.Logf("ProfitFactor negative: %v", s.ProfitFactor)
				return false
			}
			if s.GrossLoss == 0 && math.Abs(s.ProfitFactor-s.GrossProfit) > 1e-9 {
				t.Logf("fallback broken: PF=%v GrossProfit=%v", s.ProfitFactor, s.GrossProfit)
				return false
			}
			return true
		},
		genTrades(),
	))

	properties.Property("gross sums reconcile with net P&L", prop.ForAll(
		func(trades []models.Trade) bool {
			s := Summarize(trades)
			if math.Abs((s.GrossProfit-s.GrossLoss)-s.NetPL) > 1e-6 {
				t.Logf("GrossProfit-GrossLoss=%v but NetPL=%v", s.GrossProfit-s.GrossLoss, s.NetPL)
				return false
			}
			return true
		},
		genTrades(),
	))

	properties.TestingRun(t)
}

// Property: filtering is a pure refinement of the collection.
func TestProperty_FilterRefinement(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("filtered output is a subset preserving order", prop.ForAll(
		func(trades []models.Trade, statusIdx int) bool {
			f := NewFilter()
			f.Status = []string{"", "ALL", "WIN", "LOSS", "BE"}[statusIdx]

			got := f.Apply(trades)
			if len(got) > len(trades) {
				return false
			}

			// Every output trade matches and appears in input order
			j := 0
			for _, g := range got {
				if !f.Match(g) {
					t.Logf("output trade does not match filter: %+v", g)
					return false
				}
				for j < len(trades) && trades[j].ID != g.ID {
					j++
				}
				if j == len(trades) {
					t.Logf("output order diverges from input order")
					return false
				}
				j++
			}
			return true
		},
		genTrades(),
		gen.IntRange(0, 4),
	))

	properties.Property("summarizing a filtered subset never raises total", prop.ForAll(
		func(trades []models.Trade) bool {
			f := NewFilter()
			f.Status = "WIN"
			sub := Summarize(f.Apply(trades))
			full := Summarize(trades)
			return sub.Total <= full.Total && sub.Wins == full.Wins
		},
		genTrades(),
	))

	properties.TestingRun(t)
}

// Property: the equity curve obeys its recurrence and the drawdown is never
// positive.
func TestProperty_EquityCurve(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("equity follows the running-sum recurrence", prop.ForAll(
		func(trades []models.Trade) bool {
			points := Curve(trades, OldestFirst)
			if len(points) != len(trades) {
				return false
			}
			prev := 0.0
			for i, p := range points {
				if math.Abs(p.Equity-(prev+trades[i].NetPL)) > 1e-6 {
					t.Logf("recurrence broken at %d: equity=%v prev=%v pnl=%v", i, p.Equity, prev, trades[i].NetPL)
					return false
				}
				prev = p.Equity
			}
			return true
		},
		genTrades(),
	))

	properties.Property("drawdown <= 0 and peak is monotone non-decreasing", prop.ForAll(
		func(trades []models.Trade) bool {
			points := Curve(trades, OldestFirst)
			lastPeak := 0.0
			for _, p := range points {
				if p.Drawdown > 1e-9 {
					t.Logf("positive drawdown: %v", p.Drawdown)
					return false
				}
				if p.Peak < lastPeak {
					t.Logf("peak decreased: %v -> %v", lastPeak, p.Peak)
					return false
				}
				lastPeak = p.Peak
			}
			return true
		},
		genTrades(),
	))

	properties.Property("newest-first input yields the reversed oldest-first curve", prop.ForAll(
		func(trades []models.Trade) bool {
			reversed := make([]models.Trade, len(trades))
			for i, tr := range trades {
				reversed[len(trades)-1-i] = tr
			}
			a := Curve(trades, OldestFirst)
			b := Curve(reversed, NewestFirst)
			for i := range a {
				if math.Abs(a[i].Equity-b[i].Equity) > 1e-9 {
					return false
				}
			}
			return true
		},
		genTrades(),
	))

	properties.TestingRun(t)
}

// Property: calendar buckets conserve trades and P&L.
func TestProperty_CalendarConservation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("day buckets conserve trade count and net P&L", prop.ForAll(
		func(trades []models.Trade) bool {
			days := GroupByDay(trades)

			var count int
			var total float64
			for _, d := range days {
				count += len(d.Trades)
				total += d.NetPL
			}

			var wantTotal float64
			for _, t := range trades {
				wantTotal += t.NetPL
			}

			if count != len(trades) {
				t.Logf("bucketed %d of %d trades", count, len(trades))
				return false
			}
			if math.Abs(total-wantTotal) > 1e-6 {
				t.Logf("bucketed P&L %v, want %v", total, wantTotal)
				return false
			}
			return true
		},
		genTrades(),
	))

	properties.Property("weekday grouping always yields seven buckets conserving count", prop.ForAll(
		func(trades []models.Trade) bool {
			days := GroupByWeekday(trades)
			var count int
			for i, d := range days {
				if d.Weekday != time.Weekday(i) {
					return false
				}
				count += d.Count
			}
			return count == len(trades)
		},
		genTrades(),
	))

	properties.Property("month grids cover every bucketed day exactly once", prop.ForAll(
		func(trades []models.Trade) bool {
			days := GroupByDay(trades)
			seen := make(map[string]bool)
			for m := time.January; m <= time.December; m++ {
				weeks := MonthGrid(2026, m, days)
				for _, w := range weeks {
					for _, c := range w.Cells {
						if c.Stat == nil {
							continue
						}
						key := fmt.Sprintf("2026-%02d-%02d", m, c.Day)
						if seen[key] {
							t.Logf("day %s appeared twice", key)
							return false
						}
						seen[key] = true
					}
				}
			}
			return len(seen) == len(days)
		},
		genTrades(),
	))

	properties.TestingRun(t)
}

package journal

import "github.com/harishanth5445-jpg/my-trade/internal/models"

// Ordering declares how the input collection is sorted in time, so the curve
// builder knows whether it has to reverse before accumulating. The canonical
// store returns newest-first, so that is the zero value; keeping the
// assumption explicit here means a store ordering change is a one-argument
// fix.
type Ordering int

const (
	NewestFirst Ordering = iota
	OldestFirst
)

// EquityPoint is one step of the cumulative P&L series.
type EquityPoint struct {
	Index    int // 1-based position in chronological order
	Equity   float64
	Peak     float64
	Drawdown float64 // Equity - Peak, always <= 0
	Date     string
	Symbol   string
}

// Curve builds the chronological running-total series with running peak and
// drawdown. The peak starts at zero, not at the first trade's P&L, so a
// losing opening trade immediately shows drawdown from the flat baseline.
func Curve(trades []models.Trade, order Ordering) []EquityPoint {
	points := make([]EquityPoint, 0, len(trades))

	var equity, peak float64
	for i := range trades {
		t := trades[i]
		if order == NewestFirst {
			t = trades[len(trades)-1-i]
		}
		equity += t.NetPL
		if equity > peak {
			peak = equity
		}
		points = append(points, EquityPoint{
			Index:    i + 1,
			Equity:   equity,
			Peak:     peak,
			Drawdown: equity - peak,
			Date:     t.Date,
			Symbol:   t.Symbol,
		})
	}
	return points
}

// MaxDrawdown returns the deepest drawdown of a curve (<= 0; 0 for an empty
// or never-underwater series).
func MaxDrawdown(points []EquityPoint) float64 {
	var worst float64
	for _, p := range points {
		if p.Drawdown < worst {
			worst = p.Drawdown
		}
	}
	return worst
}

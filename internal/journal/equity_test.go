package journal

import (
	"testing"

	"github.com/harishanth5445-jpg/my-trade/internal/models"
)

func eqTrade(date string, pnl float64) models.Trade {
	return models.Trade{
		ID:     models.NewTradeID(),
		Date:   date,
		Symbol: "ES",
		Side:   models.SideLong,
		Status: models.StatusWin,
		NetPL:  pnl,
	}
}

func TestOrderingZeroValueIsNewestFirst(t *testing.T) {
	// The store hands out newest-first by default, so an unset ordering
	// must mean exactly that.
	var o Ordering
	if o != NewestFirst {
		t.Fatal("zero-value Ordering must be NewestFirst")
	}
}

func TestCurveSingleLosingTrade(t *testing.T) {
	points := Curve([]models.Trade{eqTrade("03/15/2026", -40)}, OldestFirst)

	if len(points) != 1 {
		t.Fatalf("points = %d, want 1", len(points))
	}
	p := points[0]
	if p.Equity != -40 {
		t.Errorf("Equity = %v, want -40", p.Equity)
	}
	// The peak starts at zero, not at the first trade's P&L
	if p.Peak != 0 {
		t.Errorf("Peak = %v, want 0", p.Peak)
	}
	if p.Drawdown != -40 {
		t.Errorf("Drawdown = %v, want -40", p.Drawdown)
	}
}

func TestCurveRunningTotals(t *testing.T) {
	trades := []models.Trade{
		eqTrade("03/10/2026", 100),
		eqTrade("03/11/2026", -30),
		eqTrade("03/12/2026", 80),
	}

	points := Curve(trades, OldestFirst)

	wantEquity := []float64{100, 70, 150}
	wantPeak := []float64{100, 100, 150}
	wantDD := []float64{0, -30, 0}
	for i, p := range points {
		if p.Equity != wantEquity[i] {
			t.Errorf("points[%d].Equity = %v, want %v", i, p.Equity, wantEquity[i])
		}
		if p.Peak != wantPeak[i] {
			t.Errorf("points[%d].Peak = %v, want %v", i, p.Peak, wantPeak[i])
		}
		if p.Drawdown != wantDD[i] {
			t.Errorf("points[%d].Drawdown = %v, want %v", i, p.Drawdown, wantDD[i])
		}
		if p.Index != i+1 {
			t.Errorf("points[%d].Index = %d, want %d", i, p.Index, i+1)
		}
	}
}

func TestCurveNewestFirstReversesBeforeAccumulating(t *testing.T) {
	// Store order: newest trade first. The curve must still run oldest
	// to newest.
	newestFirst := []models.Trade{
		eqTrade("03/12/2026", 80),
		eqTrade("03/11/2026", -30),
		eqTrade("03/10/2026", 100),
	}

	points := Curve(newestFirst, NewestFirst)

	if points[0].Date != "03/10/2026" || points[0].Equity != 100 {
		t.Errorf("first point = %+v, want oldest trade at equity 100", points[0])
	}
	if points[2].Date != "03/12/2026" || points[2].Equity != 150 {
		t.Errorf("last point = %+v, want newest trade at equity 150", points[2])
	}
}

func TestCurveEmpty(t *testing.T) {
	points := Curve(nil, OldestFirst)
	if len(points) != 0 {
		t.Errorf("points = %d, want 0", len(points))
	}
	if dd := MaxDrawdown(points); dd != 0 {
		t.Errorf("MaxDrawdown of empty curve = %v, want 0", dd)
	}
}

func TestMaxDrawdown(t *testing.T) {
	trades := []models.Trade{
		eqTrade("03/10/2026", 100),
		eqTrade("03/11/2026", -150),
		eqTrade("03/12/2026", 200),
	}

	points := Curve(trades, OldestFirst)
	if dd := MaxDrawdown(points); dd != -150 {
		t.Errorf("MaxDrawdown = %v, want -150", dd)
	}
}

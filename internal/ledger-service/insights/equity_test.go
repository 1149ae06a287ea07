package insights

import (
	"math"
	"testing"
	"time"

	"github.com/radieske/bet-ledger-service/internal/ledger-service/bet"
)

var baseDay = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

// mkBet monta um registro mínimo para os cálculos do dashboard
func mkBet(day int, stake float64, status bet.Status) bet.Record {
	return bet.Record{
		ID:         "bet",
		BankrollID: "11111111-1111-1111-1111-111111111111",
		Stake:      stake,
		Odds:       1.9,
		Status:     status,
		PlacedAt:   baseDay.AddDate(0, 0, day),
	}
}

func amount(v float64) *float64 { return &v }

func withResult(b bet.Record, v float64) bet.Record {
	b.ResultAmount = amount(v)
	return b
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestEquityCurveRunningTotals(t *testing.T) {
	bets := []bet.Record{
		withResult(mkBet(0, 10, bet.StatusWon), 9),
		withResult(mkBet(1, 10, bet.StatusLost), -10),
		withResult(mkBet(2, 20, bet.StatusWon), 15),
	}

	points := EquityCurve(bets)
	if len(points) != len(bets) {
		t.Fatalf("len = %d, want %d", len(points), len(bets))
	}

	wantProfit := []float64{9, -1, 14}
	for i, p := range points {
		if !almostEqual(p.Profit, wantProfit[i]) {
			t.Errorf("points[%d].Profit = %v, want %v", i, p.Profit, wantProfit[i])
		}
	}

	// ROI final: 14 / 40 * 100
	if !almostEqual(points[2].ROI, 35) {
		t.Errorf("final ROI = %v, want 35", points[2].ROI)
	}
}

func TestEquityCurveUnsortedInputMatchesSorted(t *testing.T) {
	sorted := []bet.Record{
		withResult(mkBet(0, 10, bet.StatusWon), 5),
		withResult(mkBet(1, 10, bet.StatusLost), -10),
		withResult(mkBet(2, 10, bet.StatusWon), 8),
	}
	shuffled := []bet.Record{sorted[2], sorted[0], sorted[1]}

	a := EquityCurve(sorted)
	b := EquityCurve(shuffled)
	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].Date.Equal(b[i].Date) || !almostEqual(a[i].Profit, b[i].Profit) || !almostEqual(a[i].ROI, b[i].ROI) {
			t.Errorf("points[%d] differ: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestEquityCurveZeroStake(t *testing.T) {
	bets := []bet.Record{withResult(mkBet(0, 0, bet.StatusWon), 5)}
	points := EquityCurve(bets)
	if points[0].ROI != 0 {
		t.Errorf("ROI with zero running stake = %v, want 0", points[0].ROI)
	}
}

func TestEquityCurveUnsettledCountsAsZero(t *testing.T) {
	bets := []bet.Record{
		mkBet(0, 10, bet.StatusPending),
		withResult(mkBet(1, 10, bet.StatusWon), 9),
	}
	points := EquityCurve(bets)
	if !almostEqual(points[0].Profit, 0) {
		t.Errorf("unsettled profit = %v, want 0", points[0].Profit)
	}
	if !almostEqual(points[1].Profit, 9) {
		t.Errorf("final profit = %v, want 9", points[1].Profit)
	}
}

func TestEquityCurveEmpty(t *testing.T) {
	if points := EquityCurve(nil); len(points) != 0 {
		t.Errorf("expected empty curve, got %d points", len(points))
	}
}

func TestSummarizeTotals(t *testing.T) {
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	bets := []bet.Record{
		withResult(mkBet(0, 10, bet.StatusWon), 9),
		mkBet(1, 10, bet.StatusPending),
	}
	bets[0].UpdatedAt = now.Add(-time.Hour)
	bets[1].UpdatedAt = now

	totals := Summarize(bets)
	if totals.TotalBets != 2 {
		t.Errorf("TotalBets = %d", totals.TotalBets)
	}
	if !almostEqual(totals.Profit, 9) {
		t.Errorf("Profit = %v", totals.Profit)
	}
	if !almostEqual(totals.ROI, 45) {
		t.Errorf("ROI = %v, want 45", totals.ROI)
	}
	if totals.Pending != 1 {
		t.Errorf("Pending = %d", totals.Pending)
	}
	if totals.LastUpdate == nil || !totals.LastUpdate.Equal(now) {
		t.Errorf("LastUpdate = %v, want %v", totals.LastUpdate, now)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	totals := Summarize(nil)
	if totals.TotalBets != 0 || totals.LastUpdate != nil {
		t.Errorf("unexpected totals for empty input: %+v", totals)
	}
}

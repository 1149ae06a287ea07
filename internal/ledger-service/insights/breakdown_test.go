package insights

import (
	"testing"
	"time"

	"github.com/radieske/bet-ledger-service/internal/ledger-service/bet"
)

func withBookmaker(b bet.Record, id string) bet.Record {
	b.BookmakerID = &id
	return b
}

func TestBreakdownWinRateAndOrdering(t *testing.T) {
	hot := "22222222-2222-2222-2222-222222222222"
	cold := "33333333-3333-3333-3333-333333333333"
	bets := []bet.Record{
		withBookmaker(withResult(mkBet(0, 10, bet.StatusWon), 9), hot),
		withBookmaker(withResult(mkBet(1, 10, bet.StatusWon), 12), hot),
		withBookmaker(withResult(mkBet(2, 10, bet.StatusLost), -10), cold),
	}

	entries := Breakdown(bets, DimensionBookmaker)
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}

	// ordenado por lucro decrescente
	if entries[0].Key != hot || entries[1].Key != cold {
		t.Errorf("order = %q,%q", entries[0].Key, entries[1].Key)
	}
	if entries[0].WinRate != 100 {
		t.Errorf("win rate for all-won group = %v, want 100", entries[0].WinRate)
	}
	if entries[1].WinRate != 0 {
		t.Errorf("win rate for all-lost group = %v, want 0", entries[1].WinRate)
	}
	if entries[0].Count != 2 || !almostEqual(entries[0].Profit, 21) || !almostEqual(entries[0].Stake, 20) {
		t.Errorf("hot group = %+v", entries[0])
	}
}

func TestBreakdownUnassignedBucket(t *testing.T) {
	bets := []bet.Record{
		withResult(mkBet(0, 10, bet.StatusLost), -10), // sem bookmaker
	}
	entries := Breakdown(bets, DimensionBookmaker)
	if len(entries) != 1 {
		t.Fatalf("len = %d, want 1", len(entries))
	}
	if entries[0].Key != "unassigned" || entries[0].Label != "Unassigned" {
		t.Errorf("entry = %+v", entries[0])
	}
}

func TestBreakdownLabelTruncation(t *testing.T) {
	bets := []bet.Record{withResult(mkBet(0, 10, bet.StatusWon), 5)}
	entries := Breakdown(bets, DimensionBankroll)
	if entries[0].Label != "111111…" {
		t.Errorf("label = %q, want truncated UUID", entries[0].Label)
	}
}

func TestBreakdownEmpty(t *testing.T) {
	if entries := Breakdown(nil, DimensionBankroll); len(entries) != 0 {
		t.Errorf("expected empty breakdown, got %d entries", len(entries))
	}
}

func TestParseDimension(t *testing.T) {
	for raw, want := range map[string]Dimension{
		"bankroll":     DimensionBankroll,
		"bankroll_id":  DimensionBankroll,
		"bookmaker":    DimensionBookmaker,
		"bookmaker_id": DimensionBookmaker,
		"event":        DimensionEvent,
		"event_id":     DimensionEvent,
	} {
		got, err := ParseDimension(raw)
		if err != nil || got != want {
			t.Errorf("ParseDimension(%q) = %q, %v", raw, got, err)
		}
	}
	if _, err := ParseDimension("sport"); err == nil {
		t.Error("expected error for unknown dimension")
	}
}

func TestSummarizeByWeekMondayStart(t *testing.T) {
	// quarta 2024-01-03 e quinta 2024-01-04 caem na semana de segunda 2024-01-01;
	// 2024-01-10 cai na semana seguinte
	bets := []bet.Record{
		withResult(mkBet(2, 10, bet.StatusWon), 5),  // 2024-01-03
		withResult(mkBet(3, 10, bet.StatusLost), -10), // 2024-01-04
		withResult(mkBet(9, 10, bet.StatusWon), 8),  // 2024-01-10
	}

	summary := SummarizeByPeriod(bets, GroupWeek)
	if len(summary) != 2 {
		t.Fatalf("len = %d, want 2", len(summary))
	}

	// mais recente primeiro
	week2 := "w-" + time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC).Format(time.RFC3339)
	week1 := "w-" + time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Format(time.RFC3339)
	if summary[0].Key != week2 || summary[1].Key != week1 {
		t.Errorf("keys = %q,%q", summary[0].Key, summary[1].Key)
	}
	if summary[1].Count != 2 {
		t.Errorf("week1 count = %d, want 2", summary[1].Count)
	}
	if !almostEqual(summary[1].Profit, -5) {
		t.Errorf("week1 profit = %v, want -5", summary[1].Profit)
	}
	if !almostEqual(summary[1].ROI, -25) {
		t.Errorf("week1 roi = %v, want -25", summary[1].ROI)
	}
}

func TestSummarizeByMonthKeepsFiveMostRecent(t *testing.T) {
	var bets []bet.Record
	for m := 0; m < 7; m++ {
		b := withResult(mkBet(0, 10, bet.StatusWon), 1)
		b.PlacedAt = time.Date(2024, time.Month(1+m), 15, 0, 0, 0, 0, time.UTC)
		bets = append(bets, b)
	}

	summary := SummarizeByPeriod(bets, GroupMonth)
	if len(summary) != 5 {
		t.Fatalf("len = %d, want 5", len(summary))
	}
	if summary[0].Label != "July 2024" {
		t.Errorf("most recent = %q, want July 2024", summary[0].Label)
	}
	if summary[4].Label != "March 2024" {
		t.Errorf("oldest kept = %q, want March 2024", summary[4].Label)
	}
}

func TestSummarizeByQuarterLabels(t *testing.T) {
	b := withResult(mkBet(0, 10, bet.StatusWon), 1)
	b.PlacedAt = time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	summary := SummarizeByPeriod([]bet.Record{b}, GroupQuarter)
	if len(summary) != 1 {
		t.Fatalf("len = %d", len(summary))
	}
	if summary[0].Label != "Q2 2024" {
		t.Errorf("label = %q, want Q2 2024", summary[0].Label)
	}
}

func TestSummarizeByPeriodEmpty(t *testing.T) {
	if summary := SummarizeByPeriod(nil, GroupWeek); len(summary) != 0 {
		t.Errorf("expected empty summary, got %d", len(summary))
	}
}

func TestParseGrouping(t *testing.T) {
	for _, raw := range []string{"week", "month", "quarter"} {
		if _, err := ParseGrouping(raw); err != nil {
			t.Errorf("ParseGrouping(%q) returned error: %v", raw, err)
		}
	}
	if _, err := ParseGrouping("year"); err == nil {
		t.Error("expected error for unsupported grouping")
	}
}

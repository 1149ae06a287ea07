package insights

import (
	"strings"
	"testing"

	"github.com/radieske/bet-ledger-service/internal/ledger-service/bet"
)

func withTags(b bet.Record, tags ...string) bet.Record {
	b.Tags = tags
	return b
}

func TestGenerateEmptyShortCircuits(t *testing.T) {
	out := Generate(nil)
	if len(out) != 1 {
		t.Fatalf("len = %d, want exactly 1", len(out))
	}
	if out[0].Tone != ToneInfo {
		t.Errorf("tone = %q, want info", out[0].Tone)
	}
	if !strings.Contains(out[0].Message, "first bets") {
		t.Errorf("message = %q", out[0].Message)
	}
}

func TestGeneratePositiveROI(t *testing.T) {
	// 10 de lucro sobre 100 de stake = 10% >= 8%
	bets := []bet.Record{withResult(mkBet(0, 100, bet.StatusWon), 10)}
	out := Generate(bets)
	if out[0].Tone != TonePositive {
		t.Fatalf("first insight tone = %q, want positive", out[0].Tone)
	}
	if !strings.Contains(out[0].Message, "10.00%") {
		t.Errorf("message = %q", out[0].Message)
	}
}

func TestGenerateNegativeROI(t *testing.T) {
	bets := []bet.Record{withResult(mkBet(0, 100, bet.StatusLost), -10)}
	out := Generate(bets)
	if out[0].Tone != ToneWarning {
		t.Fatalf("first insight tone = %q, want warning", out[0].Tone)
	}
	if !strings.Contains(out[0].Message, "-10.00%") {
		t.Errorf("message = %q", out[0].Message)
	}
}

func TestGeneratePendingCount(t *testing.T) {
	var bets []bet.Record
	for i := 0; i < 5; i++ {
		bets = append(bets, mkBet(i, 10, bet.StatusPending))
	}

	out := Generate(bets)
	found := false
	for _, in := range out {
		if in.Tone == ToneInfo && strings.Contains(in.Message, "5 pending") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected pending insight, got %+v", out)
	}
}

func TestGenerateLosingStreak(t *testing.T) {
	// won zera a contagem; pending não conta nem zera
	bets := []bet.Record{
		mkBet(0, 10, bet.StatusWon),
		mkBet(1, 10, bet.StatusLost),
		mkBet(2, 10, bet.StatusVoid),
		mkBet(3, 10, bet.StatusPending),
		mkBet(4, 10, bet.StatusCashedOut),
		mkBet(5, 10, bet.StatusWon),
	}

	out := Generate(bets)
	found := false
	for _, in := range out {
		if in.Tone == ToneWarning && strings.Contains(in.Message, "streak of 3") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected losing streak insight, got %+v", out)
	}
}

func TestGenerateStreakResetByWin(t *testing.T) {
	bets := []bet.Record{
		mkBet(0, 10, bet.StatusLost),
		mkBet(1, 10, bet.StatusLost),
		mkBet(2, 10, bet.StatusWon),
		mkBet(3, 10, bet.StatusLost),
	}
	for _, in := range Generate(bets) {
		if strings.Contains(in.Message, "streak") {
			t.Errorf("no streak insight expected below threshold, got %q", in.Message)
		}
	}
}

func TestGenerateTopTag(t *testing.T) {
	bets := []bet.Record{
		withTags(withResult(mkBet(0, 10, bet.StatusWon), 10), "value"),
		withTags(withResult(mkBet(1, 10, bet.StatusLost), -10), "chase"),
	}

	out := Generate(bets)
	found := false
	for _, in := range out {
		if in.Tone == TonePositive && strings.Contains(in.Message, `"value"`) &&
			strings.Contains(in.Message, "100.0%") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected top tag insight, got %+v", out)
	}
}

func TestGenerateTopTagIgnoresZeroStake(t *testing.T) {
	bets := []bet.Record{
		withTags(withResult(mkBet(0, 0, bet.StatusWon), 5), "freebet"),
		withResult(mkBet(1, 10, bet.StatusWon), 2),
	}
	for _, in := range Generate(bets) {
		if strings.Contains(in.Message, "freebet") {
			t.Errorf("zero-stake tag must not lead: %q", in.Message)
		}
	}
}

func TestGenerateFallback(t *testing.T) {
	// ROI entre -5 e 8, sem pendências, sem sequência, sem tags
	bets := []bet.Record{withResult(mkBet(0, 100, bet.StatusWon), 1)}
	out := Generate(bets)
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	if out[0].Tone != ToneInfo || !strings.Contains(out[0].Message, "No notable alerts") {
		t.Errorf("fallback = %+v", out[0])
	}
}

func TestGenerateCapsAtFour(t *testing.T) {
	// dispara ROI negativo + pendências + sequência + tag líder
	var bets []bet.Record
	for i := 0; i < 5; i++ {
		bets = append(bets, mkBet(i, 10, bet.StatusPending))
	}
	bets = append(bets,
		withTags(withResult(mkBet(5, 100, bet.StatusLost), -50), "chase"),
		withResult(mkBet(6, 100, bet.StatusLost), -10),
		withResult(mkBet(7, 100, bet.StatusLost), -10),
	)

	out := Generate(bets)
	if len(out) > 4 {
		t.Fatalf("len = %d, want at most 4", len(out))
	}
	if len(out) != 4 {
		t.Errorf("expected all four rules to fire, got %+v", out)
	}
}

package insights

import (
	"time"

	"github.com/radieske/bet-ledger-service/internal/ledger-service/bet"
)

// Totals são os cartões de cabeçalho do dashboard
type Totals struct {
	TotalBets  int        `json:"total_bets"`
	Profit     float64    `json:"profit"`
	ROI        float64    `json:"roi"`
	Pending    int        `json:"pending"`
	LastUpdate *time.Time `json:"last_update"`
}

// Summarize calcula os agregados globais do snapshot de apostas
func Summarize(bets []bet.Record) Totals {
	if len(bets) == 0 {
		return Totals{}
	}

	var totalStake, profit float64
	pending := 0
	var lastUpdate time.Time
	for _, b := range bets {
		totalStake += b.Stake
		profit += b.Profit()
		if b.Status == bet.StatusPending {
			pending++
		}
		if b.UpdatedAt.After(lastUpdate) {
			lastUpdate = b.UpdatedAt
		}
	}

	t := Totals{
		TotalBets: len(bets),
		Profit:    profit,
		ROI:       roi(profit, totalStake),
		Pending:   pending,
	}
	if !lastUpdate.IsZero() {
		t.LastUpdate = &lastUpdate
	}
	return t
}

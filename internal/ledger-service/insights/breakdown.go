package insights

import (
	"fmt"
	"sort"

	"github.com/radieske/bet-ledger-service/internal/ledger-service/bet"
)

// Dimension é o campo categórico usado no breakdown
type Dimension string

const (
	DimensionBankroll  Dimension = "bankroll_id"
	DimensionBookmaker Dimension = "bookmaker_id"
	DimensionEvent     Dimension = "event_id"
)

// ParseDimension aceita a forma curta da query string ("bankroll") ou o nome do campo
func ParseDimension(raw string) (Dimension, error) {
	switch raw {
	case "bankroll", string(DimensionBankroll):
		return DimensionBankroll, nil
	case "bookmaker", string(DimensionBookmaker):
		return DimensionBookmaker, nil
	case "event", string(DimensionEvent):
		return DimensionEvent, nil
	}
	return "", fmt.Errorf("invalid dimension: %s", raw)
}

// unassignedKey agrupa apostas sem valor na dimensão escolhida
const unassignedKey = "unassigned"

// BreakdownEntry é um grupo do breakdown com lucro, stake e taxa de acerto
type BreakdownEntry struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Profit  float64 `json:"profit"`
	Stake   float64 `json:"stake"`
	WinRate float64 `json:"winRate"`
}

// Breakdown agrupa as apostas pela dimensão e ordena por lucro decrescente.
// Grupos sem valor caem no bucket sentinela "unassigned"; grupos sem apostas não aparecem.
func Breakdown(bets []bet.Record, dim Dimension) []BreakdownEntry {
	if len(bets) == 0 {
		return nil
	}

	type group struct {
		entry BreakdownEntry
		wins  int
	}
	groups := make(map[string]*group)
	var order []string

	for _, b := range bets {
		key := dimensionValue(b, dim)
		g, ok := groups[key]
		if !ok {
			g = &group{entry: BreakdownEntry{Key: key, Label: groupLabel(key)}}
			groups[key] = g
			order = append(order, key)
		}
		g.entry.Count++
		g.entry.Profit += b.Profit()
		g.entry.Stake += b.Stake
		if b.Status == bet.StatusWon {
			g.wins++
		}
	}

	out := make([]BreakdownEntry, 0, len(order))
	for _, key := range order {
		g := groups[key]
		g.entry.WinRate = float64(g.wins) / float64(g.entry.Count) * 100
		out = append(out, g.entry)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Profit > out[j].Profit
	})
	return out
}

// dimensionValue extrai o valor do campo; nil/vazio cai no sentinela
func dimensionValue(b bet.Record, dim Dimension) string {
	var v *string
	switch dim {
	case DimensionBankroll:
		v = &b.BankrollID
	case DimensionBookmaker:
		v = b.BookmakerID
	case DimensionEvent:
		v = b.EventID
	}
	if v == nil || *v == "" {
		return unassignedKey
	}
	return *v
}

// groupLabel encurta UUIDs longos pra exibição
func groupLabel(key string) string {
	if key == unassignedKey {
		return "Unassigned"
	}
	if len(key) <= 10 {
		return key
	}
	return key[:6] + "…"
}

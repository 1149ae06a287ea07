package insights

import (
	"sort"
	"time"

	"github.com/radieske/bet-ledger-service/internal/ledger-service/bet"
)

// EquityPoint é um ponto da curva de equity (lucro acumulado e ROI corrente)
type EquityPoint struct {
	Date   time.Time `json:"date"`
	Profit float64   `json:"profit"`
	ROI    float64   `json:"roi"`
}

// EquityCurve ordena as apostas por placed_at e acumula lucro e ROI.
// Função pura: não altera o slice de entrada; saída tem o mesmo tamanho da entrada.
func EquityCurve(bets []bet.Record) []EquityPoint {
	if len(bets) == 0 {
		return nil
	}

	sorted := sortByPlacedAt(bets)

	var runningProfit, runningStake float64
	points := make([]EquityPoint, 0, len(sorted))
	for _, b := range sorted {
		runningProfit += b.Profit()
		runningStake += b.Stake
		points = append(points, EquityPoint{
			Date:   b.PlacedAt,
			Profit: runningProfit,
			ROI:    roi(runningProfit, runningStake),
		})
	}
	return points
}

// sortByPlacedAt devolve uma cópia ordenada cronologicamente
func sortByPlacedAt(bets []bet.Record) []bet.Record {
	sorted := make([]bet.Record, len(bets))
	copy(sorted, bets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PlacedAt.Before(sorted[j].PlacedAt)
	})
	return sorted
}

// roi = lucro/stake em %; 0 quando não há stake
func roi(profit, stake float64) float64 {
	if stake == 0 {
		return 0
	}
	return profit / stake * 100
}

package insights

import (
	"fmt"

	"github.com/radieske/bet-ledger-service/internal/ledger-service/bet"
)

// Tone classifica um insight para o dashboard
type Tone string

const (
	TonePositive Tone = "positive"
	ToneWarning  Tone = "warning"
	ToneInfo     Tone = "info"
)

// Insight é uma mensagem heurística derivada do histórico de apostas
type Insight struct {
	Tone    Tone   `json:"tone"`
	Message string `json:"message"`
}

// statuses que estendem uma sequência negativa; "won" zera, o resto não conta
var lossStatuses = map[bet.Status]bool{
	bet.StatusLost:      true,
	bet.StatusVoid:      true,
	bet.StatusCashedOut: true,
	bet.StatusCancelled: true,
}

// Generate roda as heurísticas em ordem fixa e devolve no máximo 4 insights.
// Lista vazia curto-circuita para uma única mensagem inicial.
func Generate(bets []bet.Record) []Insight {
	if len(bets) == 0 {
		return []Insight{{Tone: ToneInfo, Message: "Add your first bets to generate insights."}}
	}

	var out []Insight

	var totalStake, totalProfit float64
	pending := 0
	for _, b := range bets {
		totalStake += b.Stake
		totalProfit += b.Profit()
		if b.Status == bet.StatusPending {
			pending++
		}
	}
	overallROI := roi(totalProfit, totalStake)

	if overallROI >= 8 {
		out = append(out, Insight{
			Tone:    TonePositive,
			Message: fmt.Sprintf("Solid ROI (%.2f%%). Keep the current strategy.", overallROI),
		})
	} else if overallROI <= -5 {
		out = append(out, Insight{
			Tone:    ToneWarning,
			Message: fmt.Sprintf("Negative ROI (%.2f%%). Review stakes and markets.", overallROI),
		})
	}

	if pending >= 5 {
		out = append(out, Insight{
			Tone:    ToneInfo,
			Message: fmt.Sprintf("%d pending bets. Consider settling results or closing positions.", pending),
		})
	}

	if streak := longestLosingStreak(bets); streak >= 3 {
		out = append(out, Insight{
			Tone:    ToneWarning,
			Message: fmt.Sprintf("Losing streak of %d bets. Consider taking a break.", streak),
		})
	}

	if tag, tagROI, ok := topTag(bets); ok {
		out = append(out, Insight{
			Tone:    TonePositive,
			Message: fmt.Sprintf("Tag %q leads with ROI %.1f%%.", tag, tagROI),
		})
	}

	if len(out) == 0 {
		out = append(out, Insight{
			Tone:    ToneInfo,
			Message: "No notable alerts. Keep logging bets to unlock more insights.",
		})
	}

	if len(out) > 4 {
		out = out[:4]
	}
	return out
}

// longestLosingStreak conta a maior sequência cronológica de apostas perdidas
func longestLosingStreak(bets []bet.Record) int {
	sorted := sortByPlacedAt(bets)
	current, longest := 0, 0
	for _, b := range sorted {
		switch {
		case lossStatuses[b.Status]:
			current++
			if current > longest {
				longest = current
			}
		case b.Status == bet.StatusWon:
			current = 0
		}
	}
	return longest
}

// topTag acha a tag de maior ROI entre as que têm stake acumulado não nulo.
// Empates ficam com a tag vista primeiro, pra manter a saída determinística.
func topTag(bets []bet.Record) (string, float64, bool) {
	type tagStat struct{ profit, stake float64 }
	stats := make(map[string]*tagStat)
	var order []string

	for _, b := range bets {
		for _, tag := range b.Tags {
			st, ok := stats[tag]
			if !ok {
				st = &tagStat{}
				stats[tag] = st
				order = append(order, tag)
			}
			st.profit += b.Profit()
			st.stake += b.Stake
		}
	}

	var (
		bestTag string
		bestROI float64
		found   bool
	)
	for _, tag := range order {
		st := stats[tag]
		if st.stake == 0 {
			continue
		}
		r := roi(st.profit, st.stake)
		if !found || r > bestROI {
			bestTag, bestROI, found = tag, r, true
		}
	}
	return bestTag, bestROI, found
}

package insights

import (
	"fmt"
	"sort"
	"time"

	"github.com/radieske/bet-ledger-service/internal/ledger-service/bet"
)

// Grouping é a granularidade do resumo por período
type Grouping string

const (
	GroupWeek    Grouping = "week"
	GroupMonth   Grouping = "month"
	GroupQuarter Grouping = "quarter"
)

// ParseGrouping valida a granularidade vinda da query string
func ParseGrouping(raw string) (Grouping, error) {
	switch Grouping(raw) {
	case GroupWeek, GroupMonth, GroupQuarter:
		return Grouping(raw), nil
	}
	return "", fmt.Errorf("invalid grouping: %s", raw)
}

// PeriodSummary é um bucket de período com contagem, lucro e ROI
type PeriodSummary struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Count  int     `json:"count"`
	Profit float64 `json:"profit"`
	ROI    float64 `json:"roi"`
}

type periodBucket struct {
	key    string
	label  string
	start  time.Time
	count  int
	profit float64
	stake  float64
}

// SummarizeByPeriod agrupa por semana (segunda-feira), mês ou trimestre de placed_at
// e devolve os 5 buckets mais recentes, por data de início decrescente
func SummarizeByPeriod(bets []bet.Record, grouping Grouping) []PeriodSummary {
	if len(bets) == 0 {
		return nil
	}

	buckets := make(map[string]*periodBucket)
	for _, b := range bets {
		key, label, start := periodOf(b.PlacedAt, grouping)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &periodBucket{key: key, label: label, start: start}
			buckets[key] = bucket
		}
		bucket.count++
		bucket.profit += b.Profit()
		bucket.stake += b.Stake
	}

	ordered := make([]*periodBucket, 0, len(buckets))
	for _, bucket := range buckets {
		ordered = append(ordered, bucket)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].start.After(ordered[j].start)
	})
	if len(ordered) > 5 {
		ordered = ordered[:5]
	}

	out := make([]PeriodSummary, 0, len(ordered))
	for _, bucket := range ordered {
		out = append(out, PeriodSummary{
			Key:    bucket.key,
			Label:  bucket.label,
			Count:  bucket.count,
			Profit: bucket.profit,
			ROI:    roi(bucket.profit, bucket.stake),
		})
	}
	return out
}

// periodOf resolve o bucket de uma data na granularidade pedida
func periodOf(t time.Time, grouping Grouping) (key, label string, start time.Time) {
	t = t.UTC()
	switch grouping {
	case GroupWeek:
		start = startOfWeek(t)
		end := start.AddDate(0, 0, 6)
		key = "w-" + start.Format(time.RFC3339)
		label = start.Format("02 Jan") + " - " + end.Format("02 Jan")
	case GroupMonth:
		start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		key = "m-" + start.Format(time.RFC3339)
		label = start.Format("January 2006")
	default: // quarter
		quarterMonth := time.Month((int(t.Month())-1)/3*3 + 1)
		start = time.Date(t.Year(), quarterMonth, 1, 0, 0, 0, 0, time.UTC)
		quarter := (int(start.Month())-1)/3 + 1
		key = "q-" + start.Format(time.RFC3339)
		label = fmt.Sprintf("Q%d %d", quarter, start.Year())
	}
	return key, label, start
}

// startOfWeek trunca para a segunda-feira 00:00 UTC da semana de t
func startOfWeek(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -daysSinceMonday)
}

package csvimport

import (
	"fmt"
	"strings"
	"time"

	"github.com/radieske/bet-ledger-service/internal/ledger-service/bet"
)

// headerAliases mapeia variantes aceitas de nome de coluna para o nome canônico
// (snake_case e camelCase convivem nos exports das casas)
var headerAliases = map[string]string{
	"id":                  "id",
	"bankroll_id":         "bankroll_id",
	"bankrollid":          "bankroll_id",
	"stake":               "stake",
	"odds":                "odds",
	"placed_at":           "placed_at",
	"placedat":            "placed_at",
	"status":              "status",
	"bet_type":            "bet_type",
	"bettype":             "bet_type",
	"wager_type":          "bet_type",
	"implied_probability": "implied_probability",
	"impliedprobability":  "implied_probability",
	"probability":         "implied_probability",
	"result_amount":       "result_amount",
	"resultamount":        "result_amount",
	"notes":               "notes",
	"bookmaker_id":        "bookmaker_id",
	"bookmakerid":         "bookmaker_id",
	"event_id":            "event_id",
	"eventid":             "event_id",
	"market_id":           "market_id",
	"marketid":            "market_id",
	"user_id":             "user_id",
	"userid":              "user_id",
	"tags":                "tags",
}

// canonicalHeader resolve o nome canônico de uma coluna; "" se desconhecida
func canonicalHeader(name string) string {
	return headerAliases[strings.ToLower(strings.TrimSpace(name))]
}

// row é uma linha do CSV já indexada por nome canônico de coluna
type row map[string]string

// blank reporta se todas as células são vazias/espaço (linha ignorada em silêncio)
func (r row) blank() bool {
	for _, v := range r {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// toPayload valida e normaliza uma linha, na ordem exigida pelo import:
// obrigatórios primeiro (bankroll, stake, odds, placed_at), depois opcionais
func toPayload(r row) (bet.InsertPayload, error) {
	var p bet.InsertPayload

	bankrollID, err := requireUUID(r["bankroll_id"], "bankroll_id")
	if err != nil {
		return p, err
	}
	stake, err := requireNumber(r["stake"], "stake")
	if err != nil {
		return p, err
	}
	odds, err := requireNumber(r["odds"], "odds")
	if err != nil {
		return p, err
	}
	placedAt, err := requireDate(r["placed_at"], "placed_at")
	if err != nil {
		return p, err
	}

	p = bet.InsertPayload{
		BankrollID: bankrollID,
		Stake:      stake,
		Odds:       odds,
		PlacedAt:   placedAt,
	}

	if raw := strings.TrimSpace(r["status"]); raw != "" {
		status, err := bet.ParseStatus(raw)
		if err != nil {
			return p, err
		}
		p.Status = status
	}

	if raw := strings.TrimSpace(r["bet_type"]); raw != "" {
		betType, err := bet.ParseType(raw)
		if err != nil {
			return p, err
		}
		p.BetType = betType
	}

	probability, err := optionalNumber(r["implied_probability"])
	if err != nil {
		return p, err
	}
	p.ImpliedProbability = probability

	resultAmount, err := optionalNumber(r["result_amount"])
	if err != nil {
		return p, err
	}
	p.ResultAmount = resultAmount

	p.Notes = strings.TrimSpace(r["notes"])

	for _, f := range [...]struct {
		field string
		dst   *string
	}{
		{"bookmaker_id", &p.BookmakerID},
		{"event_id", &p.EventID},
		{"market_id", &p.MarketID},
		{"user_id", &p.UserID},
		{"id", &p.ID},
	} {
		v, err := optionalUUID(r[f.field], f.field)
		if err != nil {
			return p, err
		}
		*f.dst = v
	}

	p.Tags = parseTags(r["tags"])

	return p, nil
}

// requireUUID exige um UUID canônico não vazio
func requireUUID(value, field string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if !bet.IsUUID(trimmed) {
		return "", fmt.Errorf("%s must be a valid UUID", field)
	}
	return trimmed, nil
}

// optionalUUID aceita vazio (campo omitido) ou um UUID canônico
func optionalUUID(value, field string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if !bet.IsUUID(trimmed) {
		return "", fmt.Errorf("%s must be a valid UUID", field)
	}
	return trimmed, nil
}

// requireNumber exige um número finito
func requireNumber(value, field string) (float64, error) {
	n, err := bet.ParseFinite(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s must be a numeric value", field)
	}
	return n, nil
}

// optionalNumber aceita célula vazia (nil) ou um número finito
func optionalNumber(value string) (*float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	n, err := bet.ParseFinite(trimmed)
	if err != nil {
		return nil, fmt.Errorf("Invalid numeric value: %s", value)
	}
	return &n, nil
}

// requireDate exige uma data válida e normaliza para ISO-8601 UTC
func requireDate(value, field string) (string, error) {
	t, err := bet.ParseTimestamp(strings.TrimSpace(value))
	if err != nil {
		return "", fmt.Errorf("%s must be a valid ISO date", field)
	}
	return t.Format(time.RFC3339), nil
}

// parseTags quebra a célula em tags por | ; ou , descartando tokens vazios
func parseTags(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	tokens := strings.FieldsFunc(value, func(c rune) bool {
		return c == '|' || c == ';' || c == ','
	})
	tags := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if t := strings.TrimSpace(tok); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

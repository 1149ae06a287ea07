package bet

import (
	"time"
)

// Record é a aposta persistida, como devolvida pelo storage
type Record struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"user_id"`
	BankrollID         string     `json:"bankroll_id"`
	EventID            *string    `json:"event_id"`
	MarketID           *string    `json:"market_id"`
	BookmakerID        *string    `json:"bookmaker_id"`
	Stake              float64    `json:"stake"`
	Odds               float64    `json:"odds"`
	ImpliedProbability *float64   `json:"implied_probability"`
	Status             Status     `json:"status"`
	BetType            Type       `json:"bet_type"`
	PlacedAt           time.Time  `json:"placed_at"`
	SettledAt          *time.Time `json:"settled_at"`
	ResultAmount       *float64   `json:"result_amount"`
	Notes              *string    `json:"notes"`
	Tags               []string   `json:"tags"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// Profit retorna o resultado da aposta, tratando não liquidada como 0
func (r Record) Profit() float64 {
	if r.ResultAmount == nil {
		return 0
	}
	return *r.ResultAmount
}

// InsertPayload é a forma validada de inserção de uma aposta
// Campos opcionais ausentes ficam de fora do INSERT (defaults do banco valem)
type InsertPayload struct {
	ID                 string   `json:"id,omitempty"`
	UserID             string   `json:"user_id,omitempty"`
	BankrollID         string   `json:"bankroll_id"`
	EventID            string   `json:"event_id,omitempty"`
	MarketID           string   `json:"market_id,omitempty"`
	BookmakerID        string   `json:"bookmaker_id,omitempty"`
	Stake              float64  `json:"stake"`
	Odds               float64  `json:"odds"`
	ImpliedProbability *float64 `json:"implied_probability,omitempty"`
	Status             Status   `json:"status,omitempty"`
	BetType            Type     `json:"bet_type,omitempty"`
	PlacedAt           string   `json:"placed_at"` // ISO-8601 UTC normalizado
	SettledAt          string   `json:"settled_at,omitempty"`
	ResultAmount       *float64 `json:"result_amount,omitempty"`
	Notes              string   `json:"notes,omitempty"`
	Tags               []string `json:"tags,omitempty"`
}

// UpdateFields é o update esparso de uma aposta (só campos presentes são alterados)
type UpdateFields struct {
	Stake        *float64
	Odds         *float64
	Status       *Status
	BetType      *Type
	SettledAt    *time.Time
	ResultAmount *float64
	Notes        *string
	Tags         []string
}

// Empty reporta se o update não altera nada
func (u UpdateFields) Empty() bool {
	return u.Stake == nil && u.Odds == nil && u.Status == nil && u.BetType == nil &&
		u.SettledAt == nil && u.ResultAmount == nil && u.Notes == nil && u.Tags == nil
}

// Filters restringe a listagem de apostas
type Filters struct {
	Status     Status
	From       *time.Time
	To         *time.Time
	Search     string // busca em notes (ILIKE)
	Tags       []string
	BankrollID string
}

// Bankroll é dado de referência somente leitura neste serviço
type Bankroll struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Currency        string  `json:"currency"`
	Balance         float64 `json:"balance"`
	TargetStakeUnit float64 `json:"target_stake_unit"`
}

// Bookmaker idem
type Bookmaker struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Country *string `json:"country"`
}

package dto

// CreateBetRequest é o payload do formulário de nova aposta
type CreateBetRequest struct {
	ID                 string   `json:"id,omitempty"`
	BankrollID         string   `json:"bankroll_id"`
	EventID            string   `json:"event_id,omitempty"`
	MarketID           string   `json:"market_id,omitempty"`
	BookmakerID        string   `json:"bookmaker_id,omitempty"`
	Stake              float64  `json:"stake"`
	Odds               float64  `json:"odds"`
	ImpliedProbability *float64 `json:"implied_probability,omitempty"`
	Status             string   `json:"status,omitempty"`
	BetType            string   `json:"bet_type,omitempty"`
	PlacedAt           string   `json:"placed_at"`
	SettledAt          string   `json:"settled_at,omitempty"`
	ResultAmount       *float64 `json:"result_amount,omitempty"`
	Notes              string   `json:"notes,omitempty"`
	Tags               []string `json:"tags,omitempty"`
}

// UpdateBetRequest é o update esparso; só campos presentes são aplicados
type UpdateBetRequest struct {
	Stake        *float64  `json:"stake,omitempty"`
	Odds         *float64  `json:"odds,omitempty"`
	Status       *string   `json:"status,omitempty"`
	BetType      *string   `json:"bet_type,omitempty"`
	SettledAt    *string   `json:"settled_at,omitempty"`
	ResultAmount *float64  `json:"result_amount,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	Tags         *[]string `json:"tags,omitempty"`
}

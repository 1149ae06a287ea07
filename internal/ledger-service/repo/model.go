package repo

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/radieske/bet-ledger-service/internal/ledger-service/bet"
)

// betColumns é a projeção padrão da tabela bets
const betColumns = `id, user_id, bankroll_id, event_id, market_id, bookmaker_id,
	stake, odds, implied_probability, status, bet_type, placed_at, settled_at,
	result_amount, notes, tags, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanBet materializa uma linha de bets em bet.Record
func scanBet(s rowScanner) (bet.Record, error) {
	var (
		r                                             bet.Record
		userID, eventID, marketID, bookmakerID, notes sql.NullString
		probability, resultAmount                     sql.NullFloat64
		settledAt                                     sql.NullTime
		status, betType                               string
		tags                                          pq.StringArray
	)

	err := s.Scan(
		&r.ID, &userID, &r.BankrollID, &eventID, &marketID, &bookmakerID,
		&r.Stake, &r.Odds, &probability, &status, &betType, &r.PlacedAt, &settledAt,
		&resultAmount, &notes, &tags, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return bet.Record{}, err
	}

	r.UserID = userID.String
	r.EventID = nullableString(eventID)
	r.MarketID = nullableString(marketID)
	r.BookmakerID = nullableString(bookmakerID)
	r.Notes = nullableString(notes)
	r.Status = bet.Status(status)
	r.BetType = bet.Type(betType)
	if probability.Valid {
		r.ImpliedProbability = &probability.Float64
	}
	if resultAmount.Valid {
		r.ResultAmount = &resultAmount.Float64
	}
	if settledAt.Valid {
		t := settledAt.Time
		r.SettledAt = &t
	}
	r.Tags = []string(tags)

	return r, nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

// nullStr converte "" em NULL para campos opcionais
func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

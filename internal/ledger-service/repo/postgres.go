package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/radieske/bet-ledger-service/internal/ledger-service/bet"
)

var ErrNotFound = errors.New("not found")

// Postgres implementa a persistência do ledger de apostas
type Postgres struct{ db *sql.DB }

// NewPostgres retorna uma instância do repositório
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// colunas por linha no INSERT em lote
const insertCols = 16

// InsertBets insere um lote de apostas num único INSERT multi-linha.
// Status e bet_type omitidos caem nos defaults (pending/single).
func (p *Postgres) InsertBets(ctx context.Context, batch []bet.InsertPayload) error {
	if len(batch) == 0 {
		return nil
	}

	tuples := make([]string, 0, len(batch))
	args := make([]any, 0, len(batch)*insertCols)
	for i, b := range batch {
		id := b.ID
		if id == "" {
			id = uuid.NewString()
		}
		n := i * insertCols
		tuples = append(tuples, fmt.Sprintf(
			"($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,COALESCE($%d,'pending'),COALESCE($%d,'single'),$%d,$%d,$%d,$%d,$%d)",
			n+1, n+2, n+3, n+4, n+5, n+6, n+7, n+8, n+9, n+10, n+11, n+12, n+13, n+14, n+15, n+16,
		))
		args = append(args,
			id, nullStr(b.UserID), b.BankrollID, nullStr(b.EventID), nullStr(b.MarketID),
			nullStr(b.BookmakerID), b.Stake, b.Odds, b.ImpliedProbability,
			nullStr(string(b.Status)), nullStr(string(b.BetType)), b.PlacedAt,
			nullStr(b.SettledAt), b.ResultAmount, nullStr(b.Notes), pq.Array(b.Tags),
		)
	}

	query := `
		INSERT INTO bets (id, user_id, bankroll_id, event_id, market_id, bookmaker_id,
			stake, odds, implied_probability, status, bet_type, placed_at, settled_at,
			result_amount, notes, tags)
		VALUES ` + strings.Join(tuples, ",")

	if _, err := p.db.ExecContext(ctx, query, args...); err != nil {
		return err
	}
	return nil
}

// Create insere uma aposta única e devolve o registro persistido
func (p *Postgres) Create(ctx context.Context, b bet.InsertPayload) (bet.Record, error) {
	id := b.ID
	if id == "" {
		id = uuid.NewString()
	}

	row := p.db.QueryRowContext(ctx, `
		INSERT INTO bets (id, user_id, bankroll_id, event_id, market_id, bookmaker_id,
			stake, odds, implied_probability, status, bet_type, placed_at, settled_at,
			result_amount, notes, tags)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,COALESCE($10,'pending'),COALESCE($11,'single'),$12,$13,$14,$15,$16)
		RETURNING `+betColumns,
		id, nullStr(b.UserID), b.BankrollID, nullStr(b.EventID), nullStr(b.MarketID),
		nullStr(b.BookmakerID), b.Stake, b.Odds, b.ImpliedProbability,
		nullStr(string(b.Status)), nullStr(string(b.BetType)), b.PlacedAt,
		nullStr(b.SettledAt), b.ResultAmount, nullStr(b.Notes), pq.Array(b.Tags),
	)
	return scanBet(row)
}

// List devolve as apostas filtradas, mais recentes primeiro
func (p *Postgres) List(ctx context.Context, f bet.Filters) ([]bet.Record, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Status != "" {
		add("status = $%d", string(f.Status))
	}
	if f.From != nil {
		add("placed_at >= $%d", *f.From)
	}
	if f.To != nil {
		add("placed_at <= $%d", *f.To)
	}
	if f.Search != "" {
		add("notes ILIKE $%d", "%"+f.Search+"%")
	}
	if len(f.Tags) > 0 {
		add("tags @> $%d", pq.Array(f.Tags))
	}
	if f.BankrollID != "" {
		add("bankroll_id = $%d", f.BankrollID)
	}

	query := `SELECT ` + betColumns + ` FROM bets`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY placed_at DESC"

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []bet.Record
	for rows.Next() {
		r, err := scanBet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Update aplica um update esparso e devolve o registro atualizado
func (p *Postgres) Update(ctx context.Context, id string, u bet.UpdateFields) (bet.Record, error) {
	var (
		sets []string
		args []any
	)
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if u.Stake != nil {
		set("stake", *u.Stake)
	}
	if u.Odds != nil {
		set("odds", *u.Odds)
	}
	if u.Status != nil {
		set("status", string(*u.Status))
	}
	if u.BetType != nil {
		set("bet_type", string(*u.BetType))
	}
	if u.SettledAt != nil {
		set("settled_at", *u.SettledAt)
	}
	if u.ResultAmount != nil {
		set("result_amount", *u.ResultAmount)
	}
	if u.Notes != nil {
		set("notes", nullStr(*u.Notes))
	}
	if u.Tags != nil {
		set("tags", pq.Array(u.Tags))
	}
	if len(sets) == 0 {
		return bet.Record{}, errors.New("empty update")
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	row := p.db.QueryRowContext(ctx,
		`UPDATE bets SET `+strings.Join(sets, ", ")+fmt.Sprintf(` WHERE id = $%d RETURNING `, len(args))+betColumns,
		args...,
	)
	r, err := scanBet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return bet.Record{}, ErrNotFound
	}
	return r, err
}

// Delete remove uma aposta por id
func (p *Postgres) Delete(ctx context.Context, id string) error {
	res, err := p.db.ExecContext(ctx, `DELETE FROM bets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Tags devolve as tags distintas usadas em todas as apostas, ordenadas
func (p *Postgres) Tags(ctx context.Context) ([]string, error) {
	rows, err := p.db.QueryContext(ctx, `SELECT tags FROM bets WHERE tags IS NOT NULL`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[string]bool)
	for rows.Next() {
		var tags pq.StringArray
		if err := rows.Scan(&tags); err != nil {
			return nil, err
		}
		for _, t := range tags {
			seen[t] = true
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out, nil
}

// Bankrolls lista os bankrolls do usuário (referência somente leitura aqui)
func (p *Postgres) Bankrolls(ctx context.Context) ([]bet.Bankroll, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT id, name, currency, balance, target_stake_unit
		FROM bankrolls ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []bet.Bankroll
	for rows.Next() {
		var b bet.Bankroll
		if err := rows.Scan(&b.ID, &b.Name, &b.Currency, &b.Balance, &b.TargetStakeUnit); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Bookmakers lista as casas cadastradas, por nome
func (p *Postgres) Bookmakers(ctx context.Context) ([]bet.Bookmaker, error) {
	rows, err := p.db.QueryContext(ctx, `SELECT id, name, country FROM bookmakers ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []bet.Bookmaker
	for rows.Next() {
		var (
			b       bet.Bookmaker
			country sql.NullString
		)
		if err := rows.Scan(&b.ID, &b.Name, &country); err != nil {
			return nil, err
		}
		b.Country = nullableString(country)
		out = append(out, b)
	}
	return out, rows.Err()
}

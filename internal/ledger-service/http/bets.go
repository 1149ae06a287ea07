package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/radieske/bet-ledger-service/internal/ledger-service/bet"
	"github.com/radieske/bet-ledger-service/internal/ledger-service/dto"
	"github.com/radieske/bet-ledger-service/internal/ledger-service/repo"
)

// bets despacha a coleção: GET lista filtrada, POST cria
func (s *Server) bets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listBets(w, r)
	case http.MethodPost:
		s.createBet(w, r)
	default:
		writeError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// listBets aplica os filtros da query string e devolve as apostas
func (s *Server) listBets(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilters(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	bets, err := s.repo.List(r.Context(), f)
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if bets == nil {
		bets = []bet.Record{}
	}
	writeJSON(w, http.StatusOK, bets)
}

// parseFilters valida status/datas/tags/bankroll vindos da query string
func parseFilters(r *http.Request) (bet.Filters, error) {
	var f bet.Filters
	q := r.URL.Query()

	if v := q.Get("status"); v != "" {
		status, err := bet.ParseStatus(v)
		if err != nil {
			return f, err
		}
		f.Status = status
	}
	if v := q.Get("from"); v != "" {
		t, err := bet.ParseTimestamp(v)
		if err != nil {
			return f, errors.New("from must be a valid ISO date")
		}
		f.From = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := bet.ParseTimestamp(v)
		if err != nil {
			return f, errors.New("to must be a valid ISO date")
		}
		f.To = &t
	}
	f.Search = strings.TrimSpace(q.Get("search"))
	if v := q.Get("tags"); v != "" {
		for _, tag := range strings.Split(v, ",") {
			if t := strings.TrimSpace(tag); t != "" {
				f.Tags = append(f.Tags, t)
			}
		}
	}
	if v := q.Get("bankrollId"); v != "" {
		if !bet.IsUUID(v) {
			return f, errors.New("bankrollId must be a valid UUID")
		}
		f.BankrollID = v
	}

	return f, nil
}

// createBet valida o formulário e insere uma aposta única
func (s *Server) createBet(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "bad json", http.StatusBadRequest)
		return
	}

	payload, err := toInsertPayload(req)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := s.repo.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// toInsertPayload reaproveita as mesmas regras de campo do import CSV
func toInsertPayload(req dto.CreateBetRequest) (bet.InsertPayload, error) {
	var p bet.InsertPayload

	if !bet.IsUUID(req.BankrollID) {
		return p, errors.New("bankroll_id must be a valid UUID")
	}
	if !bet.IsFinite(req.Stake) || req.Stake <= 0 {
		return p, errors.New("stake must be a positive number")
	}
	if !bet.IsFinite(req.Odds) || req.Odds <= 0 {
		return p, errors.New("odds must be a positive number")
	}
	placedAt, err := bet.ParseTimestamp(req.PlacedAt)
	if err != nil {
		return p, errors.New("placed_at must be a valid ISO date")
	}

	p = bet.InsertPayload{
		BankrollID: req.BankrollID,
		Stake:      req.Stake,
		Odds:       req.Odds,
		PlacedAt:   placedAt.Format(time.RFC3339),
	}

	if req.Status != "" {
		status, err := bet.ParseStatus(req.Status)
		if err != nil {
			return p, err
		}
		p.Status = status
	}
	if req.BetType != "" {
		betType, err := bet.ParseType(req.BetType)
		if err != nil {
			return p, err
		}
		p.BetType = betType
	}
	if req.SettledAt != "" {
		settledAt, err := bet.ParseTimestamp(req.SettledAt)
		if err != nil {
			return p, errors.New("settled_at must be a valid ISO date")
		}
		p.SettledAt = settledAt.Format(time.RFC3339)
	}

	for _, f := range [...]struct {
		field string
		value string
		dst   *string
	}{
		{"id", req.ID, &p.ID},
		{"event_id", req.EventID, &p.EventID},
		{"market_id", req.MarketID, &p.MarketID},
		{"bookmaker_id", req.BookmakerID, &p.BookmakerID},
	} {
		if f.value == "" {
			continue
		}
		if !bet.IsUUID(f.value) {
			return p, fmt.Errorf("%s must be a valid UUID", f.field)
		}
		*f.dst = f.value
	}

	p.ImpliedProbability = req.ImpliedProbability
	p.ResultAmount = req.ResultAmount
	p.Notes = strings.TrimSpace(req.Notes)
	for _, tag := range req.Tags {
		if t := strings.TrimSpace(tag); t != "" {
			p.Tags = append(p.Tags, t)
		}
	}

	return p, nil
}

// betByID despacha PATCH/DELETE em /bets/{id}
func (s *Server) betByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/bets/")
	if id == "" {
		writeError(w, "betId required", http.StatusBadRequest)
		return
	}
	if !bet.IsUUID(id) {
		writeError(w, "betId must be a valid UUID", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodPatch:
		s.updateBet(w, r, id)
	case http.MethodDelete:
		s.deleteBet(w, r, id)
	default:
		writeError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// updateBet aplica um update esparso
func (s *Server) updateBet(w http.ResponseWriter, r *http.Request, id string) {
	var req dto.UpdateBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "bad json", http.StatusBadRequest)
		return
	}

	fields, err := toUpdateFields(req)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if fields.Empty() {
		writeError(w, "no fields to update", http.StatusBadRequest)
		return
	}

	updated, err := s.repo.Update(r.Context(), id, fields)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, "bet not found", http.StatusNotFound)
			return
		}
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func toUpdateFields(req dto.UpdateBetRequest) (bet.UpdateFields, error) {
	var u bet.UpdateFields

	if req.Stake != nil {
		if !bet.IsFinite(*req.Stake) || *req.Stake <= 0 {
			return u, errors.New("stake must be a positive number")
		}
		u.Stake = req.Stake
	}
	if req.Odds != nil {
		if !bet.IsFinite(*req.Odds) || *req.Odds <= 0 {
			return u, errors.New("odds must be a positive number")
		}
		u.Odds = req.Odds
	}
	if req.Status != nil {
		status, err := bet.ParseStatus(*req.Status)
		if err != nil {
			return u, err
		}
		u.Status = &status
	}
	if req.BetType != nil {
		betType, err := bet.ParseType(*req.BetType)
		if err != nil {
			return u, err
		}
		u.BetType = &betType
	}
	if req.SettledAt != nil {
		t, err := bet.ParseTimestamp(*req.SettledAt)
		if err != nil {
			return u, errors.New("settled_at must be a valid ISO date")
		}
		u.SettledAt = &t
	}
	if req.ResultAmount != nil {
		if !bet.IsFinite(*req.ResultAmount) {
			return u, errors.New("result_amount must be a numeric value")
		}
		u.ResultAmount = req.ResultAmount
	}
	u.Notes = req.Notes
	if req.Tags != nil {
		tags := make([]string, 0, len(*req.Tags))
		for _, tag := range *req.Tags {
			if t := strings.TrimSpace(tag); t != "" {
				tags = append(tags, t)
			}
		}
		u.Tags = tags
	}

	return u, nil
}

// deleteBet remove a aposta por id
func (s *Server) deleteBet(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, "bet not found", http.StatusNotFound)
			return
		}
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"net/http"

	"github.com/radieske/bet-ledger-service/internal/ledger-service/bet"
	"github.com/radieske/bet-ledger-service/internal/ledger-service/insights"
)

// snapshot busca o recorte de apostas usado pelos painéis do dashboard
// Aceita bankrollId opcional; escreve a resposta de erro e retorna ok=false em falha
func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) ([]bet.Record, bool) {
	if r.Method != http.MethodGet {
		writeError(w, "method not allowed", http.StatusMethodNotAllowed)
		return nil, false
	}

	var f bet.Filters
	if v := r.URL.Query().Get("bankrollId"); v != "" {
		if !bet.IsUUID(v) {
			writeError(w, "bankrollId must be a valid UUID", http.StatusBadRequest)
			return nil, false
		}
		f.BankrollID = v
	}

	bets, err := s.repo.List(r.Context(), f)
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return bets, true
}

// dashboardSummary devolve os agregados globais (cartões do topo)
func (s *Server) dashboardSummary(w http.ResponseWriter, r *http.Request) {
	bets, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, insights.Summarize(bets))
}

// dashboardEquity devolve a curva de equity cronológica
func (s *Server) dashboardEquity(w http.ResponseWriter, r *http.Request) {
	bets, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	points := insights.EquityCurve(bets)
	if points == nil {
		points = []insights.EquityPoint{}
	}
	writeJSON(w, http.StatusOK, points)
}

// dashboardPeriods resume por semana/mês/trimestre (default: month)
func (s *Server) dashboardPeriods(w http.ResponseWriter, r *http.Request) {
	grouping := insights.GroupMonth
	if v := r.URL.Query().Get("grouping"); v != "" {
		g, err := insights.ParseGrouping(v)
		if err != nil {
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		grouping = g
	}

	bets, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	summary := insights.SummarizeByPeriod(bets, grouping)
	if summary == nil {
		summary = []insights.PeriodSummary{}
	}
	writeJSON(w, http.StatusOK, summary)
}

// dashboardBreakdown agrupa por bankroll/bookmaker/event (default: bankroll)
func (s *Server) dashboardBreakdown(w http.ResponseWriter, r *http.Request) {
	dimension := insights.DimensionBankroll
	if v := r.URL.Query().Get("dimension"); v != "" {
		d, err := insights.ParseDimension(v)
		if err != nil {
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		dimension = d
	}

	bets, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	entries := insights.Breakdown(bets, dimension)
	if entries == nil {
		entries = []insights.BreakdownEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// dashboardInsights devolve as heurísticas do snapshot atual
func (s *Server) dashboardInsights(w http.ResponseWriter, r *http.Request) {
	bets, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, insights.Generate(bets))
}

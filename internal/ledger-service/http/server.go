package http

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/radieske/bet-ledger-service/internal/ledger-service/bet"
	"github.com/radieske/bet-ledger-service/internal/ledger-service/csvimport"
	"github.com/radieske/bet-ledger-service/internal/ledger-service/dto"
	"github.com/radieske/bet-ledger-service/pkg/contracts/events"
)

// BetRepo define as operações de persistência usadas pelos handlers
type BetRepo interface {
	Create(ctx context.Context, b bet.InsertPayload) (bet.Record, error)
	List(ctx context.Context, f bet.Filters) ([]bet.Record, error)
	Update(ctx context.Context, id string, u bet.UpdateFields) (bet.Record, error)
	Delete(ctx context.Context, id string) error
	Tags(ctx context.Context) ([]string, error)
}

// RefData resolve dados de referência somente leitura
type RefData interface {
	Bankrolls(ctx context.Context) ([]bet.Bankroll, error)
	Bookmakers(ctx context.Context) ([]bet.Bookmaker, error)
}

// Publisher emite eventos pós-import; falha de publicação não falha a request
type Publisher interface {
	PublishBetsImported(ctx context.Context, e events.BetsImported) error
}

// Server expõe a API REST do ledger
type Server struct {
	log      *zap.Logger
	repo     BetRepo
	refdata  RefData
	importer *csvimport.Importer
	publ     Publisher
}

func NewServer(log *zap.Logger, repo BetRepo, rd RefData, im *csvimport.Importer, publ Publisher) *Server {
	return &Server{log: log, repo: repo, refdata: rd, importer: im, publ: publ}
}

// Router retorna o mux com todas as rotas da API
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/import", s.importCSV)   // POST multipart
	mux.HandleFunc("/bets", s.bets)          // GET lista filtrada, POST cria
	mux.HandleFunc("/bets/tags", s.tags)     // GET
	mux.HandleFunc("/bets/", s.betByID)      // PATCH/DELETE /bets/{id}
	mux.HandleFunc("/bankrolls", s.bankrolls)
	mux.HandleFunc("/bookmakers", s.bookmakers)
	mux.HandleFunc("/dashboard/summary", s.dashboardSummary)
	mux.HandleFunc("/dashboard/equity", s.dashboardEquity)
	mux.HandleFunc("/dashboard/periods", s.dashboardPeriods)
	mux.HandleFunc("/dashboard/breakdown", s.dashboardBreakdown)
	mux.HandleFunc("/dashboard/insights", s.dashboardInsights)
	return mux
}

// bankrolls lista os bankrolls via cache de referência
func (s *Server) bankrolls(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	out, err := s.refdata.Bankrolls(r.Context())
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// bookmakers idem, para as casas de aposta
func (s *Server) bookmakers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	out, err := s.refdata.Bookmakers(r.Context())
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// tags devolve as tags distintas já usadas
func (s *Server) tags(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	tags, err := s.repo.Tags(r.Context())
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dto.TagsResponse{Tags: tags})
}

// writeJSON serializa e envia resposta JSON
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError envia o corpo de erro padrão
func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, dto.ErrorResponse{Error: msg})
}

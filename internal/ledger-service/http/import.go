package http

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/radieske/bet-ledger-service/internal/ledger-service/csvimport"
	"github.com/radieske/bet-ledger-service/internal/ledger-service/dto"
	"github.com/radieske/bet-ledger-service/pkg/contracts/events"
)

const maxImportMemory = 32 << 20 // 32 MiB em memória antes de ir pra disco

// importCSV recebe o CSV por multipart, valida tudo e insere em lotes.
// Qualquer linha inválida rejeita a submissão inteira com diagnóstico por linha.
func (s *Server) importCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, "Only POST supported", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxImportMemory); err != nil {
		writeError(w, "Missing CSV file", http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, "Missing CSV file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	count, err := s.importer.Import(r.Context(), file)
	if err != nil {
		s.writeImportError(w, err)
		return
	}

	// evento pós-import é melhor esforço; nunca falha a resposta
	batchSize := s.importer.BatchSize()
	if err := s.publ.PublishBetsImported(r.Context(), events.BetsImported{
		Imported: count,
		Batches:  (count + batchSize - 1) / batchSize,
		Source:   "csv",
	}); err != nil {
		s.log.Warn("publish bets_imported", zap.Error(err))
	}

	s.log.Info("csv import done", zap.Int("imported", count))
	writeJSON(w, http.StatusOK, dto.ImportResponse{Imported: count})
}

// writeImportError mapeia os erros tipados do importer para o contrato HTTP
func (s *Server) writeImportError(w http.ResponseWriter, err error) {
	var (
		rowErrs   *csvimport.RowErrors
		insertErr *csvimport.InsertError
	)

	switch {
	case errors.Is(err, csvimport.ErrEmptyCSV),
		errors.Is(err, csvimport.ErrNoDataRows),
		errors.Is(err, csvimport.ErrNoValidRows):
		writeError(w, err.Error(), http.StatusBadRequest)

	case errors.As(err, &rowErrs):
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid CSV data",
			Details: rowErrs.Rows,
		})

	case errors.As(err, &insertErr):
		s.log.Error("csv import insert failed", zap.Error(insertErr.Err))
		resp := dto.ErrorResponse{Error: insertErr.Err.Error()}
		var pqErr *pq.Error
		if errors.As(insertErr.Err, &pqErr) {
			resp.Error = pqErr.Message
			if pqErr.Detail != "" {
				resp.Details = pqErr.Detail
			}
			resp.Hint = pqErr.Hint
		}
		writeJSON(w, http.StatusInternalServerError, resp)

	default:
		s.log.Error("csv import failed", zap.Error(err))
		writeError(w, err.Error(), http.StatusInternalServerError)
	}
}

package csvimport

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/radieske/bet-ledger-service/internal/ledger-service/bet"
)

// DefaultBatchSize é o tamanho de lote de INSERT quando não configurado
const DefaultBatchSize = 200

var (
	ErrEmptyCSV    = errors.New("Empty CSV")
	ErrNoDataRows  = errors.New("CSV without data rows")
	ErrNoValidRows = errors.New("No valid rows")
)

// RowError é um diagnóstico por linha (1-indexado, contando o cabeçalho)
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// RowErrors agrega todas as linhas rejeitadas de uma submissão
// Nenhuma linha é inserida enquanto houver pelo menos uma inválida
type RowErrors struct {
	Rows []RowError
}

func (e *RowErrors) Error() string {
	return fmt.Sprintf("invalid CSV data: %d row(s) rejected", len(e.Rows))
}

// InsertError embrulha a falha do storage durante um lote
// Lotes anteriores já inseridos não são desfeitos
type InsertError struct {
	Err error
}

func (e *InsertError) Error() string { return e.Err.Error() }
func (e *InsertError) Unwrap() error { return e.Err }

// BatchInserter é o contrato mínimo com o storage
type BatchInserter interface {
	InsertBets(ctx context.Context, batch []bet.InsertPayload) error
}

// Importer transforma CSV bruto em lotes de apostas válidas
// Valida tudo antes de inserir qualquer coisa (lote-ou-nada na validação)
type Importer struct {
	store     BatchInserter
	batchSize int
}

// NewImporter cria o importer; batchSize <= 0 cai no default
func NewImporter(store BatchInserter, batchSize int) *Importer {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Importer{store: store, batchSize: batchSize}
}

// BatchSize expõe o tamanho de lote efetivo
func (im *Importer) BatchSize() int { return im.batchSize }

// Import lê o CSV inteiro, valida linha a linha e insere em lotes sequenciais.
// Retorna o total importado ou um dos erros tipados do pacote.
func (im *Importer) Import(ctx context.Context, r io.Reader) (int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("read csv: %w", err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return 0, ErrEmptyCSV
	}

	reader := csv.NewReader(strings.NewReader(string(raw)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return 0, ErrEmptyCSV
	}

	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = canonicalHeader(name)
	}

	var (
		payloads []bet.InsertPayload
		rowErrs  []RowError
		dataRows int
	)

	for _, rec := range records[1:] {
		r := make(row, len(header))
		for i, cell := range rec {
			if i >= len(header) || header[i] == "" {
				continue
			}
			// primeira coluna com valor vence quando há apelidos duplicados
			if existing, ok := r[header[i]]; ok && strings.TrimSpace(existing) != "" {
				continue
			}
			r[header[i]] = cell
		}
		if r.blank() {
			continue
		}
		dataRows++

		payload, err := toPayload(r)
		if err != nil {
			// linha 1-indexada somando o cabeçalho
			rowErrs = append(rowErrs, RowError{Row: dataRows + 1, Message: err.Error()})
			continue
		}
		payloads = append(payloads, payload)
	}

	if dataRows == 0 {
		return 0, ErrNoDataRows
	}
	if len(rowErrs) > 0 {
		return 0, &RowErrors{Rows: rowErrs}
	}
	if len(payloads) == 0 {
		return 0, ErrNoValidRows
	}

	// lotes estritamente em ordem; primeiro lote com falha aborta a sequência
	for start := 0; start < len(payloads); start += im.batchSize {
		end := start + im.batchSize
		if end > len(payloads) {
			end = len(payloads)
		}
		if err := im.store.InsertBets(ctx, payloads[start:end]); err != nil {
			return 0, &InsertError{Err: err}
		}
	}

	return len(payloads), nil
}

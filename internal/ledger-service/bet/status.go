package bet

import (
	"fmt"
	"strings"
)

// Status é o estado de liquidação de uma aposta
type Status string

const (
	StatusPending   Status = "pending"
	StatusWon       Status = "won"
	StatusLost      Status = "lost"
	StatusVoid      Status = "void"
	StatusCashedOut Status = "cashed_out"
	StatusCancelled Status = "cancelled"
)

var allStatuses = map[Status]bool{
	StatusPending:   true,
	StatusWon:       true,
	StatusLost:      true,
	StatusVoid:      true,
	StatusCashedOut: true,
	StatusCancelled: true,
}

// ParseStatus normaliza e valida um status vindo de CSV ou formulário
// Aceita qualquer caixa; espaços e hífens viram underscore ("Cashed Out" -> cashed_out)
func ParseStatus(raw string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	s := Status(normalized)
	if !allStatuses[s] {
		return "", fmt.Errorf("Invalid status: %s", raw)
	}
	return s, nil
}

// Valid reporta se o status pertence ao conjunto fechado
func (s Status) Valid() bool { return allStatuses[s] }

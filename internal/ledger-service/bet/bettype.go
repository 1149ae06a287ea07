package bet

import (
	"fmt"
	"strings"
)

// Type é a modalidade da aposta
type Type string

const (
	TypeSingle Type = "single"
	TypeMulti  Type = "multi"
	TypeSystem Type = "system"
	TypeLive   Type = "live"
)

var allTypes = map[Type]bool{
	TypeSingle: true,
	TypeMulti:  true,
	TypeSystem: true,
	TypeLive:   true,
}

// ParseType valida a modalidade em caixa baixa
// "parlay" é sinônimo aceito de "multi"
func ParseType(raw string) (Type, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "parlay" {
		normalized = string(TypeMulti)
	}
	t := Type(normalized)
	if !allTypes[t] {
		return "", fmt.Errorf("Invalid wager_type: %s", raw)
	}
	return t, nil
}

// Valid reporta se a modalidade pertence ao conjunto fechado
func (t Type) Valid() bool { return allTypes[t] }

package bet

import (
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// IsUUID reporta se s está na forma canônica 8-4-4-4-12 (qualquer caixa)
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// layouts aceitos para datas vindas de CSV/formulário
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

var errBadTimestamp = errors.New("invalid timestamp")

// ParseTimestamp tenta os layouts conhecidos e devolve o instante em UTC
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errBadTimestamp
}

// ParseFinite converte string em número, rejeitando NaN e infinitos
func ParseFinite(s string) (float64, error) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, errors.New("not finite")
	}
	return n, nil
}

// IsFinite reporta se n é um número utilizável como stake/odds/resultado
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

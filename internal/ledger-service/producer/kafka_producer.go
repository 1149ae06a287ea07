package producer

import (
	"context"
	"encoding/json"
	"time"

	skafka "github.com/radieske/bet-ledger-service/internal/shared/kafka"
	"github.com/radieske/bet-ledger-service/pkg/contracts/events"
)

// KafkaPublisher publica eventos do ledger no Kafka
type KafkaPublisher struct {
	Writer *skafka.Writer
}

func NewKafkaPublisher(w *skafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: w}
}

// PublishBetsImported emite o evento de conclusão de import CSV
func (p *KafkaPublisher) PublishBetsImported(ctx context.Context, e events.BetsImported) error {
	e.TsUnixMs = time.Now().UnixMilli()
	b, _ := json.Marshal(e)
	return skafka.WriteJSON(ctx, p.Writer, e.Source, b)
}

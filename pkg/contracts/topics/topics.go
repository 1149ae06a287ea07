package topics

// Tópicos Kafka usados pelo ledger-service
const (
	// BetsImported é emitido após um import CSV concluir com sucesso
	BetsImported = "ledger.bets_imported"
)

package events

// BetsImported notifica consumidores (dashboard, notificações) que um import CSV terminou
type BetsImported struct {
	Imported int    `json:"imported"`
	Batches  int    `json:"batches"`
	Source   string `json:"source"` // ex: "csv"
	TsUnixMs int64  `json:"ts_unix_ms"`
}

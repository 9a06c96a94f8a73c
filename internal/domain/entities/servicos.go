package entities

import "time"

// Servico is a workshop service persisted in t_servicos (e.g. "Mecânico",
// "Elétrico").
//
// TempoEstimado is stored as a timestamp column in the legacy schema, so it
// maps to time.Time rather than a duration.
type Servico struct {
	ID            int64     `json:"idServico"`
	TipoServico   string    `json:"tipoServico"`
	Descricao     string    `json:"descricao"`
	ValorServico  float64   `json:"valorServico"`
	TempoEstimado time.Time `json:"tempoEstimado"`
	IDOrcamento   int64     `json:"idOrcamento"`
}

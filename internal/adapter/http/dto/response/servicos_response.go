package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type ServicoResponse struct {
	IDServico     int64     `json:"idServico"`
	TipoServico   string    `json:"tipoServico"`
	Descricao     string    `json:"descricao"`
	ValorServico  float64   `json:"valorServico"`
	TempoEstimado time.Time `json:"tempoEstimado"`
	IDOrcamento   int64     `json:"idOrcamento"`
}

func FromServico(s entities.Servico) ServicoResponse {
	return ServicoResponse{
		IDServico:     s.ID,
		TipoServico:   s.TipoServico,
		Descricao:     s.Descricao,
		ValorServico:  s.ValorServico,
		TempoEstimado: s.TempoEstimado,
		IDOrcamento:   s.IDOrcamento,
	}
}

func FromServicoList(list []entities.Servico) []ServicoResponse {
	out := make([]ServicoResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromServico(s))
	}
	return out
}

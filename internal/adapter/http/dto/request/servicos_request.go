package request

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type ServicoRequest struct {
	IDServico     int64     `json:"idServico"`
	TipoServico   string    `json:"tipoServico"`
	Descricao     string    `json:"descricao"`
	ValorServico  float64   `json:"valorServico"`
	TempoEstimado time.Time `json:"tempoEstimado"`
	IDOrcamento   int64     `json:"idOrcamento"`
}

func (r ServicoRequest) ToEntity() entities.Servico {
	return entities.Servico{
		ID:            r.IDServico,
		TipoServico:   r.TipoServico,
		Descricao:     r.Descricao,
		ValorServico:  r.ValorServico,
		TempoEstimado: r.TempoEstimado,
		IDOrcamento:   r.IDOrcamento,
	}
}

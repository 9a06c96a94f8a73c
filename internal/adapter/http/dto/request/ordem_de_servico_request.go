package request

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type OrdemDeServicoRequest struct {
	IDOs          int64      `json:"idOs"`
	Status        string     `json:"status"`
	IDOrcamento   int64      `json:"idOrcamento"`
	IDFuncionario int64      `json:"idFuncionario"`
	IDVeiculo     int64      `json:"idVeiculo"`
	DataInicio    time.Time  `json:"dataInicio"`
	DataFim       *time.Time `json:"dataFim"`
	HoraInicio    time.Time  `json:"horaInicio"`
	HoraFim       *time.Time `json:"horaFim"`
}

func (r OrdemDeServicoRequest) ToEntity() entities.OrdemDeServico {
	return entities.OrdemDeServico{
		ID:            r.IDOs,
		Status:        r.Status,
		IDOrcamento:   r.IDOrcamento,
		IDFuncionario: r.IDFuncionario,
		IDVeiculo:     r.IDVeiculo,
		DataInicio:    r.DataInicio,
		DataFim:       r.DataFim,
		HoraInicio:    r.HoraInicio,
		HoraFim:       r.HoraFim,
	}
}

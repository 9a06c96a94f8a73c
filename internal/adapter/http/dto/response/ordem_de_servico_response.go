package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type OrdemDeServicoResponse struct {
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

func FromOrdemDeServico(o entities.OrdemDeServico) OrdemDeServicoResponse {
	return OrdemDeServicoResponse{
		IDOs:          o.ID,
		Status:        o.Status,
		IDOrcamento:   o.IDOrcamento,
		IDFuncionario: o.IDFuncionario,
		IDVeiculo:     o.IDVeiculo,
		DataInicio:    o.DataInicio,
		DataFim:       o.DataFim,
		HoraInicio:    o.HoraInicio,
		HoraFim:       o.HoraFim,
	}
}

func FromOrdemDeServicoList(list []entities.OrdemDeServico) []OrdemDeServicoResponse {
	out := make([]OrdemDeServicoResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromOrdemDeServico(o))
	}
	return out
}

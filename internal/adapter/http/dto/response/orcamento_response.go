package response

import "oficina_xpto/internal/domain/entities"

type OrcamentoResponse struct {
	IDOrcamento    int64   `json:"idOrcamento"`
	ValorOrcamento float64 `json:"valorOrcamento"`
	Situacao       string  `json:"situacao"`
	IDVeiculo      int64   `json:"idVeiculo"`
	IDOficina      int64   `json:"idOficina"`
	IDServico      int64   `json:"idServico"`
	IDPeca         int64   `json:"idPeca"`
}

func FromOrcamento(o entities.Orcamento) OrcamentoResponse {
	return OrcamentoResponse{
		IDOrcamento:    o.ID,
		ValorOrcamento: o.ValorOrcamento,
		Situacao:       o.Situacao,
		IDVeiculo:      o.IDVeiculo,
		IDOficina:      o.IDOficina,
		IDServico:      o.IDServico,
		IDPeca:         o.IDPeca,
	}
}

func FromOrcamentoList(list []entities.Orcamento) []OrcamentoResponse {
	out := make([]OrcamentoResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromOrcamento(o))
	}
	return out
}

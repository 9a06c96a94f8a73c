package request

import "oficina_xpto/internal/domain/entities"

type OrcamentoRequest struct {
	IDOrcamento    int64   `json:"idOrcamento"`
	ValorOrcamento float64 `json:"valorOrcamento"`
	Situacao       string  `json:"situacao"`
	IDVeiculo      int64   `json:"idVeiculo"`
	IDOficina      int64   `json:"idOficina"`
	IDServico      int64   `json:"idServico"`
	IDPeca         int64   `json:"idPeca"`
}

func (r OrcamentoRequest) ToEntity() entities.Orcamento {
	return entities.Orcamento{
		ID:             r.IDOrcamento,
		ValorOrcamento: r.ValorOrcamento,
		Situacao:       r.Situacao,
		IDVeiculo:      r.IDVeiculo,
		IDOficina:      r.IDOficina,
		IDServico:      r.IDServico,
		IDPeca:         r.IDPeca,
	}
}

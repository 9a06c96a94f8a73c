package request

import "oficina_xpto/internal/domain/entities"

type FalhaRequest struct {
	IDFalha          int64  `json:"idFalha"`
	DescricaoFalha   string `json:"descricaoFalha"`
	DescricaoSolucao string `json:"descricaoSolucao"`
	IDOrcamento      int64  `json:"idOrcamento"`
	IDVeiculo        int64  `json:"idVeiculo"`
	Gravidade        string `json:"gravidade"`
}

func (r FalhaRequest) ToEntity() entities.Falha {
	return entities.Falha{
		ID:               r.IDFalha,
		DescricaoFalha:   r.DescricaoFalha,
		DescricaoSolucao: r.DescricaoSolucao,
		IDOrcamento:      r.IDOrcamento,
		IDVeiculo:        r.IDVeiculo,
		Gravidade:        r.Gravidade,
	}
}

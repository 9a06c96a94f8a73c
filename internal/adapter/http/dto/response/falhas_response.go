package response

import "oficina_xpto/internal/domain/entities"

type FalhaResponse struct {
	IDFalha          int64  `json:"idFalha"`
	DescricaoFalha   string `json:"descricaoFalha"`
	DescricaoSolucao string `json:"descricaoSolucao"`
	IDOrcamento      int64  `json:"idOrcamento"`
	IDVeiculo        int64  `json:"idVeiculo"`
	Gravidade        string `json:"gravidade"`
}

func FromFalha(f entities.Falha) FalhaResponse {
	return FalhaResponse{
		IDFalha:          f.ID,
		DescricaoFalha:   f.DescricaoFalha,
		DescricaoSolucao: f.DescricaoSolucao,
		IDOrcamento:      f.IDOrcamento,
		IDVeiculo:        f.IDVeiculo,
		Gravidade:        f.Gravidade,
	}
}

func FromFalhaList(list []entities.Falha) []FalhaResponse {
	out := make([]FalhaResponse, 0, len(list))
	for _, f := range list {
		out = append(out, FromFalha(f))
	}
	return out
}

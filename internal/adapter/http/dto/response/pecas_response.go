package response

import "oficina_xpto/internal/domain/entities"

type PecaResponse struct {
	IDPeca      int64   `json:"idPeca"`
	Marca       string  `json:"marca"`
	Quantidade  int     `json:"quantidade"`
	Valor       float64 `json:"valor"`
	Descricao   string  `json:"descricao"`
	IDOrcamento int64   `json:"idOrcamento"`
	IDServico   int64   `json:"idServico"`
}

func FromPeca(p entities.Peca) PecaResponse {
	return PecaResponse{
		IDPeca:      p.ID,
		Marca:       p.Marca,
		Quantidade:  p.Quantidade,
		Valor:       p.Valor,
		Descricao:   p.Descricao,
		IDOrcamento: p.IDOrcamento,
		IDServico:   p.IDServico,
	}
}

func FromPecaList(list []entities.Peca) []PecaResponse {
	out := make([]PecaResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPeca(p))
	}
	return out
}

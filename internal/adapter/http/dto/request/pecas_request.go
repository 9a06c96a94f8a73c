package request

import "oficina_xpto/internal/domain/entities"

type PecaRequest struct {
	IDPeca      int64   `json:"idPeca"`
	Marca       string  `json:"marca"`
	Quantidade  int     `json:"quantidade"`
	Valor       float64 `json:"valor"`
	Descricao   string  `json:"descricao"`
	IDOrcamento int64   `json:"idOrcamento"`
	IDServico   int64   `json:"idServico"`
}

func (r PecaRequest) ToEntity() entities.Peca {
	return entities.Peca{
		ID:          r.IDPeca,
		Marca:       r.Marca,
		Quantidade:  r.Quantidade,
		Valor:       r.Valor,
		Descricao:   r.Descricao,
		IDOrcamento: r.IDOrcamento,
		IDServico:   r.IDServico,
	}
}

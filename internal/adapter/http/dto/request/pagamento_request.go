package request

import "oficina_xpto/internal/domain/entities"

type PagamentoRequest struct {
	IDPagamento      int64   `json:"idPagamento"`
	FormaPagamento   string  `json:"formaPagamento"`
	TipoPagamento    string  `json:"tipoPagamento"`
	Desconto         float64 `json:"desconto"`
	IDOrdemDeServico int64   `json:"idOrdemDeServico"`
}

func (r PagamentoRequest) ToEntity() entities.Pagamento {
	return entities.Pagamento{
		ID:               r.IDPagamento,
		FormaPagamento:   r.FormaPagamento,
		TipoPagamento:    r.TipoPagamento,
		Desconto:         r.Desconto,
		IDOrdemDeServico: r.IDOrdemDeServico,
	}
}

// ProcessarPagamentoRequest carries the charge amount for the gateway
// processing endpoint; the stored discount is applied server-side.
type ProcessarPagamentoRequest struct {
	Valor     float64 `json:"valor"`
	Descricao string  `json:"descricao"`
}

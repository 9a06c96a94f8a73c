package response

import "oficina_xpto/internal/domain/entities"

type PagamentoResponse struct {
	IDPagamento      int64   `json:"idPagamento"`
	FormaPagamento   string  `json:"formaPagamento"`
	TipoPagamento    string  `json:"tipoPagamento"`
	Desconto         float64 `json:"desconto"`
	IDOrdemDeServico int64   `json:"idOrdemDeServico"`

	StatusGateway     *string `json:"statusGateway,omitempty"`
	ReferenciaExterna *string `json:"referenciaExterna,omitempty"`
}

func FromPagamento(p entities.Pagamento) PagamentoResponse {
	return PagamentoResponse{
		IDPagamento:       p.ID,
		FormaPagamento:    p.FormaPagamento,
		TipoPagamento:     p.TipoPagamento,
		Desconto:          p.Desconto,
		IDOrdemDeServico:  p.IDOrdemDeServico,
		StatusGateway:     p.StatusGateway,
		ReferenciaExterna: p.ReferenciaExterna,
	}
}

func FromPagamentoList(list []entities.Pagamento) []PagamentoResponse {
	out := make([]PagamentoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPagamento(p))
	}
	return out
}

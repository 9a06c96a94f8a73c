package entities

// Gateway status values persisted after processing a payment through the
// external provider.
const (
	PagamentoGatewayAprovado = "aprovado"
	PagamentoGatewayNegado   = "negado"
)

// Pagamento is a payment method entry persisted in t_metodo_pagamento,
// linked to a service order.
//
// StatusGateway and ReferenciaExterna are only set once the payment has been
// processed through the payment gateway; plain CRUD leaves them nil.
type Pagamento struct {
	ID               int64   `json:"idPagamento"`
	FormaPagamento   string  `json:"formaPagamento"`
	TipoPagamento    string  `json:"tipoPagamento"`
	Desconto         float64 `json:"desconto"`
	IDOrdemDeServico int64   `json:"idOrdemDeServico"`

	StatusGateway     *string `json:"statusGateway,omitempty"`
	ReferenciaExterna *string `json:"referenciaExterna,omitempty"`
}

// ValorComDesconto applies the stored percentage discount to a base amount.
func (p Pagamento) ValorComDesconto(valor float64) float64 {
	if p.Desconto <= 0 {
		return valor
	}
	return valor * (1 - p.Desconto/100)
}

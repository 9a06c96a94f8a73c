package entities

// Orcamento is a cost estimate persisted in t_orcamento. It ties a vehicle,
// a workshop, a service and a part to an estimated value.
//
// Situacao is a free-form status string (e.g. "Pendente", "Aprovado").
type Orcamento struct {
	ID             int64   `json:"idOrcamento"`
	ValorOrcamento float64 `json:"valorOrcamento"`
	Situacao       string  `json:"situacao"`
	IDVeiculo      int64   `json:"idVeiculo"`
	IDOficina      int64   `json:"idOficina"`
	IDServico      int64   `json:"idServico"`
	IDPeca         int64   `json:"idPeca"`
}

package entities

// Peca is a replacement part persisted in t_pecas, tied to an estimate and a
// service.
type Peca struct {
	ID          int64   `json:"idPeca"`
	Marca       string  `json:"marca"`
	Quantidade  int     `json:"quantidade"`
	Valor       float64 `json:"valor"`
	Descricao   string  `json:"descricao"`
	IDOrcamento int64   `json:"idOrcamento"`
	IDServico   int64   `json:"idServico"`
}

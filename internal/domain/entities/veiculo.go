package entities

// Veiculo is a customer vehicle persisted in t_veiculo.
//
// ClienteID is nullable: a vehicle may exist before being linked to a
// customer.
type Veiculo struct {
	ID          int64  `json:"idVeiculo"`
	Placa       string `json:"placa"`
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	Ano         int    `json:"ano"`
	Cor         string `json:"cor"`
	Combustivel string `json:"combustivel"`
	ClienteID   *int64 `json:"clienteId"`
}

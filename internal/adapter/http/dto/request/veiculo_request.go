package request

import "oficina_xpto/internal/domain/entities"

type VeiculoRequest struct {
	IDVeiculo   int64  `json:"idVeiculo"`
	Placa       string `json:"placa"`
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	Ano         int    `json:"ano"`
	Cor         string `json:"cor"`
	Combustivel string `json:"combustivel"`
	ClienteID   *int64 `json:"clienteId"`
}

func (r VeiculoRequest) ToEntity() entities.Veiculo {
	return entities.Veiculo{
		ID:          r.IDVeiculo,
		Placa:       r.Placa,
		Marca:       r.Marca,
		Modelo:      r.Modelo,
		Ano:         r.Ano,
		Cor:         r.Cor,
		Combustivel: r.Combustivel,
		ClienteID:   r.ClienteID,
	}
}

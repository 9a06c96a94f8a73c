package response

import "oficina_xpto/internal/domain/entities"

type VeiculoResponse struct {
	IDVeiculo   int64  `json:"idVeiculo"`
	Placa       string `json:"placa"`
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	Ano         int    `json:"ano"`
	Cor         string `json:"cor"`
	Combustivel string `json:"combustivel"`
	ClienteID   *int64 `json:"clienteId"`
}

func FromVeiculo(v entities.Veiculo) VeiculoResponse {
	return VeiculoResponse{
		IDVeiculo:   v.ID,
		Placa:       v.Placa,
		Marca:       v.Marca,
		Modelo:      v.Modelo,
		Ano:         v.Ano,
		Cor:         v.Cor,
		Combustivel: v.Combustivel,
		ClienteID:   v.ClienteID,
	}
}

func FromVeiculoList(list []entities.Veiculo) []VeiculoResponse {
	out := make([]VeiculoResponse, 0, len(list))
	for _, v := range list {
		out = append(out, FromVeiculo(v))
	}
	return out
}

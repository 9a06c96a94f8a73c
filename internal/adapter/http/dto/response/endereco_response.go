package response

import "oficina_xpto/internal/domain/entities"

type EnderecoResponse struct {
	IDEndereco   int64  `json:"idEndereco"`
	Logradouro   string `json:"logradouro"`
	Numero       int    `json:"numero"`
	CEP          string `json:"cep"`
	Bairro       string `json:"bairro"`
	Cidade       string `json:"cidade"`
	UF           string `json:"uf"`
	IDReferencia int64  `json:"idReferencia"`
}

func FromEndereco(e entities.Endereco) EnderecoResponse {
	return EnderecoResponse{
		IDEndereco:   e.ID,
		Logradouro:   e.Logradouro,
		Numero:       e.Numero,
		CEP:          e.CEP,
		Bairro:       e.Bairro,
		Cidade:       e.Cidade,
		UF:           e.UF,
		IDReferencia: e.IDReferencia,
	}
}

func FromEnderecoList(list []entities.Endereco) []EnderecoResponse {
	out := make([]EnderecoResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromEndereco(e))
	}
	return out
}

package request

import "oficina_xpto/internal/domain/entities"

// EnderecoRequest serves both address resources; idReferencia points to the
// owning customer or workshop depending on the route.
type EnderecoRequest struct {
	IDEndereco   int64  `json:"idEndereco"`
	Logradouro   string `json:"logradouro"`
	Numero       int    `json:"numero"`
	CEP          string `json:"cep"`
	Bairro       string `json:"bairro"`
	Cidade       string `json:"cidade"`
	UF           string `json:"uf"`
	IDReferencia int64  `json:"idReferencia"`
}

func (r EnderecoRequest) ToEntity() entities.Endereco {
	return entities.Endereco{
		ID:           r.IDEndereco,
		Logradouro:   r.Logradouro,
		Numero:       r.Numero,
		CEP:          r.CEP,
		Bairro:       r.Bairro,
		Cidade:       r.Cidade,
		UF:           r.UF,
		IDReferencia: r.IDReferencia,
	}
}

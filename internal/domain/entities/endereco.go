package entities

// Endereco is a postal address. The same shape is persisted in two tables:
// t_endereco_cliente and t_endereco_oficina, differing only in which entity
// the IDReferencia column points to.
type Endereco struct {
	ID           int64  `json:"idEndereco"`
	Logradouro   string `json:"logradouro"`
	Numero       int    `json:"numero"`
	CEP          string `json:"cep"`
	Bairro       string `json:"bairro"`
	Cidade       string `json:"cidade"`
	UF           string `json:"uf"`
	IDReferencia int64  `json:"idReferencia"`
}

package entities

// Telefone is a phone number. Like Endereco, it is persisted in two tables
// (t_telefone_cliente and t_telefone_oficina) with IDReferencia pointing to
// the owning entity.
//
// Tipo is free-form: "Residencial", "Comercial", "Celular".
type Telefone struct {
	ID           int64  `json:"idTelefone"`
	Numero       string `json:"numero"`
	Tipo         string `json:"tipo"`
	IDReferencia int64  `json:"idReferencia"`
}

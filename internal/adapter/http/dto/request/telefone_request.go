package request

import "oficina_xpto/internal/domain/entities"

// TelefoneRequest serves both phone resources.
type TelefoneRequest struct {
	IDTelefone   int64  `json:"idTelefone"`
	Numero       string `json:"numero"`
	Tipo         string `json:"tipo"`
	IDReferencia int64  `json:"idReferencia"`
}

func (r TelefoneRequest) ToEntity() entities.Telefone {
	return entities.Telefone{
		ID:           r.IDTelefone,
		Numero:       r.Numero,
		Tipo:         r.Tipo,
		IDReferencia: r.IDReferencia,
	}
}

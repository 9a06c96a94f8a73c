package response

import "oficina_xpto/internal/domain/entities"

type TelefoneResponse struct {
	IDTelefone   int64  `json:"idTelefone"`
	Numero       string `json:"numero"`
	Tipo         string `json:"tipo"`
	IDReferencia int64  `json:"idReferencia"`
}

func FromTelefone(tel entities.Telefone) TelefoneResponse {
	return TelefoneResponse{
		IDTelefone:   tel.ID,
		Numero:       tel.Numero,
		Tipo:         tel.Tipo,
		IDReferencia: tel.IDReferencia,
	}
}

func FromTelefoneList(list []entities.Telefone) []TelefoneResponse {
	out := make([]TelefoneResponse, 0, len(list))
	for _, tel := range list {
		out = append(out, FromTelefone(tel))
	}
	return out
}

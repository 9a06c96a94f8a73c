package response

import "oficina_xpto/internal/domain/entities"

type OficinaResponse struct {
	IDOficina int64  `json:"idOficina"`
	CNPJ      string `json:"cnpj"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
}

func FromOficina(o entities.Oficina) OficinaResponse {
	return OficinaResponse{
		IDOficina: o.ID,
		CNPJ:      o.CNPJ,
		Nome:      o.Nome,
		Email:     o.Email,
	}
}

func FromOficinaList(list []entities.Oficina) []OficinaResponse {
	out := make([]OficinaResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromOficina(o))
	}
	return out
}

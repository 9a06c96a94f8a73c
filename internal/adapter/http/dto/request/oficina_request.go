package request

import "oficina_xpto/internal/domain/entities"

type OficinaRequest struct {
	IDOficina int64  `json:"idOficina"`
	CNPJ      string `json:"cnpj"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
}

func (r OficinaRequest) ToEntity() entities.Oficina {
	return entities.Oficina{
		ID:    r.IDOficina,
		CNPJ:  r.CNPJ,
		Nome:  r.Nome,
		Email: r.Email,
	}
}

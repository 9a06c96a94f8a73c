package request

import "oficina_xpto/internal/domain/entities"

// ClienteRequest is the wire payload for customer create and update calls.
// The id must be absent on create; update takes it from the path.
type ClienteRequest struct {
	IDCliente int64  `json:"idCliente"`
	CPF       string `json:"cpf"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	Sexo      string `json:"sexo"`
}

func (r ClienteRequest) ToEntity() entities.Cliente {
	return entities.Cliente{
		ID:    r.IDCliente,
		CPF:   r.CPF,
		Nome:  r.Nome,
		Email: r.Email,
		Sexo:  r.Sexo,
	}
}

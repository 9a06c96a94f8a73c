package response

import "oficina_xpto/internal/domain/entities"

type ClienteResponse struct {
	IDCliente int64  `json:"idCliente"`
	CPF       string `json:"cpf"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	Sexo      string `json:"sexo"`
}

func FromCliente(c entities.Cliente) ClienteResponse {
	return ClienteResponse{
		IDCliente: c.ID,
		CPF:       c.CPF,
		Nome:      c.Nome,
		Email:     c.Email,
		Sexo:      c.Sexo,
	}
}

func FromClienteList(list []entities.Cliente) []ClienteResponse {
	out := make([]ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromCliente(c))
	}
	return out
}

package entities

// Cliente is a workshop customer persisted in t_cliente.
//
// Sexo holds a single letter ("M"/"F"), kept as string for direct JSON and
// column mapping.
type Cliente struct {
	ID    int64  `json:"idCliente"`
	CPF   string `json:"cpf"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Sexo  string `json:"sexo"`
}

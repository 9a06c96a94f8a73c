package entities

// Oficina is a repair shop persisted in t_oficina.
type Oficina struct {
	ID    int64  `json:"idOficina"`
	CNPJ  string `json:"cnpj"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

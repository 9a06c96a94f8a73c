package entities

// Funcionario is a workshop employee persisted in t_funcionario.
type Funcionario struct {
	ID        int64  `json:"idFuncionario"`
	CPF       string `json:"cpf"`
	Nome      string `json:"nome"`
	Sexo      string `json:"sexo"`
	Funcao    string `json:"funcao"`
	IDOficina *int64 `json:"idOficina"`
}

package request

import "oficina_xpto/internal/domain/entities"

type FuncionarioRequest struct {
	IDFuncionario int64  `json:"idFuncionario"`
	CPF           string `json:"cpf"`
	Nome          string `json:"nome"`
	Sexo          string `json:"sexo"`
	Funcao        string `json:"funcao"`
	IDOficina     *int64 `json:"idOficina"`
}

func (r FuncionarioRequest) ToEntity() entities.Funcionario {
	return entities.Funcionario{
		ID:        r.IDFuncionario,
		CPF:       r.CPF,
		Nome:      r.Nome,
		Sexo:      r.Sexo,
		Funcao:    r.Funcao,
		IDOficina: r.IDOficina,
	}
}

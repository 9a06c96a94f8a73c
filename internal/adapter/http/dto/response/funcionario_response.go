package response

import "oficina_xpto/internal/domain/entities"

type FuncionarioResponse struct {
	IDFuncionario int64  `json:"idFuncionario"`
	CPF           string `json:"cpf"`
	Nome          string `json:"nome"`
	Sexo          string `json:"sexo"`
	Funcao        string `json:"funcao"`
	IDOficina     *int64 `json:"idOficina"`
}

func FromFuncionario(f entities.Funcionario) FuncionarioResponse {
	return FuncionarioResponse{
		IDFuncionario: f.ID,
		CPF:           f.CPF,
		Nome:          f.Nome,
		Sexo:          f.Sexo,
		Funcao:        f.Funcao,
		IDOficina:     f.IDOficina,
	}
}

func FromFuncionarioList(list []entities.Funcionario) []FuncionarioResponse {
	out := make([]FuncionarioResponse, 0, len(list))
	for _, f := range list {
		out = append(out, FromFuncionario(f))
	}
	return out
}

package entities

// Falha is a reported vehicle failure persisted in t_falhas, with its
// diagnosed solution and severity.
type Falha struct {
	ID               int64  `json:"idFalha"`
	DescricaoFalha   string `json:"descricaoFalha"`
	DescricaoSolucao string `json:"descricaoSolucao"`
	IDOrcamento      int64  `json:"idOrcamento"`
	IDVeiculo        int64  `json:"idVeiculo"`
	Gravidade        string `json:"gravidade"`
}

package entities

import (
	"errors"
	"time"
)

// Service order status values. Status stays a plain string column; these are
// the values written by the API itself.
const (
	OrdemStatusAberto    = "Aberto"
	OrdemStatusConcluido = "Concluído"
)

var ErrOrdemJaFinalizada = errors.New("ordem de serviço já finalizada")

// OrdemDeServico is a unit of repair work persisted in t_ordem_de_servico,
// tracked from open to completed. DataFim/HoraFim stay nil until the order is
// finished.
type OrdemDeServico struct {
	ID            int64      `json:"idOs"`
	Status        string     `json:"status"`
	IDOrcamento   int64      `json:"idOrcamento"`
	IDFuncionario int64      `json:"idFuncionario"`
	IDVeiculo     int64      `json:"idVeiculo"`
	DataInicio    time.Time  `json:"dataInicio"`
	DataFim       *time.Time `json:"dataFim"`
	HoraInicio    time.Time  `json:"horaInicio"`
	HoraFim       *time.Time `json:"horaFim"`
}

// Finalizar closes an open order, stamping completion date and time.
func (o *OrdemDeServico) Finalizar(now time.Time) error {
	if o.Status != OrdemStatusAberto {
		return ErrOrdemJaFinalizada
	}
	o.Status = OrdemStatusConcluido
	o.DataFim = &now
	o.HoraFim = &now
	return nil
}

// Concluida reports whether the order reached its final status.
func (o OrdemDeServico) Concluida() bool {
	return o.Status == OrdemStatusConcluido
}

package request

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type AgendamentoRequest struct {
	IDAgendamento   int64     `json:"idAgendamento"`
	DataAgendamento time.Time `json:"dataAgendamento"`
	HoraAgendamento time.Time `json:"horaAgendamento"`
	IDCliente       int64     `json:"idCliente"`
	IDOficina       int64     `json:"idOficina"`
}

func (r AgendamentoRequest) ToEntity() entities.Agendamento {
	return entities.Agendamento{
		ID:              r.IDAgendamento,
		DataAgendamento: r.DataAgendamento,
		HoraAgendamento: r.HoraAgendamento,
		IDCliente:       r.IDCliente,
		IDOficina:       r.IDOficina,
	}
}

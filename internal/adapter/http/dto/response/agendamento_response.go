package response

import (
	"time"

	"oficina_xpto/internal/domain/entities"
)

type AgendamentoResponse struct {
	IDAgendamento   int64     `json:"idAgendamento"`
	DataAgendamento time.Time `json:"dataAgendamento"`
	HoraAgendamento time.Time `json:"horaAgendamento"`
	IDCliente       int64     `json:"idCliente"`
	IDOficina       int64     `json:"idOficina"`
}

func FromAgendamento(a entities.Agendamento) AgendamentoResponse {
	return AgendamentoResponse{
		IDAgendamento:   a.ID,
		DataAgendamento: a.DataAgendamento,
		HoraAgendamento: a.HoraAgendamento,
		IDCliente:       a.IDCliente,
		IDOficina:       a.IDOficina,
	}
}

func FromAgendamentoList(list []entities.Agendamento) []AgendamentoResponse {
	out := make([]AgendamentoResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAgendamento(a))
	}
	return out
}

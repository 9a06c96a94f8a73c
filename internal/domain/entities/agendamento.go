package entities

import "time"

// Agendamento is a service appointment persisted in t_agendamento.
//
// DataAgendamento carries the calendar date and HoraAgendamento the time of
// day, mirroring the two separate columns.
type Agendamento struct {
	ID              int64     `json:"idAgendamento"`
	DataAgendamento time.Time `json:"dataAgendamento"`
	HoraAgendamento time.Time `json:"horaAgendamento"`
	IDCliente       int64     `json:"idCliente"`
	IDOficina       int64     `json:"idOficina"`
}

// Futuro reports whether the appointment date is still ahead.
func (a Agendamento) Futuro() bool {
	return a.DataAgendamento.After(time.Now())
}

package entities

import (
	"testing"
	"time"
)

func TestAgendamento_Futuro(t *testing.T) {
	t.Run("tomorrow is futuro", func(t *testing.T) {
		a := Agendamento{DataAgendamento: time.Now().Add(24 * time.Hour)}
		if !a.Futuro() {
			t.Fatalf("expected futuro")
		}
	})

	t.Run("yesterday is not", func(t *testing.T) {
		a := Agendamento{DataAgendamento: time.Now().Add(-24 * time.Hour)}
		if a.Futuro() {
			t.Fatalf("expected past appointment")
		}
	})
}

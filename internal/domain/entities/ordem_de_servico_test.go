package entities

import (
	"errors"
	"testing"
	"time"
)

func TestOrdemDeServico_Finalizar(t *testing.T) {
	now := time.Now()

	t.Run("open order is closed with end stamps", func(t *testing.T) {
		os := OrdemDeServico{Status: OrdemStatusAberto, DataInicio: now.Add(-time.Hour)}
		if err := os.Finalizar(now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !os.Concluida() {
			t.Fatalf("expected concluded order, got status %q", os.Status)
		}
		if os.DataFim == nil || !os.DataFim.Equal(now) {
			t.Fatalf("expected data fim %v, got %v", now, os.DataFim)
		}
		if os.HoraFim == nil || !os.HoraFim.Equal(now) {
			t.Fatalf("expected hora fim %v, got %v", now, os.HoraFim)
		}
	})

	t.Run("finished order cannot be finished again", func(t *testing.T) {
		os := OrdemDeServico{Status: OrdemStatusConcluido}
		if err := os.Finalizar(now); !errors.Is(err, ErrOrdemJaFinalizada) {
			t.Fatalf("expected ErrOrdemJaFinalizada, got %v", err)
		}
	})
}

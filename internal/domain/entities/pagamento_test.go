package entities

import "testing"

func TestPagamento_ValorComDesconto(t *testing.T) {
	tests := []struct {
		name     string
		desconto float64
		valor    float64
		want     float64
	}{
		{"no discount", 0, 100, 100},
		{"negative discount is ignored", -5, 100, 100},
		{"ten percent", 10, 200, 180},
		{"full discount", 100, 80, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pagamento{Desconto: tt.desconto}
			if got := p.ValorComDesconto(tt.valor); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

package response

import (
	"testing"

	"oficina_xpto/internal/domain/entities"
)

func TestFromPagamento(t *testing.T) {
	status := entities.PagamentoGatewayAprovado
	referencia := "ref-1"

	p := entities.Pagamento{
		ID:                3,
		FormaPagamento:    "PIX",
		TipoPagamento:     "à vista",
		Desconto:          7.5,
		IDOrdemDeServico:  11,
		StatusGateway:     &status,
		ReferenciaExterna: &referencia,
	}

	res := FromPagamento(p)
	if res.IDPagamento != 3 || res.FormaPagamento != "PIX" || res.TipoPagamento != "à vista" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Desconto != 7.5 || res.IDOrdemDeServico != 11 {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.StatusGateway == nil || *res.StatusGateway != "aprovado" {
		t.Fatalf("unexpected gateway status: %+v", res.StatusGateway)
	}
	if res.ReferenciaExterna == nil || *res.ReferenciaExterna != "ref-1" {
		t.Fatalf("unexpected referencia: %+v", res.ReferenciaExterna)
	}
}

func TestFromPagamentoList_Empty(t *testing.T) {
	if got := FromPagamentoList(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}

package response

import (
	"testing"

	"oficina_xpto/internal/domain/entities"
)

func TestFromClienteList(t *testing.T) {
	list := []entities.Cliente{
		{ID: 1, CPF: "123.456.789-00", Nome: "Maria", Email: "maria@example.com", Sexo: "F"},
		{ID: 2, Nome: "João"},
	}

	res := FromClienteList(list)
	if len(res) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(res))
	}
	if res[0].IDCliente != 1 || res[0].CPF != "123.456.789-00" || res[0].Nome != "Maria" {
		t.Fatalf("unexpected first response: %+v", res[0])
	}
	if res[1].IDCliente != 2 || res[1].Nome != "João" {
		t.Fatalf("unexpected second response: %+v", res[1])
	}
}

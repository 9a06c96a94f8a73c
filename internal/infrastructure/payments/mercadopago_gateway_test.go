package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token is rejected", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		_, err := NewMercadoPagoGateway("")
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		gw, err := NewMercadoPagoGateway("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gw == nil {
			t.Fatalf("expected gateway instance")
		}
	})
}

func TestMercadoPagoGateway_CreatePayment_Mock(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "on")
	gw, err := NewMercadoPagoGateway("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	payload, _ := json.Marshal(map[string]any{
		"transaction_amount": 180.0,
		"description":        "revisão",
		"payment_method_id":  "pix",
		"external_reference": "ref-1",
	})

	id, status, raw, err := gw.CreatePayment(context.Background(), payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatalf("expected a provider payment id")
	}
	if status != "approved" {
		t.Fatalf("expected approved, got %q", status)
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("invalid provider response: %v", err)
	}
	if body["status"] != "approved" {
		t.Fatalf("unexpected provider response: %v", body)
	}
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"oficina_xpto/internal/adapter/persistence/repository"
	"oficina_xpto/internal/domain/entities"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPagamentoUseCase_Processar(t *testing.T) {
	t.Run("invalid valor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewPagamentoUseCase(nil, nil, mock_interfaces.NewMockIPaymentGateway(ctrl))

		_, err := uc.Processar(context.Background(), 1, 0, "revisão")
		if !errors.Is(err, ErrInvalidValorPagamento) {
			t.Fatalf("expected ErrInvalidValorPagamento, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPagamentoUseCase(nil, nil, nil)
		_, err := uc.Processar(context.Background(), 1, 100, "revisão")
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("payment not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPagamentoRepository(ctrl)
		uc := NewPagamentoUseCase(repo, nil, mock_interfaces.NewMockIPaymentGateway(ctrl))

		repo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(entities.Pagamento{}, repository.ErrNotFound)

		_, err := uc.Processar(context.Background(), 42, 100, "revisão")
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("already processed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPagamentoRepository(ctrl)
		uc := NewPagamentoUseCase(repo, nil, mock_interfaces.NewMockIPaymentGateway(ctrl))

		status := entities.PagamentoGatewayAprovado
		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(entities.Pagamento{ID: 1, StatusGateway: &status}, nil)

		_, err := uc.Processar(context.Background(), 1, 100, "revisão")
		if !errors.Is(err, ErrPagamentoJaProcessado) {
			t.Fatalf("expected ErrPagamentoJaProcessado, got %v", err)
		}
	})

	t.Run("gateway failure is propagated without touching the db", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPagamentoRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPagamentoUseCase(repo, nil, gateway)

		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(entities.Pagamento{ID: 1}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("provider down"))

		_, err := uc.Processar(context.Background(), 1, 100, "revisão")
		if err == nil || err.Error() != "provider down" {
			t.Fatalf("expected provider error, got %v", err)
		}
	})

	t.Run("approved payment applies discount and commits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPagamentoRepository(ctrl)
		txm := mock_interfaces.NewMockITxManager(ctrl)
		tx := mock_interfaces.NewMockTx(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPagamentoUseCase(repo, txm, gateway)

		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(entities.Pagamento{ID: 1, Desconto: 10}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var body map[string]any
				if err := json.Unmarshal(payload, &body); err != nil {
					t.Fatalf("invalid payload: %v", err)
				}
				if amount := body["transaction_amount"].(float64); amount != 180 {
					t.Fatalf("expected discounted amount 180, got %v", amount)
				}
				if body["external_reference"].(string) == "" {
					t.Fatalf("expected an external reference")
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1"}`), nil
			},
		)
		txm.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		repo.EXPECT().UpdateGateway(gomock.Any(), tx, int64(1), entities.PagamentoGatewayAprovado, gomock.Any()).Return(nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)

		p, err := uc.Processar(context.Background(), 1, 200, "revisão completa")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.StatusGateway == nil || *p.StatusGateway != entities.PagamentoGatewayAprovado {
			t.Fatalf("expected aprovado status, got %+v", p)
		}
		if p.ReferenciaExterna == nil || *p.ReferenciaExterna == "" {
			t.Fatalf("expected external reference, got %+v", p)
		}
	})

	t.Run("rejected payment is stored as negado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPagamentoRepository(ctrl)
		txm := mock_interfaces.NewMockITxManager(ctrl)
		tx := mock_interfaces.NewMockTx(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPagamentoUseCase(repo, txm, gateway)

		repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(entities.Pagamento{ID: 2}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-2", "rejected", nil, nil)
		txm.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		repo.EXPECT().UpdateGateway(gomock.Any(), tx, int64(2), entities.PagamentoGatewayNegado, gomock.Any()).Return(nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)

		p, err := uc.Processar(context.Background(), 2, 50, "troca de óleo")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.StatusGateway == nil || *p.StatusGateway != entities.PagamentoGatewayNegado {
			t.Fatalf("expected negado status, got %+v", p)
		}
	})

	t.Run("persist failure rolls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPagamentoRepository(ctrl)
		txm := mock_interfaces.NewMockITxManager(ctrl)
		tx := mock_interfaces.NewMockTx(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPagamentoUseCase(repo, txm, gateway)

		repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(entities.Pagamento{ID: 3}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-3", "approved", nil, nil)
		txm.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		repo.EXPECT().UpdateGateway(gomock.Any(), tx, int64(3), gomock.Any(), gomock.Any()).Return(errors.New("write failed"))
		tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		_, err := uc.Processar(context.Background(), 3, 75, "alinhamento")
		if err == nil || err.Error() != "write failed" {
			t.Fatalf("expected write error, got %v", err)
		}
	})
}

func TestPagamentoUseCase_Create(t *testing.T) {
	t.Run("create with id is rejected", func(t *testing.T) {
		uc := NewPagamentoUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.Pagamento{ID: 5})
		if !errors.Is(err, ErrCreateWithID) {
			t.Fatalf("expected ErrCreateWithID, got %v", err)
		}
	})

	t.Run("create success commits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPagamentoRepository(ctrl)
		txm := mock_interfaces.NewMockITxManager(ctrl)
		tx := mock_interfaces.NewMockTx(ctrl)
		uc := NewPagamentoUseCase(repo, txm, nil)

		in := entities.Pagamento{FormaPagamento: "PIX", TipoPagamento: "à vista", Desconto: 5, IDOrdemDeServico: 9}
		txm.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		repo.EXPECT().Save(gomock.Any(), tx, in).Return(entities.Pagamento{ID: 1, FormaPagamento: "PIX"}, nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)

		created, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != 1 {
			t.Fatalf("unexpected pagamento: %+v", created)
		}
	})
}

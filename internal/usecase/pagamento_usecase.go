package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidValorPagamento = errors.New("invalid payment value")
	ErrGatewayNotConfigured  = errors.New("payment gateway not configured")
	ErrPagamentoJaProcessado = errors.New("payment already processed")
)

// IPagamentoUseCase exposes the payment CRUD operations plus Processar,
// which charges a stored payment through the external gateway.
type IPagamentoUseCase interface {
	Create(ctx context.Context, p entities.Pagamento) (entities.Pagamento, error)
	FindAll(ctx context.Context) ([]entities.Pagamento, error)
	Update(ctx context.Context, p entities.Pagamento) (entities.Pagamento, error)
	DeleteByID(ctx context.Context, id int64) error
	Processar(ctx context.Context, id int64, valor float64, descricao string) (entities.Pagamento, error)
}

type PagamentoUseCase struct {
	repo    interfaces.IPagamentoRepository
	txm     interfaces.ITxManager
	gateway interfaces.IPaymentGateway
}

var _ IPagamentoUseCase = (*PagamentoUseCase)(nil)

// NewPagamentoUseCase accepts a nil gateway; only Processar requires one.
func NewPagamentoUseCase(repo interfaces.IPagamentoRepository, txm interfaces.ITxManager, gateway interfaces.IPaymentGateway) *PagamentoUseCase {
	return &PagamentoUseCase{repo: repo, txm: txm, gateway: gateway}
}

func (u *PagamentoUseCase) Create(ctx context.Context, p entities.Pagamento) (entities.Pagamento, error) {
	if p.ID != 0 {
		return entities.Pagamento{}, ErrCreateWithID
	}
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Pagamento{}, err
	}
	saved, err := u.repo.Save(ctx, tx, p)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Pagamento{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Pagamento{}, err
	}
	return saved, nil
}

func (u *PagamentoUseCase) FindAll(ctx context.Context) ([]entities.Pagamento, error) {
	return u.repo.FindAll(ctx)
}

func (u *PagamentoUseCase) Update(ctx context.Context, p entities.Pagamento) (entities.Pagamento, error) {
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Pagamento{}, err
	}
	updated, err := u.repo.Update(ctx, tx, p)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Pagamento{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Pagamento{}, err
	}
	return updated, nil
}

func (u *PagamentoUseCase) DeleteByID(ctx context.Context, id int64) error {
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return err
	}
	if err := u.repo.DeleteByID(ctx, tx, id); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// Processar charges a stored payment through the gateway and records the
// provider status. The amount sent to the provider is valor after the
// payment's stored discount. The gateway call happens outside the write
// transaction; only the outcome is persisted transactionally.
func (u *PagamentoUseCase) Processar(ctx context.Context, id int64, valor float64, descricao string) (entities.Pagamento, error) {
	log.Printf("[pagamento][usecase] process start id=%d valor=%.2f", id, valor)
	if valor <= 0 {
		return entities.Pagamento{}, ErrInvalidValorPagamento
	}
	if u.gateway == nil {
		log.Printf("[pagamento][usecase] gateway not configured id=%d", id)
		return entities.Pagamento{}, ErrGatewayNotConfigured
	}

	p, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return entities.Pagamento{}, err
	}
	if p.StatusGateway != nil {
		return entities.Pagamento{}, ErrPagamentoJaProcessado
	}

	referencia := uuid.NewString()
	payload, err := json.Marshal(map[string]any{
		"transaction_amount": p.ValorComDesconto(valor),
		"description":        descricao,
		"payment_method_id":  "pix",
		"external_reference": referencia,
	})
	if err != nil {
		return entities.Pagamento{}, err
	}

	providerID, status, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[pagamento][usecase] gateway create failed id=%d err=%v", id, err)
		return entities.Pagamento{}, err
	}
	log.Printf("[pagamento][usecase] gateway create success id=%d provider_payment_id=%s provider_status=%s", id, providerID, status)

	gatewayStatus := entities.PagamentoGatewayNegado
	if status == "approved" {
		gatewayStatus = entities.PagamentoGatewayAprovado
	}

	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Pagamento{}, err
	}
	if err := u.repo.UpdateGateway(ctx, tx, id, gatewayStatus, referencia); err != nil {
		_ = tx.Rollback(ctx)
		return entities.Pagamento{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Pagamento{}, err
	}

	p.StatusGateway = &gatewayStatus
	p.ReferenciaExterna = &referencia
	return p, nil
}

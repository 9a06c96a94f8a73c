package usecase

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

// IClienteUseCase exposes the customer CRUD operations.
type IClienteUseCase interface {
	Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error)
	FindAll(ctx context.Context) ([]entities.Cliente, error)
	Update(ctx context.Context, c entities.Cliente) (entities.Cliente, error)
	DeleteByID(ctx context.Context, id int64) error
}

// ClienteUseCase wraps each repository call in a single-attempt transaction:
// acquire, delegate, commit on success, rollback and propagate on failure.
type ClienteUseCase struct {
	repo interfaces.IClienteRepository
	txm  interfaces.ITxManager
}

var _ IClienteUseCase = (*ClienteUseCase)(nil)

func NewClienteUseCase(repo interfaces.IClienteRepository, txm interfaces.ITxManager) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, txm: txm}
}

// Create persists a new customer. A record that already claims an id cannot be
// created again.
func (u *ClienteUseCase) Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error) {
	if c.ID != 0 {
		return entities.Cliente{}, ErrCreateWithID
	}
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Cliente{}, err
	}
	saved, err := u.repo.Save(ctx, tx, c)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Cliente{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Cliente{}, err
	}
	return saved, nil
}

// FindAll is a passthrough; reads do not need a transaction.
func (u *ClienteUseCase) FindAll(ctx context.Context) ([]entities.Cliente, error) {
	return u.repo.FindAll(ctx)
}

func (u *ClienteUseCase) Update(ctx context.Context, c entities.Cliente) (entities.Cliente, error) {
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Cliente{}, err
	}
	updated, err := u.repo.Update(ctx, tx, c)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Cliente{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Cliente{}, err
	}
	return updated, nil
}

func (u *ClienteUseCase) DeleteByID(ctx context.Context, id int64) error {
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

package usecase

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

// IOrdemDeServicoUseCase exposes the service order CRUD operations.
type IOrdemDeServicoUseCase interface {
	Create(ctx context.Context, o entities.OrdemDeServico) (entities.OrdemDeServico, error)
	FindAll(ctx context.Context) ([]entities.OrdemDeServico, error)
	Update(ctx context.Context, o entities.OrdemDeServico) (entities.OrdemDeServico, error)
	DeleteByID(ctx context.Context, id int64) error
}

// OrdemDeServicoUseCase wraps each repository call in a single-attempt transaction:
// acquire, delegate, commit on success, rollback and propagate on failure.
type OrdemDeServicoUseCase struct {
	repo interfaces.IOrdemDeServicoRepository
	txm  interfaces.ITxManager
}

var _ IOrdemDeServicoUseCase = (*OrdemDeServicoUseCase)(nil)

func NewOrdemDeServicoUseCase(repo interfaces.IOrdemDeServicoRepository, txm interfaces.ITxManager) *OrdemDeServicoUseCase {
	return &OrdemDeServicoUseCase{repo: repo, txm: txm}
}

// Create persists a new service order. A record that already claims an id cannot be
// created again.
func (u *OrdemDeServicoUseCase) Create(ctx context.Context, o entities.OrdemDeServico) (entities.OrdemDeServico, error) {
	if o.ID != 0 {
		return entities.OrdemDeServico{}, ErrCreateWithID
	}
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.OrdemDeServico{}, err
	}
	saved, err := u.repo.Save(ctx, tx, o)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.OrdemDeServico{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.OrdemDeServico{}, err
	}
	return saved, nil
}

// FindAll is a passthrough; reads do not need a transaction.
func (u *OrdemDeServicoUseCase) FindAll(ctx context.Context) ([]entities.OrdemDeServico, error) {
	return u.repo.FindAll(ctx)
}

func (u *OrdemDeServicoUseCase) Update(ctx context.Context, o entities.OrdemDeServico) (entities.OrdemDeServico, error) {
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.OrdemDeServico{}, err
	}
	updated, err := u.repo.Update(ctx, tx, o)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.OrdemDeServico{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.OrdemDeServico{}, err
	}
	return updated, nil
}

func (u *OrdemDeServicoUseCase) DeleteByID(ctx context.Context, id int64) error {
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

package usecase

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

// IOrcamentoUseCase exposes the estimate CRUD operations.
type IOrcamentoUseCase interface {
	Create(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error)
	FindAll(ctx context.Context) ([]entities.Orcamento, error)
	Update(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error)
	DeleteByID(ctx context.Context, id int64) error
}

// OrcamentoUseCase wraps each repository call in a single-attempt transaction:
// acquire, delegate, commit on success, rollback and propagate on failure.
type OrcamentoUseCase struct {
	repo interfaces.IOrcamentoRepository
	txm  interfaces.ITxManager
}

var _ IOrcamentoUseCase = (*OrcamentoUseCase)(nil)

func NewOrcamentoUseCase(repo interfaces.IOrcamentoRepository, txm interfaces.ITxManager) *OrcamentoUseCase {
	return &OrcamentoUseCase{repo: repo, txm: txm}
}

// Create persists a new estimate. A record that already claims an id cannot be
// created again.
func (u *OrcamentoUseCase) Create(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error) {
	if o.ID != 0 {
		return entities.Orcamento{}, ErrCreateWithID
	}
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Orcamento{}, err
	}
	saved, err := u.repo.Save(ctx, tx, o)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Orcamento{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Orcamento{}, err
	}
	return saved, nil
}

func (u *OrcamentoUseCase) FindAll(ctx context.Context) ([]entities.Orcamento, error) {
	return u.repo.FindAll(ctx)
}

func (u *OrcamentoUseCase) Update(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error) {
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Orcamento{}, err
	}
	updated, err := u.repo.Update(ctx, tx, o)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Orcamento{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Orcamento{}, err
	}
	return updated, nil
}

func (u *OrcamentoUseCase) DeleteByID(ctx context.Context, id int64) error {
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

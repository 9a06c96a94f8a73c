package usecase

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

// IOficinaUseCase exposes the workshop CRUD operations.
type IOficinaUseCase interface {
	Create(ctx context.Context, o entities.Oficina) (entities.Oficina, error)
	FindAll(ctx context.Context) ([]entities.Oficina, error)
	Update(ctx context.Context, o entities.Oficina) (entities.Oficina, error)
	DeleteByID(ctx context.Context, id int64) error
}

type OficinaUseCase struct {
	repo interfaces.IOficinaRepository
	txm  interfaces.ITxManager
}

var _ IOficinaUseCase = (*OficinaUseCase)(nil)

func NewOficinaUseCase(repo interfaces.IOficinaRepository, txm interfaces.ITxManager) *OficinaUseCase {
	return &OficinaUseCase{repo: repo, txm: txm}
}

func (u *OficinaUseCase) Create(ctx context.Context, o entities.Oficina) (entities.Oficina, error) {
	if o.ID != 0 {
		return entities.Oficina{}, ErrCreateWithID
	}
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Oficina{}, err
	}
	saved, err := u.repo.Save(ctx, tx, o)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Oficina{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Oficina{}, err
	}
	return saved, nil
}

func (u *OficinaUseCase) FindAll(ctx context.Context) ([]entities.Oficina, error) {
	return u.repo.FindAll(ctx)
}

func (u *OficinaUseCase) Update(ctx context.Context, o entities.Oficina) (entities.Oficina, error) {
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Oficina{}, err
	}
	updated, err := u.repo.Update(ctx, tx, o)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Oficina{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Oficina{}, err
	}
	return updated, nil
}

func (u *OficinaUseCase) DeleteByID(ctx context.Context, id int64) error {
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

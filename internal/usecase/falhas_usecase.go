package usecase

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

// IFalhaUseCase exposes the failure CRUD operations.
type IFalhaUseCase interface {
	Create(ctx context.Context, f entities.Falha) (entities.Falha, error)
	FindAll(ctx context.Context) ([]entities.Falha, error)
	Update(ctx context.Context, f entities.Falha) (entities.Falha, error)
	DeleteByID(ctx context.Context, id int64) error
}

type FalhaUseCase struct {
	repo interfaces.IFalhaRepository
	txm  interfaces.ITxManager
}

var _ IFalhaUseCase = (*FalhaUseCase)(nil)

func NewFalhaUseCase(repo interfaces.IFalhaRepository, txm interfaces.ITxManager) *FalhaUseCase {
	return &FalhaUseCase{repo: repo, txm: txm}
}

func (u *FalhaUseCase) Create(ctx context.Context, f entities.Falha) (entities.Falha, error) {
	if f.ID != 0 {
		return entities.Falha{}, ErrCreateWithID
	}
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Falha{}, err
	}
	saved, err := u.repo.Save(ctx, tx, f)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Falha{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Falha{}, err
	}
	return saved, nil
}

func (u *FalhaUseCase) FindAll(ctx context.Context) ([]entities.Falha, error) {
	return u.repo.FindAll(ctx)
}

func (u *FalhaUseCase) Update(ctx context.Context, f entities.Falha) (entities.Falha, error) {
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Falha{}, err
	}
	updated, err := u.repo.Update(ctx, tx, f)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Falha{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Falha{}, err
	}
	return updated, nil
}

func (u *FalhaUseCase) DeleteByID(ctx context.Context, id int64) error {
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

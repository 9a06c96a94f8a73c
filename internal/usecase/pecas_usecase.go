package usecase

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

// IPecaUseCase exposes the part CRUD operations.
type IPecaUseCase interface {
	Create(ctx context.Context, p entities.Peca) (entities.Peca, error)
	FindAll(ctx context.Context) ([]entities.Peca, error)
	Update(ctx context.Context, p entities.Peca) (entities.Peca, error)
	DeleteByID(ctx context.Context, id int64) error
}

type PecaUseCase struct {
	repo interfaces.IPecaRepository
	txm  interfaces.ITxManager
}

var _ IPecaUseCase = (*PecaUseCase)(nil)

func NewPecaUseCase(repo interfaces.IPecaRepository, txm interfaces.ITxManager) *PecaUseCase {
	return &PecaUseCase{repo: repo, txm: txm}
}

func (u *PecaUseCase) Create(ctx context.Context, p entities.Peca) (entities.Peca, error) {
	if p.ID != 0 {
		return entities.Peca{}, ErrCreateWithID
	}
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Peca{}, err
	}
	saved, err := u.repo.Save(ctx, tx, p)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Peca{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Peca{}, err
	}
	return saved, nil
}

func (u *PecaUseCase) FindAll(ctx context.Context) ([]entities.Peca, error) {
	return u.repo.FindAll(ctx)
}

func (u *PecaUseCase) Update(ctx context.Context, p entities.Peca) (entities.Peca, error) {
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Peca{}, err
	}
	updated, err := u.repo.Update(ctx, tx, p)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Peca{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Peca{}, err
	}
	return updated, nil
}

func (u *PecaUseCase) DeleteByID(ctx context.Context, id int64) error {
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

package usecase

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

// IServicoUseCase exposes the service CRUD operations.
type IServicoUseCase interface {
	Create(ctx context.Context, s entities.Servico) (entities.Servico, error)
	FindAll(ctx context.Context) ([]entities.Servico, error)
	Update(ctx context.Context, s entities.Servico) (entities.Servico, error)
	DeleteByID(ctx context.Context, id int64) error
}

type ServicoUseCase struct {
	repo interfaces.IServicoRepository
	txm  interfaces.ITxManager
}

var _ IServicoUseCase = (*ServicoUseCase)(nil)

func NewServicoUseCase(repo interfaces.IServicoRepository, txm interfaces.ITxManager) *ServicoUseCase {
	return &ServicoUseCase{repo: repo, txm: txm}
}

func (u *ServicoUseCase) Create(ctx context.Context, s entities.Servico) (entities.Servico, error) {
	if s.ID != 0 {
		return entities.Servico{}, ErrCreateWithID
	}
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Servico{}, err
	}
	saved, err := u.repo.Save(ctx, tx, s)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Servico{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Servico{}, err
	}
	return saved, nil
}

func (u *ServicoUseCase) FindAll(ctx context.Context) ([]entities.Servico, error) {
	return u.repo.FindAll(ctx)
}

func (u *ServicoUseCase) Update(ctx context.Context, s entities.Servico) (entities.Servico, error) {
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Servico{}, err
	}
	updated, err := u.repo.Update(ctx, tx, s)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Servico{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Servico{}, err
	}
	return updated, nil
}

func (u *ServicoUseCase) DeleteByID(ctx context.Context, id int64) error {
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

package usecase

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

// IFuncionarioUseCase exposes the employee CRUD operations.
type IFuncionarioUseCase interface {
	Create(ctx context.Context, f entities.Funcionario) (entities.Funcionario, error)
	FindAll(ctx context.Context) ([]entities.Funcionario, error)
	Update(ctx context.Context, f entities.Funcionario) (entities.Funcionario, error)
	DeleteByID(ctx context.Context, id int64) error
}

type FuncionarioUseCase struct {
	repo interfaces.IFuncionarioRepository
	txm  interfaces.ITxManager
}

var _ IFuncionarioUseCase = (*FuncionarioUseCase)(nil)

func NewFuncionarioUseCase(repo interfaces.IFuncionarioRepository, txm interfaces.ITxManager) *FuncionarioUseCase {
	return &FuncionarioUseCase{repo: repo, txm: txm}
}

func (u *FuncionarioUseCase) Create(ctx context.Context, f entities.Funcionario) (entities.Funcionario, error) {
	if f.ID != 0 {
		return entities.Funcionario{}, ErrCreateWithID
	}
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Funcionario{}, err
	}
	saved, err := u.repo.Save(ctx, tx, f)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Funcionario{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Funcionario{}, err
	}
	return saved, nil
}

func (u *FuncionarioUseCase) FindAll(ctx context.Context) ([]entities.Funcionario, error) {
	return u.repo.FindAll(ctx)
}

func (u *FuncionarioUseCase) Update(ctx context.Context, f entities.Funcionario) (entities.Funcionario, error) {
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Funcionario{}, err
	}
	updated, err := u.repo.Update(ctx, tx, f)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Funcionario{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Funcionario{}, err
	}
	return updated, nil
}

func (u *FuncionarioUseCase) DeleteByID(ctx context.Context, id int64) error {
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

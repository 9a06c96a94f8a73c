package usecase

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

// IVeiculoUseCase exposes the vehicle CRUD operations.
type IVeiculoUseCase interface {
	Create(ctx context.Context, v entities.Veiculo) (entities.Veiculo, error)
	FindAll(ctx context.Context) ([]entities.Veiculo, error)
	Update(ctx context.Context, v entities.Veiculo) (entities.Veiculo, error)
	DeleteByID(ctx context.Context, id int64) error
}

type VeiculoUseCase struct {
	repo interfaces.IVeiculoRepository
	txm  interfaces.ITxManager
}

var _ IVeiculoUseCase = (*VeiculoUseCase)(nil)

func NewVeiculoUseCase(repo interfaces.IVeiculoRepository, txm interfaces.ITxManager) *VeiculoUseCase {
	return &VeiculoUseCase{repo: repo, txm: txm}
}

func (u *VeiculoUseCase) Create(ctx context.Context, v entities.Veiculo) (entities.Veiculo, error) {
	if v.ID != 0 {
		return entities.Veiculo{}, ErrCreateWithID
	}
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Veiculo{}, err
	}
	saved, err := u.repo.Save(ctx, tx, v)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Veiculo{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Veiculo{}, err
	}
	return saved, nil
}

func (u *VeiculoUseCase) FindAll(ctx context.Context) ([]entities.Veiculo, error) {
	return u.repo.FindAll(ctx)
}

func (u *VeiculoUseCase) Update(ctx context.Context, v entities.Veiculo) (entities.Veiculo, error) {
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Veiculo{}, err
	}
	updated, err := u.repo.Update(ctx, tx, v)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Veiculo{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Veiculo{}, err
	}
	return updated, nil
}

func (u *VeiculoUseCase) DeleteByID(ctx context.Context, id int64) error {
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

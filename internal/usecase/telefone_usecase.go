package usecase

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

// ITelefoneUseCase exposes the phone number CRUD operations.
type ITelefoneUseCase interface {
	Create(ctx context.Context, t entities.Telefone) (entities.Telefone, error)
	FindAll(ctx context.Context) ([]entities.Telefone, error)
	Update(ctx context.Context, t entities.Telefone) (entities.Telefone, error)
	DeleteByID(ctx context.Context, id int64) error
}

type TelefoneUseCase struct {
	repo interfaces.ITelefoneRepository
	txm  interfaces.ITxManager
}

var _ ITelefoneUseCase = (*TelefoneUseCase)(nil)

func NewTelefoneUseCase(repo interfaces.ITelefoneRepository, txm interfaces.ITxManager) *TelefoneUseCase {
	return &TelefoneUseCase{repo: repo, txm: txm}
}

func (u *TelefoneUseCase) Create(ctx context.Context, t entities.Telefone) (entities.Telefone, error) {
	if t.ID != 0 {
		return entities.Telefone{}, ErrCreateWithID
	}
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Telefone{}, err
	}
	saved, err := u.repo.Save(ctx, tx, t)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Telefone{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Telefone{}, err
	}
	return saved, nil
}

func (u *TelefoneUseCase) FindAll(ctx context.Context) ([]entities.Telefone, error) {
	return u.repo.FindAll(ctx)
}

func (u *TelefoneUseCase) Update(ctx context.Context, t entities.Telefone) (entities.Telefone, error) {
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Telefone{}, err
	}
	updated, err := u.repo.Update(ctx, tx, t)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Telefone{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Telefone{}, err
	}
	return updated, nil
}

func (u *TelefoneUseCase) DeleteByID(ctx context.Context, id int64) error {
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

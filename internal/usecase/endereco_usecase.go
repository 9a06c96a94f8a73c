package usecase

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

// IEnderecoUseCase exposes the address CRUD operations.
type IEnderecoUseCase interface {
	Create(ctx context.Context, e entities.Endereco) (entities.Endereco, error)
	FindAll(ctx context.Context) ([]entities.Endereco, error)
	Update(ctx context.Context, e entities.Endereco) (entities.Endereco, error)
	DeleteByID(ctx context.Context, id int64) error
}

// EnderecoUseCase wraps each repository call in a single-attempt transaction:
// acquire, delegate, commit on success, rollback and propagate on failure.
type EnderecoUseCase struct {
	repo interfaces.IEnderecoRepository
	txm  interfaces.ITxManager
}

var _ IEnderecoUseCase = (*EnderecoUseCase)(nil)

func NewEnderecoUseCase(repo interfaces.IEnderecoRepository, txm interfaces.ITxManager) *EnderecoUseCase {
	return &EnderecoUseCase{repo: repo, txm: txm}
}

// Create persists a new address. A record that already claims an id cannot be
// created again.
func (u *EnderecoUseCase) Create(ctx context.Context, e entities.Endereco) (entities.Endereco, error) {
	if e.ID != 0 {
		return entities.Endereco{}, ErrCreateWithID
	}
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Endereco{}, err
	}
	saved, err := u.repo.Save(ctx, tx, e)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Endereco{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Endereco{}, err
	}
	return saved, nil
}

// FindAll is a passthrough; reads do not need a transaction.
func (u *EnderecoUseCase) FindAll(ctx context.Context) ([]entities.Endereco, error) {
	return u.repo.FindAll(ctx)
}

func (u *EnderecoUseCase) Update(ctx context.Context, e entities.Endereco) (entities.Endereco, error) {
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Endereco{}, err
	}
	updated, err := u.repo.Update(ctx, tx, e)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Endereco{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Endereco{}, err
	}
	return updated, nil
}

func (u *EnderecoUseCase) DeleteByID(ctx context.Context, id int64) error {
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

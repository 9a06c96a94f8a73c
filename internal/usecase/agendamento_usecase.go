package usecase

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"
)

// IAgendamentoUseCase exposes the appointment CRUD operations.
type IAgendamentoUseCase interface {
	Create(ctx context.Context, a entities.Agendamento) (entities.Agendamento, error)
	FindAll(ctx context.Context) ([]entities.Agendamento, error)
	Update(ctx context.Context, a entities.Agendamento) (entities.Agendamento, error)
	DeleteByID(ctx context.Context, id int64) error
}

// AgendamentoUseCase wraps each repository call in a single-attempt transaction:
// acquire, delegate, commit on success, rollback and propagate on failure.
type AgendamentoUseCase struct {
	repo interfaces.IAgendamentoRepository
	txm  interfaces.ITxManager
}

var _ IAgendamentoUseCase = (*AgendamentoUseCase)(nil)

func NewAgendamentoUseCase(repo interfaces.IAgendamentoRepository, txm interfaces.ITxManager) *AgendamentoUseCase {
	return &AgendamentoUseCase{repo: repo, txm: txm}
}

// Create persists a new appointment. A record that already claims an id cannot be
// created again.
func (u *AgendamentoUseCase) Create(ctx context.Context, a entities.Agendamento) (entities.Agendamento, error) {
	if a.ID != 0 {
		return entities.Agendamento{}, ErrCreateWithID
	}
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Agendamento{}, err
	}
	saved, err := u.repo.Save(ctx, tx, a)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Agendamento{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Agendamento{}, err
	}
	return saved, nil
}

func (u *AgendamentoUseCase) FindAll(ctx context.Context) ([]entities.Agendamento, error) {
	return u.repo.FindAll(ctx)
}

func (u *AgendamentoUseCase) Update(ctx context.Context, a entities.Agendamento) (entities.Agendamento, error) {
	tx, err := u.txm.Begin(ctx)
	if err != nil {
		return entities.Agendamento{}, err
	}
	updated, err := u.repo.Update(ctx, tx, a)
	if err != nil {
		_ = tx.Rollback(ctx)
		return entities.Agendamento{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return entities.Agendamento{}, err
	}
	return updated, nil
}

func (u *AgendamentoUseCase) DeleteByID(ctx context.Context, id int64) error {
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

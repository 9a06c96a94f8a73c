package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_xpto/internal/adapter/persistence/repository"
	"oficina_xpto/internal/domain/entities"
	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClienteUseCase_Create(t *testing.T) {
	t.Run("create with id is rejected", func(t *testing.T) {
		uc := NewClienteUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Cliente{ID: 7, Nome: "Maria"})
		if !errors.Is(err, ErrCreateWithID) {
			t.Fatalf("expected ErrCreateWithID, got %v", err)
		}
	})

	t.Run("begin failure is propagated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		txm := mock_interfaces.NewMockITxManager(ctrl)
		uc := NewClienteUseCase(mock_interfaces.NewMockIClienteRepository(ctrl), txm)

		txm.EXPECT().Begin(gomock.Any()).Return(nil, errors.New("no conn"))

		_, err := uc.Create(context.Background(), entities.Cliente{Nome: "Maria"})
		if err == nil || err.Error() != "no conn" {
			t.Fatalf("expected begin error, got %v", err)
		}
	})

	t.Run("save failure rolls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		txm := mock_interfaces.NewMockITxManager(ctrl)
		tx := mock_interfaces.NewMockTx(ctrl)
		uc := NewClienteUseCase(repo, txm)

		txm.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		repo.EXPECT().Save(gomock.Any(), tx, gomock.Any()).Return(entities.Cliente{}, repository.ErrNotSaved)
		tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		_, err := uc.Create(context.Background(), entities.Cliente{Nome: "Maria"})
		if !errors.Is(err, repository.ErrNotSaved) {
			t.Fatalf("expected ErrNotSaved, got %v", err)
		}
	})

	t.Run("create success commits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		txm := mock_interfaces.NewMockITxManager(ctrl)
		tx := mock_interfaces.NewMockTx(ctrl)
		uc := NewClienteUseCase(repo, txm)

		in := entities.Cliente{CPF: "123.456.789-00", Nome: "Maria", Email: "maria@example.com", Sexo: "F"}
		txm.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		repo.EXPECT().Save(gomock.Any(), tx, in).Return(entities.Cliente{ID: 1, CPF: in.CPF, Nome: in.Nome, Email: in.Email, Sexo: in.Sexo}, nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)

		created, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != 1 || created.Nome != "Maria" {
			t.Fatalf("unexpected cliente: %+v", created)
		}
	})
}

func TestClienteUseCase_FindAll(t *testing.T) {
	t.Run("list error is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo, nil)

		repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db down"))

		_, err := uc.FindAll(context.Background())
		if err == nil || err.Error() != "db down" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("list success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo, nil)

		repo.EXPECT().FindAll(gomock.Any()).Return([]entities.Cliente{{ID: 1}, {ID: 2}}, nil)

		list, err := uc.FindAll(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("expected 2 clientes, got %d", len(list))
		}
	})
}

func TestClienteUseCase_Update(t *testing.T) {
	t.Run("unknown id rolls back with not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		txm := mock_interfaces.NewMockITxManager(ctrl)
		tx := mock_interfaces.NewMockTx(ctrl)
		uc := NewClienteUseCase(repo, txm)

		txm.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		repo.EXPECT().Update(gomock.Any(), tx, gomock.Any()).Return(entities.Cliente{}, repository.ErrNotFound)
		tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		_, err := uc.Update(context.Background(), entities.Cliente{ID: 99, Nome: "Maria"})
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("update success commits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		txm := mock_interfaces.NewMockITxManager(ctrl)
		tx := mock_interfaces.NewMockTx(ctrl)
		uc := NewClienteUseCase(repo, txm)

		in := entities.Cliente{ID: 3, Nome: "Maria Silva"}
		txm.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		repo.EXPECT().Update(gomock.Any(), tx, in).Return(in, nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)

		updated, err := uc.Update(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Nome != "Maria Silva" {
			t.Fatalf("unexpected cliente: %+v", updated)
		}
	})
}

func TestClienteUseCase_DeleteByID(t *testing.T) {
	t.Run("unknown id rolls back with not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		txm := mock_interfaces.NewMockITxManager(ctrl)
		tx := mock_interfaces.NewMockTx(ctrl)
		uc := NewClienteUseCase(repo, txm)

		txm.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		repo.EXPECT().DeleteByID(gomock.Any(), tx, int64(99)).Return(repository.ErrNotFound)
		tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		if err := uc.DeleteByID(context.Background(), 99); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("delete success commits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		txm := mock_interfaces.NewMockITxManager(ctrl)
		tx := mock_interfaces.NewMockTx(ctrl)
		uc := NewClienteUseCase(repo, txm)

		txm.EXPECT().Begin(gomock.Any()).Return(tx, nil)
		repo.EXPECT().DeleteByID(gomock.Any(), tx, int64(3)).Return(nil)
		tx.EXPECT().Commit(gomock.Any()).Return(nil)

		if err := uc.DeleteByID(context.Background(), 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

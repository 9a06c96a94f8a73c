package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// IFuncionarioRepository abstracts PostgreSQL persistence for Funcionario.
type IFuncionarioRepository interface {
	FindAll(ctx context.Context) ([]entities.Funcionario, error)
	Save(ctx context.Context, tx database.DBTX, f entities.Funcionario) (entities.Funcionario, error)
	Update(ctx context.Context, tx database.DBTX, f entities.Funcionario) (entities.Funcionario, error)
	DeleteByID(ctx context.Context, tx database.DBTX, id int64) error
}

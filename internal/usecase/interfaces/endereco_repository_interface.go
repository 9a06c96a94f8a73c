package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// IEnderecoRepository abstracts PostgreSQL persistence for Endereco.
type IEnderecoRepository interface {
	FindAll(ctx context.Context) ([]entities.Endereco, error)
	Save(ctx context.Context, tx database.DBTX, e entities.Endereco) (entities.Endereco, error)
	Update(ctx context.Context, tx database.DBTX, e entities.Endereco) (entities.Endereco, error)
	DeleteByID(ctx context.Context, tx database.DBTX, id int64) error
}

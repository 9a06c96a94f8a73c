package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// IClienteRepository abstracts PostgreSQL persistence for Cliente.
type IClienteRepository interface {
	FindAll(ctx context.Context) ([]entities.Cliente, error)
	Save(ctx context.Context, tx database.DBTX, c entities.Cliente) (entities.Cliente, error)
	Update(ctx context.Context, tx database.DBTX, c entities.Cliente) (entities.Cliente, error)
	DeleteByID(ctx context.Context, tx database.DBTX, id int64) error
}

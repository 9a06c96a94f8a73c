package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// IVeiculoRepository abstracts PostgreSQL persistence for Veiculo.
type IVeiculoRepository interface {
	FindAll(ctx context.Context) ([]entities.Veiculo, error)
	Save(ctx context.Context, tx database.DBTX, v entities.Veiculo) (entities.Veiculo, error)
	Update(ctx context.Context, tx database.DBTX, v entities.Veiculo) (entities.Veiculo, error)
	DeleteByID(ctx context.Context, tx database.DBTX, id int64) error
}

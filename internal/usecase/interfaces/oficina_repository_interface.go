package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// IOficinaRepository abstracts PostgreSQL persistence for Oficina.
type IOficinaRepository interface {
	FindAll(ctx context.Context) ([]entities.Oficina, error)
	Save(ctx context.Context, tx database.DBTX, o entities.Oficina) (entities.Oficina, error)
	Update(ctx context.Context, tx database.DBTX, o entities.Oficina) (entities.Oficina, error)
	DeleteByID(ctx context.Context, tx database.DBTX, id int64) error
}

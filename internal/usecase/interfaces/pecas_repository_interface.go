package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// IPecaRepository abstracts PostgreSQL persistence for Peca.
type IPecaRepository interface {
	FindAll(ctx context.Context) ([]entities.Peca, error)
	Save(ctx context.Context, tx database.DBTX, p entities.Peca) (entities.Peca, error)
	Update(ctx context.Context, tx database.DBTX, p entities.Peca) (entities.Peca, error)
	DeleteByID(ctx context.Context, tx database.DBTX, id int64) error
}

package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// IFalhaRepository abstracts PostgreSQL persistence for Falha.
type IFalhaRepository interface {
	FindAll(ctx context.Context) ([]entities.Falha, error)
	Save(ctx context.Context, tx database.DBTX, f entities.Falha) (entities.Falha, error)
	Update(ctx context.Context, tx database.DBTX, f entities.Falha) (entities.Falha, error)
	DeleteByID(ctx context.Context, tx database.DBTX, id int64) error
}

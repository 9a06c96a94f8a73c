package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// ITelefoneRepository abstracts PostgreSQL persistence for Telefone.
type ITelefoneRepository interface {
	FindAll(ctx context.Context) ([]entities.Telefone, error)
	Save(ctx context.Context, tx database.DBTX, t entities.Telefone) (entities.Telefone, error)
	Update(ctx context.Context, tx database.DBTX, t entities.Telefone) (entities.Telefone, error)
	DeleteByID(ctx context.Context, tx database.DBTX, id int64) error
}

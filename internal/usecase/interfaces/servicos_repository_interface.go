package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// IServicoRepository abstracts PostgreSQL persistence for Servico.
type IServicoRepository interface {
	FindAll(ctx context.Context) ([]entities.Servico, error)
	Save(ctx context.Context, tx database.DBTX, s entities.Servico) (entities.Servico, error)
	Update(ctx context.Context, tx database.DBTX, s entities.Servico) (entities.Servico, error)
	DeleteByID(ctx context.Context, tx database.DBTX, id int64) error
}

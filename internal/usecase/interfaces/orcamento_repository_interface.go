package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// IOrcamentoRepository abstracts PostgreSQL persistence for Orcamento.
type IOrcamentoRepository interface {
	FindAll(ctx context.Context) ([]entities.Orcamento, error)
	Save(ctx context.Context, tx database.DBTX, o entities.Orcamento) (entities.Orcamento, error)
	Update(ctx context.Context, tx database.DBTX, o entities.Orcamento) (entities.Orcamento, error)
	DeleteByID(ctx context.Context, tx database.DBTX, id int64) error
}

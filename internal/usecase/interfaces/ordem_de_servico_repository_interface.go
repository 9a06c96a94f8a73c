package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// IOrdemDeServicoRepository abstracts PostgreSQL persistence for OrdemDeServico.
type IOrdemDeServicoRepository interface {
	FindAll(ctx context.Context) ([]entities.OrdemDeServico, error)
	Save(ctx context.Context, tx database.DBTX, o entities.OrdemDeServico) (entities.OrdemDeServico, error)
	Update(ctx context.Context, tx database.DBTX, o entities.OrdemDeServico) (entities.OrdemDeServico, error)
	DeleteByID(ctx context.Context, tx database.DBTX, id int64) error
}

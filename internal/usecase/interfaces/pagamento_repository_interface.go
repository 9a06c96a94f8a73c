package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// IPagamentoRepository abstracts PostgreSQL persistence for Pagamento.
//
// FindByID and UpdateGateway exist on top of the CRUD template because the
// payment processing flow needs to load a single payment and record the
// provider outcome.
type IPagamentoRepository interface {
	FindAll(ctx context.Context) ([]entities.Pagamento, error)
	FindByID(ctx context.Context, id int64) (entities.Pagamento, error)
	Save(ctx context.Context, tx database.DBTX, p entities.Pagamento) (entities.Pagamento, error)
	Update(ctx context.Context, tx database.DBTX, p entities.Pagamento) (entities.Pagamento, error)
	UpdateGateway(ctx context.Context, tx database.DBTX, id int64, status, referencia string) error
	DeleteByID(ctx context.Context, tx database.DBTX, id int64) error
}

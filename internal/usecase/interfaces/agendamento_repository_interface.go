package interfaces

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// IAgendamentoRepository abstracts PostgreSQL persistence for Agendamento.
type IAgendamentoRepository interface {
	FindAll(ctx context.Context) ([]entities.Agendamento, error)
	Save(ctx context.Context, tx database.DBTX, a entities.Agendamento) (entities.Agendamento, error)
	Update(ctx context.Context, tx database.DBTX, a entities.Agendamento) (entities.Agendamento, error)
	DeleteByID(ctx context.Context, tx database.DBTX, id int64) error
}

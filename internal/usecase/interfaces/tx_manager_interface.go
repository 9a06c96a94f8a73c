package interfaces

import (
	"context"

	"oficina_xpto/internal/infrastructure/database"
)

// ITxManager hands out the write transaction every mutating usecase call
// runs in: acquire, delegate to the repository, commit on success, rollback
// on failure. Satisfied by database.PostgresClient.
type ITxManager interface {
	Begin(ctx context.Context) (database.Tx, error)
}

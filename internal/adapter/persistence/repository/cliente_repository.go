package repository

import (
	"context"
	"log"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// ClienteRepository owns the SQL for t_cliente.
type ClienteRepository struct {
	db database.DBTX
}

func NewClienteRepository(db database.DBTX) *ClienteRepository {
	return &ClienteRepository{db: db}
}

// FindAll returns every customer. Reads run straight on the pool, no
// transaction involved.
func (r *ClienteRepository) FindAll(ctx context.Context) ([]entities.Cliente, error) {
	const q = `SELECT id_cliente, nr_cpf, nm_cliente, ds_email, sx_sexo FROM t_cliente`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		log.Printf("[cliente][repository] list failed err=%v", err)
		return nil, err
	}
	defer rows.Close()

	var out []entities.Cliente
	for rows.Next() {
		var c entities.Cliente
		if err := rows.Scan(&c.ID, &c.CPF, &c.Nome, &c.Email, &c.Sexo); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Save inserts the customer inside the caller's transaction and fills in the
// generated id in the same round trip.
func (r *ClienteRepository) Save(ctx context.Context, tx database.DBTX, c entities.Cliente) (entities.Cliente, error) {
	const q = `INSERT INTO t_cliente (nr_cpf, nm_cliente, ds_email, sx_sexo)
	           VALUES ($1, $2, $3, $4)
	           RETURNING id_cliente`
	if err := tx.QueryRow(ctx, q, c.CPF, c.Nome, c.Email, c.Sexo).Scan(&c.ID); err != nil {
		return entities.Cliente{}, err
	}
	if c.ID == 0 {
		return entities.Cliente{}, ErrNotSaved
	}
	return c, nil
}

func (r *ClienteRepository) Update(ctx context.Context, tx database.DBTX, c entities.Cliente) (entities.Cliente, error) {
	const q = `UPDATE t_cliente
	           SET nr_cpf = $1, nm_cliente = $2, ds_email = $3, sx_sexo = $4
	           WHERE id_cliente = $5`
	tag, err := tx.Exec(ctx, q, c.CPF, c.Nome, c.Email, c.Sexo, c.ID)
	if err != nil {
		return entities.Cliente{}, err
	}
	if tag.RowsAffected() == 0 {
		return entities.Cliente{}, ErrNotFound
	}
	return c, nil
}

func (r *ClienteRepository) DeleteByID(ctx context.Context, tx database.DBTX, id int64) error {
	const q = `DELETE FROM t_cliente WHERE id_cliente = $1`
	tag, err := tx.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

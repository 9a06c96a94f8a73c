package repository

import (
	"context"
	"log"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// OficinaRepository owns the SQL for t_oficina.
type OficinaRepository struct {
	db database.DBTX
}

func NewOficinaRepository(db database.DBTX) *OficinaRepository {
	return &OficinaRepository{db: db}
}

func (r *OficinaRepository) FindAll(ctx context.Context) ([]entities.Oficina, error) {
	const q = `SELECT id_oficina, nr_cnpj, nm_oficina, ds_email FROM t_oficina`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		log.Printf("[oficina][repository] list failed err=%v", err)
		return nil, err
	}
	defer rows.Close()

	var out []entities.Oficina
	for rows.Next() {
		var o entities.Oficina
		if err := rows.Scan(&o.ID, &o.CNPJ, &o.Nome, &o.Email); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *OficinaRepository) Save(ctx context.Context, tx database.DBTX, o entities.Oficina) (entities.Oficina, error) {
	const q = `INSERT INTO t_oficina (nr_cnpj, nm_oficina, ds_email)
	           VALUES ($1, $2, $3)
	           RETURNING id_oficina`
	if err := tx.QueryRow(ctx, q, o.CNPJ, o.Nome, o.Email).Scan(&o.ID); err != nil {
		return entities.Oficina{}, err
	}
	if o.ID == 0 {
		return entities.Oficina{}, ErrNotSaved
	}
	return o, nil
}

func (r *OficinaRepository) Update(ctx context.Context, tx database.DBTX, o entities.Oficina) (entities.Oficina, error) {
	const q = `UPDATE t_oficina
	           SET nr_cnpj = $1, nm_oficina = $2, ds_email = $3
	           WHERE id_oficina = $4`
	tag, err := tx.Exec(ctx, q, o.CNPJ, o.Nome, o.Email, o.ID)
	if err != nil {
		return entities.Oficina{}, err
	}
	if tag.RowsAffected() == 0 {
		return entities.Oficina{}, ErrNotFound
	}
	return o, nil
}

func (r *OficinaRepository) DeleteByID(ctx context.Context, tx database.DBTX, id int64) error {
	const q = `DELETE FROM t_oficina WHERE id_oficina = $1`
	tag, err := tx.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

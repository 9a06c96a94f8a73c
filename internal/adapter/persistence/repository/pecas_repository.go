package repository

import (
	"context"
	"log"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// PecaRepository owns the SQL for t_pecas.
type PecaRepository struct {
	db database.DBTX
}

func NewPecaRepository(db database.DBTX) *PecaRepository {
	return &PecaRepository{db: db}
}

func (r *PecaRepository) FindAll(ctx context.Context) ([]entities.Peca, error) {
	const q = `SELECT id_peca, nm_marca, qt_quantidade, vl_valor, ds_descricao, id_orcamento, id_servico FROM t_pecas`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		log.Printf("[peca][repository] list failed err=%v", err)
		return nil, err
	}
	defer rows.Close()

	var out []entities.Peca
	for rows.Next() {
		var p entities.Peca
		if err := rows.Scan(&p.ID, &p.Marca, &p.Quantidade, &p.Valor, &p.Descricao, &p.IDOrcamento, &p.IDServico); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PecaRepository) Save(ctx context.Context, tx database.DBTX, p entities.Peca) (entities.Peca, error) {
	const q = `INSERT INTO t_pecas (nm_marca, qt_quantidade, vl_valor, ds_descricao, id_orcamento, id_servico)
	           VALUES ($1, $2, $3, $4, $5, $6)
	           RETURNING id_peca`
	if err := tx.QueryRow(ctx, q, p.Marca, p.Quantidade, p.Valor, p.Descricao, p.IDOrcamento, p.IDServico).Scan(&p.ID); err != nil {
		return entities.Peca{}, err
	}
	if p.ID == 0 {
		return entities.Peca{}, ErrNotSaved
	}
	return p, nil
}

func (r *PecaRepository) Update(ctx context.Context, tx database.DBTX, p entities.Peca) (entities.Peca, error) {
	const q = `UPDATE t_pecas
	           SET nm_marca = $1, qt_quantidade = $2, vl_valor = $3, ds_descricao = $4, id_orcamento = $5, id_servico = $6
	           WHERE id_peca = $7`
	tag, err := tx.Exec(ctx, q, p.Marca, p.Quantidade, p.Valor, p.Descricao, p.IDOrcamento, p.IDServico, p.ID)
	if err != nil {
		return entities.Peca{}, err
	}
	if tag.RowsAffected() == 0 {
		return entities.Peca{}, ErrNotFound
	}
	return p, nil
}

func (r *PecaRepository) DeleteByID(ctx context.Context, tx database.DBTX, id int64) error {
	const q = `DELETE FROM t_pecas WHERE id_peca = $1`
	tag, err := tx.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

package repository

import (
	"context"
	"log"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// FalhaRepository owns the SQL for t_falhas.
type FalhaRepository struct {
	db database.DBTX
}

func NewFalhaRepository(db database.DBTX) *FalhaRepository {
	return &FalhaRepository{db: db}
}

func (r *FalhaRepository) FindAll(ctx context.Context) ([]entities.Falha, error) {
	const q = `SELECT id_falha, ds_falha, ds_solucao, id_orcamento, id_veiculo, st_gravidade FROM t_falhas`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		log.Printf("[falha][repository] list failed err=%v", err)
		return nil, err
	}
	defer rows.Close()

	var out []entities.Falha
	for rows.Next() {
		var f entities.Falha
		if err := rows.Scan(&f.ID, &f.DescricaoFalha, &f.DescricaoSolucao, &f.IDOrcamento, &f.IDVeiculo, &f.Gravidade); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *FalhaRepository) Save(ctx context.Context, tx database.DBTX, f entities.Falha) (entities.Falha, error) {
	const q = `INSERT INTO t_falhas (ds_falha, ds_solucao, id_orcamento, id_veiculo, st_gravidade)
	           VALUES ($1, $2, $3, $4, $5)
	           RETURNING id_falha`
	if err := tx.QueryRow(ctx, q, f.DescricaoFalha, f.DescricaoSolucao, f.IDOrcamento, f.IDVeiculo, f.Gravidade).Scan(&f.ID); err != nil {
		return entities.Falha{}, err
	}
	if f.ID == 0 {
		return entities.Falha{}, ErrNotSaved
	}
	return f, nil
}

func (r *FalhaRepository) Update(ctx context.Context, tx database.DBTX, f entities.Falha) (entities.Falha, error) {
	const q = `UPDATE t_falhas
	           SET ds_falha = $1, ds_solucao = $2, id_orcamento = $3, id_veiculo = $4, st_gravidade = $5
	           WHERE id_falha = $6`
	tag, err := tx.Exec(ctx, q, f.DescricaoFalha, f.DescricaoSolucao, f.IDOrcamento, f.IDVeiculo, f.Gravidade, f.ID)
	if err != nil {
		return entities.Falha{}, err
	}
	if tag.RowsAffected() == 0 {
		return entities.Falha{}, ErrNotFound
	}
	return f, nil
}

func (r *FalhaRepository) DeleteByID(ctx context.Context, tx database.DBTX, id int64) error {
	const q = `DELETE FROM t_falhas WHERE id_falha = $1`
	tag, err := tx.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

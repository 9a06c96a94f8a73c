package repository

import (
	"context"
	"log"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// OrcamentoRepository owns the SQL for t_orcamento.
type OrcamentoRepository struct {
	db database.DBTX
}

func NewOrcamentoRepository(db database.DBTX) *OrcamentoRepository {
	return &OrcamentoRepository{db: db}
}

func (r *OrcamentoRepository) FindAll(ctx context.Context) ([]entities.Orcamento, error) {
	const q = `SELECT id_orcamento, vl_orcamento, st_situacao, id_veiculo, id_oficina, id_servico, id_peca FROM t_orcamento`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		log.Printf("[orcamento][repository] list failed err=%v", err)
		return nil, err
	}
	defer rows.Close()

	var out []entities.Orcamento
	for rows.Next() {
		var o entities.Orcamento
		if err := rows.Scan(&o.ID, &o.ValorOrcamento, &o.Situacao, &o.IDVeiculo, &o.IDOficina, &o.IDServico, &o.IDPeca); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *OrcamentoRepository) Save(ctx context.Context, tx database.DBTX, o entities.Orcamento) (entities.Orcamento, error) {
	const q = `INSERT INTO t_orcamento (vl_orcamento, st_situacao, id_veiculo, id_oficina, id_servico, id_peca)
	           VALUES ($1, $2, $3, $4, $5, $6)
	           RETURNING id_orcamento`
	if err := tx.QueryRow(ctx, q, o.ValorOrcamento, o.Situacao, o.IDVeiculo, o.IDOficina, o.IDServico, o.IDPeca).Scan(&o.ID); err != nil {
		return entities.Orcamento{}, err
	}
	if o.ID == 0 {
		return entities.Orcamento{}, ErrNotSaved
	}
	return o, nil
}

func (r *OrcamentoRepository) Update(ctx context.Context, tx database.DBTX, o entities.Orcamento) (entities.Orcamento, error) {
	const q = `UPDATE t_orcamento
	           SET vl_orcamento = $1, st_situacao = $2, id_veiculo = $3, id_oficina = $4, id_servico = $5, id_peca = $6
	           WHERE id_orcamento = $7`
	tag, err := tx.Exec(ctx, q, o.ValorOrcamento, o.Situacao, o.IDVeiculo, o.IDOficina, o.IDServico, o.IDPeca, o.ID)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if tag.RowsAffected() == 0 {
		return entities.Orcamento{}, ErrNotFound
	}
	return o, nil
}

func (r *OrcamentoRepository) DeleteByID(ctx context.Context, tx database.DBTX, id int64) error {
	const q = `DELETE FROM t_orcamento WHERE id_orcamento = $1`
	tag, err := tx.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

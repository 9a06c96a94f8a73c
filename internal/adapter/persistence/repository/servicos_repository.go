package repository

import (
	"context"
	"log"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// ServicoRepository owns the SQL for t_servicos.
type ServicoRepository struct {
	db database.DBTX
}

func NewServicoRepository(db database.DBTX) *ServicoRepository {
	return &ServicoRepository{db: db}
}

func (r *ServicoRepository) FindAll(ctx context.Context) ([]entities.Servico, error) {
	const q = `SELECT id_servico, st_tipo_servico, ds_servico, hr_tempo_estimado, vl_custo, id_orcamento FROM t_servicos`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		log.Printf("[servico][repository] list failed err=%v", err)
		return nil, err
	}
	defer rows.Close()

	var out []entities.Servico
	for rows.Next() {
		var s entities.Servico
		if err := rows.Scan(&s.ID, &s.TipoServico, &s.Descricao, &s.TempoEstimado, &s.ValorServico, &s.IDOrcamento); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ServicoRepository) Save(ctx context.Context, tx database.DBTX, s entities.Servico) (entities.Servico, error) {
	const q = `INSERT INTO t_servicos (st_tipo_servico, ds_servico, hr_tempo_estimado, vl_custo, id_orcamento)
	           VALUES ($1, $2, $3, $4, $5)
	           RETURNING id_servico`
	if err := tx.QueryRow(ctx, q, s.TipoServico, s.Descricao, s.TempoEstimado, s.ValorServico, s.IDOrcamento).Scan(&s.ID); err != nil {
		return entities.Servico{}, err
	}
	if s.ID == 0 {
		return entities.Servico{}, ErrNotSaved
	}
	return s, nil
}

func (r *ServicoRepository) Update(ctx context.Context, tx database.DBTX, s entities.Servico) (entities.Servico, error) {
	const q = `UPDATE t_servicos
	           SET st_tipo_servico = $1, ds_servico = $2, hr_tempo_estimado = $3, vl_custo = $4, id_orcamento = $5
	           WHERE id_servico = $6`
	tag, err := tx.Exec(ctx, q, s.TipoServico, s.Descricao, s.TempoEstimado, s.ValorServico, s.IDOrcamento, s.ID)
	if err != nil {
		return entities.Servico{}, err
	}
	if tag.RowsAffected() == 0 {
		return entities.Servico{}, ErrNotFound
	}
	return s, nil
}

func (r *ServicoRepository) DeleteByID(ctx context.Context, tx database.DBTX, id int64) error {
	const q = `DELETE FROM t_servicos WHERE id_servico = $1`
	tag, err := tx.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

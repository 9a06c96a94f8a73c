package repository

import (
	"context"
	"log"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// OrdemDeServicoRepository owns the SQL for t_ordem_de_servico.
type OrdemDeServicoRepository struct {
	db database.DBTX
}

func NewOrdemDeServicoRepository(db database.DBTX) *OrdemDeServicoRepository {
	return &OrdemDeServicoRepository{db: db}
}

func (r *OrdemDeServicoRepository) FindAll(ctx context.Context) ([]entities.OrdemDeServico, error) {
	const q = `SELECT id_os, st_status, id_orcamento, id_funcionario, id_veiculo, dt_inicio, dt_fim, hr_inicio, hr_fim
	           FROM t_ordem_de_servico`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		log.Printf("[ordem_de_servico][repository] list failed err=%v", err)
		return nil, err
	}
	defer rows.Close()

	var out []entities.OrdemDeServico
	for rows.Next() {
		var o entities.OrdemDeServico
		if err := rows.Scan(&o.ID, &o.Status, &o.IDOrcamento, &o.IDFuncionario, &o.IDVeiculo, &o.DataInicio, &o.DataFim, &o.HoraInicio, &o.HoraFim); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *OrdemDeServicoRepository) Save(ctx context.Context, tx database.DBTX, o entities.OrdemDeServico) (entities.OrdemDeServico, error) {
	const q = `INSERT INTO t_ordem_de_servico (st_status, id_orcamento, id_funcionario, id_veiculo, dt_inicio, dt_fim, hr_inicio, hr_fim)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	           RETURNING id_os`
	if err := tx.QueryRow(ctx, q, o.Status, o.IDOrcamento, o.IDFuncionario, o.IDVeiculo, o.DataInicio, o.DataFim, o.HoraInicio, o.HoraFim).Scan(&o.ID); err != nil {
		return entities.OrdemDeServico{}, err
	}
	if o.ID == 0 {
		return entities.OrdemDeServico{}, ErrNotSaved
	}
	return o, nil
}

func (r *OrdemDeServicoRepository) Update(ctx context.Context, tx database.DBTX, o entities.OrdemDeServico) (entities.OrdemDeServico, error) {
	const q = `UPDATE t_ordem_de_servico
	           SET st_status = $1, id_orcamento = $2, id_funcionario = $3, id_veiculo = $4, dt_inicio = $5, dt_fim = $6, hr_inicio = $7, hr_fim = $8
	           WHERE id_os = $9`
	tag, err := tx.Exec(ctx, q, o.Status, o.IDOrcamento, o.IDFuncionario, o.IDVeiculo, o.DataInicio, o.DataFim, o.HoraInicio, o.HoraFim, o.ID)
	if err != nil {
		return entities.OrdemDeServico{}, err
	}
	if tag.RowsAffected() == 0 {
		return entities.OrdemDeServico{}, ErrNotFound
	}
	return o, nil
}

func (r *OrdemDeServicoRepository) DeleteByID(ctx context.Context, tx database.DBTX, id int64) error {
	const q = `DELETE FROM t_ordem_de_servico WHERE id_os = $1`
	tag, err := tx.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

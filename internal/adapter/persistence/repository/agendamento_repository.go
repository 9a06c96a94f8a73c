package repository

import (
	"context"
	"log"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// AgendamentoRepository owns the SQL for t_agendamento.
type AgendamentoRepository struct {
	db database.DBTX
}

func NewAgendamentoRepository(db database.DBTX) *AgendamentoRepository {
	return &AgendamentoRepository{db: db}
}

func (r *AgendamentoRepository) FindAll(ctx context.Context) ([]entities.Agendamento, error) {
	const q = `SELECT id_agendamento, dt_agendamento, hr_agendamento, id_cliente, id_oficina FROM t_agendamento`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		log.Printf("[agendamento][repository] list failed err=%v", err)
		return nil, err
	}
	defer rows.Close()

	var out []entities.Agendamento
	for rows.Next() {
		var a entities.Agendamento
		if err := rows.Scan(&a.ID, &a.DataAgendamento, &a.HoraAgendamento, &a.IDCliente, &a.IDOficina); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AgendamentoRepository) Save(ctx context.Context, tx database.DBTX, a entities.Agendamento) (entities.Agendamento, error) {
	const q = `INSERT INTO t_agendamento (dt_agendamento, hr_agendamento, id_cliente, id_oficina)
	           VALUES ($1, $2, $3, $4)
	           RETURNING id_agendamento`
	if err := tx.QueryRow(ctx, q, a.DataAgendamento, a.HoraAgendamento, a.IDCliente, a.IDOficina).Scan(&a.ID); err != nil {
		return entities.Agendamento{}, err
	}
	if a.ID == 0 {
		return entities.Agendamento{}, ErrNotSaved
	}
	return a, nil
}

func (r *AgendamentoRepository) Update(ctx context.Context, tx database.DBTX, a entities.Agendamento) (entities.Agendamento, error) {
	const q = `UPDATE t_agendamento
	           SET dt_agendamento = $1, hr_agendamento = $2, id_cliente = $3, id_oficina = $4
	           WHERE id_agendamento = $5`
	tag, err := tx.Exec(ctx, q, a.DataAgendamento, a.HoraAgendamento, a.IDCliente, a.IDOficina, a.ID)
	if err != nil {
		return entities.Agendamento{}, err
	}
	if tag.RowsAffected() == 0 {
		return entities.Agendamento{}, ErrNotFound
	}
	return a, nil
}

func (r *AgendamentoRepository) DeleteByID(ctx context.Context, tx database.DBTX, id int64) error {
	const q = `DELETE FROM t_agendamento WHERE id_agendamento = $1`
	tag, err := tx.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

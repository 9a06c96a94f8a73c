package repository

import (
	"context"
	"errors"
	"log"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"

	"github.com/jackc/pgx/v5"
)

// PagamentoRepository owns the SQL for t_metodo_pagamento.
//
// Besides the CRUD template it exposes FindByID and UpdateGateway, used by
// the payment processing flow.
type PagamentoRepository struct {
	db database.DBTX
}

func NewPagamentoRepository(db database.DBTX) *PagamentoRepository {
	return &PagamentoRepository{db: db}
}

func (r *PagamentoRepository) FindAll(ctx context.Context) ([]entities.Pagamento, error) {
	const q = `SELECT id_pagamento, st_forma_pagamento, st_tipo_pagamento, vl_desconto, id_os, st_status_gateway, ds_referencia_externa
	           FROM t_metodo_pagamento`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		log.Printf("[pagamento][repository] list failed err=%v", err)
		return nil, err
	}
	defer rows.Close()

	var out []entities.Pagamento
	for rows.Next() {
		var p entities.Pagamento
		if err := rows.Scan(&p.ID, &p.FormaPagamento, &p.TipoPagamento, &p.Desconto, &p.IDOrdemDeServico, &p.StatusGateway, &p.ReferenciaExterna); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PagamentoRepository) FindByID(ctx context.Context, id int64) (entities.Pagamento, error) {
	const q = `SELECT id_pagamento, st_forma_pagamento, st_tipo_pagamento, vl_desconto, id_os, st_status_gateway, ds_referencia_externa
	           FROM t_metodo_pagamento WHERE id_pagamento = $1`
	var p entities.Pagamento
	err := r.db.QueryRow(ctx, q, id).Scan(&p.ID, &p.FormaPagamento, &p.TipoPagamento, &p.Desconto, &p.IDOrdemDeServico, &p.StatusGateway, &p.ReferenciaExterna)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Pagamento{}, ErrNotFound
		}
		return entities.Pagamento{}, err
	}
	return p, nil
}

func (r *PagamentoRepository) Save(ctx context.Context, tx database.DBTX, p entities.Pagamento) (entities.Pagamento, error) {
	const q = `INSERT INTO t_metodo_pagamento (st_forma_pagamento, st_tipo_pagamento, vl_desconto, id_os)
	           VALUES ($1, $2, $3, $4)
	           RETURNING id_pagamento`
	if err := tx.QueryRow(ctx, q, p.FormaPagamento, p.TipoPagamento, p.Desconto, p.IDOrdemDeServico).Scan(&p.ID); err != nil {
		return entities.Pagamento{}, err
	}
	if p.ID == 0 {
		return entities.Pagamento{}, ErrNotSaved
	}
	return p, nil
}

func (r *PagamentoRepository) Update(ctx context.Context, tx database.DBTX, p entities.Pagamento) (entities.Pagamento, error) {
	const q = `UPDATE t_metodo_pagamento
	           SET st_forma_pagamento = $1, st_tipo_pagamento = $2, vl_desconto = $3, id_os = $4
	           WHERE id_pagamento = $5`
	tag, err := tx.Exec(ctx, q, p.FormaPagamento, p.TipoPagamento, p.Desconto, p.IDOrdemDeServico, p.ID)
	if err != nil {
		return entities.Pagamento{}, err
	}
	if tag.RowsAffected() == 0 {
		return entities.Pagamento{}, ErrNotFound
	}
	return p, nil
}

// UpdateGateway records the provider outcome for a processed payment.
func (r *PagamentoRepository) UpdateGateway(ctx context.Context, tx database.DBTX, id int64, status, referencia string) error {
	const q = `UPDATE t_metodo_pagamento
	           SET st_status_gateway = $1, ds_referencia_externa = $2
	           WHERE id_pagamento = $3`
	tag, err := tx.Exec(ctx, q, status, referencia, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PagamentoRepository) DeleteByID(ctx context.Context, tx database.DBTX, id int64) error {
	const q = `DELETE FROM t_metodo_pagamento WHERE id_pagamento = $1`
	tag, err := tx.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

package repository

import (
	"context"
	"log"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// FuncionarioRepository owns the SQL for t_funcionario.
type FuncionarioRepository struct {
	db database.DBTX
}

func NewFuncionarioRepository(db database.DBTX) *FuncionarioRepository {
	return &FuncionarioRepository{db: db}
}

func (r *FuncionarioRepository) FindAll(ctx context.Context) ([]entities.Funcionario, error) {
	const q = `SELECT id_funcionario, nr_cpf, nm_funcionario, sx_sexo, ds_funcao, id_oficina FROM t_funcionario`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		log.Printf("[funcionario][repository] list failed err=%v", err)
		return nil, err
	}
	defer rows.Close()

	var out []entities.Funcionario
	for rows.Next() {
		var f entities.Funcionario
		if err := rows.Scan(&f.ID, &f.CPF, &f.Nome, &f.Sexo, &f.Funcao, &f.IDOficina); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *FuncionarioRepository) Save(ctx context.Context, tx database.DBTX, f entities.Funcionario) (entities.Funcionario, error) {
	const q = `INSERT INTO t_funcionario (nr_cpf, nm_funcionario, sx_sexo, ds_funcao, id_oficina)
	           VALUES ($1, $2, $3, $4, $5)
	           RETURNING id_funcionario`
	if err := tx.QueryRow(ctx, q, f.CPF, f.Nome, f.Sexo, f.Funcao, f.IDOficina).Scan(&f.ID); err != nil {
		return entities.Funcionario{}, err
	}
	if f.ID == 0 {
		return entities.Funcionario{}, ErrNotSaved
	}
	return f, nil
}

func (r *FuncionarioRepository) Update(ctx context.Context, tx database.DBTX, f entities.Funcionario) (entities.Funcionario, error) {
	const q = `UPDATE t_funcionario
	           SET nr_cpf = $1, nm_funcionario = $2, sx_sexo = $3, ds_funcao = $4, id_oficina = $5
	           WHERE id_funcionario = $6`
	tag, err := tx.Exec(ctx, q, f.CPF, f.Nome, f.Sexo, f.Funcao, f.IDOficina, f.ID)
	if err != nil {
		return entities.Funcionario{}, err
	}
	if tag.RowsAffected() == 0 {
		return entities.Funcionario{}, ErrNotFound
	}
	return f, nil
}

func (r *FuncionarioRepository) DeleteByID(ctx context.Context, tx database.DBTX, id int64) error {
	const q = `DELETE FROM t_funcionario WHERE id_funcionario = $1`
	tag, err := tx.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

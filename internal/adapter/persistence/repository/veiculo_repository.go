package repository

import (
	"context"
	"log"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// VeiculoRepository owns the SQL for t_veiculo.
type VeiculoRepository struct {
	db database.DBTX
}

func NewVeiculoRepository(db database.DBTX) *VeiculoRepository {
	return &VeiculoRepository{db: db}
}

func (r *VeiculoRepository) FindAll(ctx context.Context) ([]entities.Veiculo, error) {
	const q = `SELECT id_veiculo, placa, marca, modelo, ano, cor, combustivel, cliente_id FROM t_veiculo`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		log.Printf("[veiculo][repository] list failed err=%v", err)
		return nil, err
	}
	defer rows.Close()

	var out []entities.Veiculo
	for rows.Next() {
		var v entities.Veiculo
		if err := rows.Scan(&v.ID, &v.Placa, &v.Marca, &v.Modelo, &v.Ano, &v.Cor, &v.Combustivel, &v.ClienteID); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VeiculoRepository) Save(ctx context.Context, tx database.DBTX, v entities.Veiculo) (entities.Veiculo, error) {
	const q = `INSERT INTO t_veiculo (placa, marca, modelo, ano, cor, combustivel, cliente_id)
	           VALUES ($1, $2, $3, $4, $5, $6, $7)
	           RETURNING id_veiculo`
	if err := tx.QueryRow(ctx, q, v.Placa, v.Marca, v.Modelo, v.Ano, v.Cor, v.Combustivel, v.ClienteID).Scan(&v.ID); err != nil {
		return entities.Veiculo{}, err
	}
	if v.ID == 0 {
		return entities.Veiculo{}, ErrNotSaved
	}
	return v, nil
}

func (r *VeiculoRepository) Update(ctx context.Context, tx database.DBTX, v entities.Veiculo) (entities.Veiculo, error) {
	const q = `UPDATE t_veiculo
	           SET placa = $1, marca = $2, modelo = $3, ano = $4, cor = $5, combustivel = $6, cliente_id = $7
	           WHERE id_veiculo = $8`
	tag, err := tx.Exec(ctx, q, v.Placa, v.Marca, v.Modelo, v.Ano, v.Cor, v.Combustivel, v.ClienteID, v.ID)
	if err != nil {
		return entities.Veiculo{}, err
	}
	if tag.RowsAffected() == 0 {
		return entities.Veiculo{}, ErrNotFound
	}
	return v, nil
}

func (r *VeiculoRepository) DeleteByID(ctx context.Context, tx database.DBTX, id int64) error {
	const q = `DELETE FROM t_veiculo WHERE id_veiculo = $1`
	tag, err := tx.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

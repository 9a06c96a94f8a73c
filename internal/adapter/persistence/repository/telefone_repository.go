package repository

import (
	"context"
	"fmt"
	"log"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// TelefoneRepository owns the SQL for the two phone tables, parameterized the
// same way as EnderecoRepository.
type TelefoneRepository struct {
	db       database.DBTX
	table    string
	idCol    string
	refCol   string
	logLabel string
}

func NewTelefoneClienteRepository(db database.DBTX) *TelefoneRepository {
	return &TelefoneRepository{db: db, table: "t_telefone_cliente", idCol: "id_telefone_cliente", refCol: "id_cliente", logLabel: "telefone_cliente"}
}

func NewTelefoneOficinaRepository(db database.DBTX) *TelefoneRepository {
	return &TelefoneRepository{db: db, table: "t_telefone_oficina", idCol: "id_telefone_oficina", refCol: "id_oficina", logLabel: "telefone_oficina"}
}

func (r *TelefoneRepository) FindAll(ctx context.Context) ([]entities.Telefone, error) {
	q := fmt.Sprintf(`SELECT %s, nr_telefone, tp_telefone, %s FROM %s`, r.idCol, r.refCol, r.table)
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		log.Printf("[%s][repository] list failed err=%v", r.logLabel, err)
		return nil, err
	}
	defer rows.Close()

	var out []entities.Telefone
	for rows.Next() {
		var t entities.Telefone
		if err := rows.Scan(&t.ID, &t.Numero, &t.Tipo, &t.IDReferencia); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TelefoneRepository) Save(ctx context.Context, tx database.DBTX, t entities.Telefone) (entities.Telefone, error) {
	q := fmt.Sprintf(`INSERT INTO %s (nr_telefone, tp_telefone, %s)
	                  VALUES ($1, $2, $3)
	                  RETURNING %s`, r.table, r.refCol, r.idCol)
	if err := tx.QueryRow(ctx, q, t.Numero, t.Tipo, t.IDReferencia).Scan(&t.ID); err != nil {
		return entities.Telefone{}, err
	}
	if t.ID == 0 {
		return entities.Telefone{}, ErrNotSaved
	}
	return t, nil
}

func (r *TelefoneRepository) Update(ctx context.Context, tx database.DBTX, t entities.Telefone) (entities.Telefone, error) {
	q := fmt.Sprintf(`UPDATE %s
	                  SET nr_telefone = $1, tp_telefone = $2, %s = $3
	                  WHERE %s = $4`, r.table, r.refCol, r.idCol)
	tag, err := tx.Exec(ctx, q, t.Numero, t.Tipo, t.IDReferencia, t.ID)
	if err != nil {
		return entities.Telefone{}, err
	}
	if tag.RowsAffected() == 0 {
		return entities.Telefone{}, ErrNotFound
	}
	return t, nil
}

func (r *TelefoneRepository) DeleteByID(ctx context.Context, tx database.DBTX, id int64) error {
	q := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, r.table, r.idCol)
	tag, err := tx.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

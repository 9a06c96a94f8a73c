package repository

import (
	"context"
	"fmt"
	"log"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/infrastructure/database"
)

// EnderecoRepository owns the SQL for the two address tables. The customer
// and workshop variants share the same column layout and differ only in
// table name, id column and which entity the reference column points to, so
// one implementation serves both.
type EnderecoRepository struct {
	db       database.DBTX
	table    string
	idCol    string
	refCol   string
	logLabel string
}

func NewEnderecoClienteRepository(db database.DBTX) *EnderecoRepository {
	return &EnderecoRepository{db: db, table: "t_endereco_cliente", idCol: "id_endereco_cliente", refCol: "id_cliente", logLabel: "endereco_cliente"}
}

func NewEnderecoOficinaRepository(db database.DBTX) *EnderecoRepository {
	return &EnderecoRepository{db: db, table: "t_endereco_oficina", idCol: "id_endereco_oficina", refCol: "id_oficina", logLabel: "endereco_oficina"}
}

func (r *EnderecoRepository) FindAll(ctx context.Context) ([]entities.Endereco, error) {
	q := fmt.Sprintf(`SELECT %s, ds_logradouro, nr_numero, nr_cep, nm_bairro, nm_cidade, sg_uf, %s FROM %s`,
		r.idCol, r.refCol, r.table)
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		log.Printf("[%s][repository] list failed err=%v", r.logLabel, err)
		return nil, err
	}
	defer rows.Close()

	var out []entities.Endereco
	for rows.Next() {
		var e entities.Endereco
		if err := rows.Scan(&e.ID, &e.Logradouro, &e.Numero, &e.CEP, &e.Bairro, &e.Cidade, &e.UF, &e.IDReferencia); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EnderecoRepository) Save(ctx context.Context, tx database.DBTX, e entities.Endereco) (entities.Endereco, error) {
	q := fmt.Sprintf(`INSERT INTO %s (ds_logradouro, nr_numero, nr_cep, nm_bairro, nm_cidade, sg_uf, %s)
	                  VALUES ($1, $2, $3, $4, $5, $6, $7)
	                  RETURNING %s`, r.table, r.refCol, r.idCol)
	if err := tx.QueryRow(ctx, q, e.Logradouro, e.Numero, e.CEP, e.Bairro, e.Cidade, e.UF, e.IDReferencia).Scan(&e.ID); err != nil {
		return entities.Endereco{}, err
	}
	if e.ID == 0 {
		return entities.Endereco{}, ErrNotSaved
	}
	return e, nil
}

func (r *EnderecoRepository) Update(ctx context.Context, tx database.DBTX, e entities.Endereco) (entities.Endereco, error) {
	q := fmt.Sprintf(`UPDATE %s
	                  SET ds_logradouro = $1, nr_numero = $2, nr_cep = $3, nm_bairro = $4, nm_cidade = $5, sg_uf = $6, %s = $7
	                  WHERE %s = $8`, r.table, r.refCol, r.idCol)
	tag, err := tx.Exec(ctx, q, e.Logradouro, e.Numero, e.CEP, e.Bairro, e.Cidade, e.UF, e.IDReferencia, e.ID)
	if err != nil {
		return entities.Endereco{}, err
	}
	if tag.RowsAffected() == 0 {
		return entities.Endereco{}, ErrNotFound
	}
	return e, nil
}

func (r *EnderecoRepository) DeleteByID(ctx context.Context, tx database.DBTX, id int64) error {
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

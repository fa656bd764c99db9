package postgres

import (
	"context"
	"database/sql"
	"errors"

	"ganaderia-dashboard/internal/domain/clients"
)

type ClientsRepo struct {
	db *sql.DB
}

func NewClientsRepo(db *sql.DB) *ClientsRepo {
	return &ClientsRepo{db: db}
}

func (r *ClientsRepo) Create(ctx context.Context, c clients.Client) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clientes (
			codigo_cli, nombre_cli, telefono_cli,
			rif_cli, email_cli, direccion_cli
		) VALUES ($1,$2,$3,$4,$5,$6)
	`, c.Code, c.Name, c.Phone, c.RIF, c.Email, c.Address)
	return err
}

func (r *ClientsRepo) Update(ctx context.Context, code string, c clients.Client) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE clientes
		SET
			codigo_cli = $1,
			nombre_cli = $2,
			telefono_cli = $3,
			rif_cli = $4,
			email_cli = $5,
			direccion_cli = $6
		WHERE codigo_cli = $7
	`, c.Code, c.Name, c.Phone, c.RIF, c.Email, c.Address, code)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return clients.ErrNotFound
	}
	return nil
}

func (r *ClientsRepo) GetByCode(ctx context.Context, code string) (clients.Client, error) {
	var c clients.Client
	err := r.db.QueryRowContext(ctx, `
		SELECT codigo_cli, nombre_cli, telefono_cli, rif_cli, email_cli, direccion_cli
		FROM clientes
		WHERE codigo_cli = $1
	`, code).Scan(&c.Code, &c.Name, &c.Phone, &c.RIF, &c.Email, &c.Address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return clients.Client{}, clients.ErrNotFound
		}
		return clients.Client{}, err
	}
	return c, nil
}

func (r *ClientsRepo) List(ctx context.Context) ([]clients.Client, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT codigo_cli, nombre_cli, telefono_cli, rif_cli, email_cli, direccion_cli
		FROM clientes
		ORDER BY nombre_cli ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]clients.Client, 0)
	for rows.Next() {
		var c clients.Client
		if err := rows.Scan(&c.Code, &c.Name, &c.Phone, &c.RIF, &c.Email, &c.Address); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ClientsRepo) Delete(ctx context.Context, code string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clientes WHERE codigo_cli = $1`, code)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return clients.ErrNotFound
	}
	return nil
}

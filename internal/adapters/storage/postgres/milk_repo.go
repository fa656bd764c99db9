package postgres

import (
	"context"
	"database/sql"

	"ganaderia-dashboard/internal/domain/milk"
)

type MilkRepo struct {
	db *sql.DB
}

func NewMilkRepo(db *sql.DB) *MilkRepo {
	return &MilkRepo{db: db}
}

func (r *MilkRepo) Create(ctx context.Context, rec milk.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO produccionleche (id_lec, fecha_lec, litros_lec, codigo_ani, registrado)
		VALUES ($1,$2,$3,$4,$5)
	`, rec.ID, rec.Date, rec.Liters, toNullString(rec.AnimalCode), rec.RecordedAt)
	return err
}

func (r *MilkRepo) MonthlySums(ctx context.Context, year int) ([]milk.MonthSum, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			EXTRACT(MONTH FROM fecha_lec)::int AS mes,
			SUM(litros_lec) AS total_litros
		FROM produccionleche
		WHERE EXTRACT(YEAR FROM fecha_lec) = $1
		GROUP BY mes
		ORDER BY mes ASC
	`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]milk.MonthSum, 0, 12)
	for rows.Next() {
		var m milk.MonthSum
		if err := rows.Scan(&m.Month, &m.Liters); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"

	"ganaderia-dashboard/internal/domain/animals"
	"ganaderia-dashboard/internal/domain/reports"

	"github.com/shopspring/decimal"
)

type ReportsRepo struct {
	db *sql.DB
}

func NewReportsRepo(db *sql.DB) *ReportsRepo {
	return &ReportsRepo{db: db}
}

func (r *ReportsRepo) AnimalRows(ctx context.Context, category string) ([]reports.AnimalRow, error) {
	query := `
		SELECT
			a.codigo_ani, a.nombre_ani, a.arete_ani, a.sexo_ani,
			a.fechaNacimiento_ani, a.peso_ani, a.precio_ani, a.status_ani,
			g.name_gru AS categoria
		FROM animal a
		LEFT JOIN grupo g ON a.id_gru = g.id_gru
		WHERE a.existencia = 1
	`
	args := []any{}
	if category != "" {
		query += ` AND g.name_gru = $1`
		args = append(args, category)
	}
	query += ` ORDER BY g.name_gru ASC, a.nombre_ani ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reports.AnimalRow, 0)
	for rows.Next() {
		var (
			a        reports.AnimalRow
			earTag   sql.NullString
			birth    sql.NullTime
			status   int64
			category sql.NullString
		)
		if err := rows.Scan(&a.Code, &a.Name, &earTag, &a.Sex, &birth, &a.Weight, &a.Price, &status, &category); err != nil {
			return nil, err
		}
		a.EarTag = fromNullString(earTag)
		a.BirthDate = fromNullDate(birth)
		a.Status = animals.Status(status)
		a.Category = fromNullString(category)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *ReportsRepo) CategoryCounts(ctx context.Context) ([]reports.CategoryCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT g.name_gru AS categoria, COUNT(*) AS total
		FROM animal a
		LEFT JOIN grupo g ON a.id_gru = g.id_gru
		WHERE a.existencia = 1
		GROUP BY g.name_gru
		ORDER BY g.name_gru ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reports.CategoryCount, 0)
	for rows.Next() {
		var (
			c        reports.CategoryCount
			category sql.NullString
		)
		if err := rows.Scan(&category, &c.Total); err != nil {
			return nil, err
		}
		c.Category = fromNullString(category)
		out = append(out, c)
	}
	return out, rows.Err()
}

// FamilyAnimalRows hace LEFT JOIN contra animal: las familias sin animales
// vienen con las columnas del animal en NULL.
func (r *ReportsRepo) FamilyAnimalRows(ctx context.Context, family string) ([]reports.FamilyAnimalRow, error) {
	query := `
		SELECT
			f.codigo_fam,
			f.name_fam AS nombre_fam,
			g.name_gru AS grupo,
			a.codigo_ani, a.nombre_ani, a.arete_ani, a.sexo_ani,
			a.fechaNacimiento_ani, a.peso_ani, a.precio_ani, a.status_ani
		FROM familia f
		LEFT JOIN grupo g ON f.id_gru = g.id_gru
		LEFT JOIN animal a ON a.codigo_fam = f.codigo_fam AND a.existencia = 1
	`
	args := []any{}
	if family != "" {
		query += ` WHERE f.name_fam = $1`
		args = append(args, family)
	}
	query += ` ORDER BY f.name_fam ASC, a.nombre_ani ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reports.FamilyAnimalRow, 0)
	for rows.Next() {
		var (
			row             reports.FamilyAnimalRow
			group           sql.NullString
			code, name, sex sql.NullString
			earTag          sql.NullString
			birth           sql.NullTime
			weight, price   decimal.NullDecimal
			status          sql.NullInt64
		)
		if err := rows.Scan(
			&row.FamilyCode, &row.FamilyName, &group,
			&code, &name, &earTag, &sex,
			&birth, &weight, &price, &status,
		); err != nil {
			return nil, err
		}

		row.Group = fromNullString(group)
		if code.Valid {
			row.Animal = &reports.AnimalRow{
				Code:      code.String,
				Name:      name.String,
				EarTag:    fromNullString(earTag),
				Sex:       sex.String,
				BirthDate: fromNullDate(birth),
				Weight:    weight,
				Price:     price,
				Status:    animals.Status(status.Int64),
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *ReportsRepo) FamilyCounts(ctx context.Context) ([]reports.FamilyCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			f.codigo_fam,
			f.name_fam AS nombre_fam,
			COUNT(a.codigo_ani) AS total
		FROM familia f
		LEFT JOIN animal a ON a.codigo_fam = f.codigo_fam AND a.existencia = 1
		GROUP BY f.codigo_fam, f.name_fam
		ORDER BY f.name_fam ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]reports.FamilyCount, 0)
	for rows.Next() {
		var c reports.FamilyCount
		if err := rows.Scan(&c.FamilyCode, &c.FamilyName, &c.Total); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"ganaderia-dashboard/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const animalColumns = `
	codigo_ani, nombre_ani, chip_ani,
	id_gru, codigo_fam, sexo_ani,
	fechaPalpacion_ani, tiempoGestacion_ani,
	peso_ani, arete_ani,
	fechaNacimiento_ani, fechaVacunacion_ani,
	status_ani, precio_ani, existencia
`

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animal (`+animalColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,1)
	`,
		a.Code,
		a.Name,
		a.Chip,
		toNullInt(a.GroupID),
		toNullInt(a.FamilyCode),
		string(a.Sex),
		toNullDate(a.PalpationDate),
		toNullString(a.GestationTime),
		a.Weight,
		toNullString(a.EarTag),
		toNullDate(a.BirthDate),
		toNullDate(a.VaccinationDate),
		int(a.Status),
		a.Price,
	)
	return err
}

// Update reemplaza la fila completa; 0 filas afectadas => no existe (o fue dado de baja).
func (r *AnimalsRepo) Update(ctx context.Context, code string, a animals.Animal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animal
		SET
			codigo_ani = $1,
			nombre_ani = $2,
			chip_ani = $3,
			id_gru = $4,
			codigo_fam = $5,
			sexo_ani = $6,
			fechaPalpacion_ani = $7,
			tiempoGestacion_ani = $8,
			peso_ani = $9,
			arete_ani = $10,
			fechaNacimiento_ani = $11,
			fechaVacunacion_ani = $12,
			status_ani = $13,
			precio_ani = $14
		WHERE codigo_ani = $15 AND existencia = 1
	`,
		a.Code,
		a.Name,
		a.Chip,
		toNullInt(a.GroupID),
		toNullInt(a.FamilyCode),
		string(a.Sex),
		toNullDate(a.PalpationDate),
		toNullString(a.GestationTime),
		a.Weight,
		toNullString(a.EarTag),
		toNullDate(a.BirthDate),
		toNullDate(a.VaccinationDate),
		int(a.Status),
		a.Price,
		code,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimal(s rowScanner) (animals.Animal, error) {
	var (
		a                            animals.Animal
		sex                          string
		groupID, familyCode          sql.NullInt64
		palpation, birth, vaccinated sql.NullTime
		gestation, earTag            sql.NullString
		status, exists               int64
	)
	if err := s.Scan(
		&a.Code,
		&a.Name,
		&a.Chip,
		&groupID,
		&familyCode,
		&sex,
		&palpation,
		&gestation,
		&a.Weight,
		&earTag,
		&birth,
		&vaccinated,
		&status,
		&a.Price,
		&exists,
	); err != nil {
		return animals.Animal{}, err
	}

	a.Sex = animals.Sex(sex)
	a.GroupID = fromNullInt(groupID)
	a.FamilyCode = fromNullInt(familyCode)
	a.PalpationDate = fromNullDate(palpation)
	a.GestationTime = fromNullString(gestation)
	a.EarTag = fromNullString(earTag)
	a.BirthDate = fromNullDate(birth)
	a.VaccinationDate = fromNullDate(vaccinated)
	a.Status = animals.Status(status)
	a.Exists = exists == 1
	return a, nil
}

func (r *AnimalsRepo) GetByCode(ctx context.Context, code string) (animals.Animal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+animalColumns+`
		FROM animal
		WHERE codigo_ani = $1 AND existencia = 1
	`, code)

	a, err := scanAnimal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, err
	}
	return a, nil
}

func (r *AnimalsRepo) List(ctx context.Context) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+animalColumns+`
		FROM animal
		WHERE existencia = 1
		ORDER BY nombre_ani ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnimalsRepo) SoftDelete(ctx context.Context, code string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animal SET existencia = 0
		WHERE codigo_ani = $1 AND existencia = 1
	`, code)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

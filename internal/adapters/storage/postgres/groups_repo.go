package postgres

import (
	"context"
	"database/sql"
	"errors"

	"ganaderia-dashboard/internal/domain/groups"
)

type GroupsRepo struct {
	db *sql.DB
}

func NewGroupsRepo(db *sql.DB) *GroupsRepo {
	return &GroupsRepo{db: db}
}

func (r *GroupsRepo) CreateGroup(ctx context.Context, name string) (groups.Group, error) {
	g := groups.Group{Name: name}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO grupo (name_gru) VALUES ($1) RETURNING id_gru
	`, name).Scan(&g.ID)
	return g, err
}

func (r *GroupsRepo) ListGroups(ctx context.Context) ([]groups.Group, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id_gru, name_gru FROM grupo ORDER BY name_gru ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]groups.Group, 0)
	for rows.Next() {
		var g groups.Group
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *GroupsRepo) GetGroup(ctx context.Context, id int64) (groups.Group, error) {
	var g groups.Group
	err := r.db.QueryRowContext(ctx, `
		SELECT id_gru, name_gru FROM grupo WHERE id_gru = $1
	`, id).Scan(&g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return groups.Group{}, groups.ErrNotFound
		}
		return groups.Group{}, err
	}
	return g, nil
}

func (r *GroupsRepo) CreateFamily(ctx context.Context, name string, groupID int64) (groups.Family, error) {
	f := groups.Family{Name: name, GroupID: groupID}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO familia (name_fam, id_gru) VALUES ($1, $2) RETURNING codigo_fam
	`, name, groupID).Scan(&f.Code)
	return f, err
}

func (r *GroupsRepo) ListFamiliesByGroup(ctx context.Context, groupID int64) ([]groups.Family, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT codigo_fam, name_fam, id_gru
		FROM familia
		WHERE id_gru = $1
		ORDER BY name_fam ASC
	`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]groups.Family, 0)
	for rows.Next() {
		var f groups.Family
		if err := rows.Scan(&f.Code, &f.Name, &f.GroupID); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

package memory

import (
	"context"
	"errors"
	"sort"

	"ganaderia-dashboard/internal/domain/groups"
)

type groupRepo struct {
	s *Store
}

func (r *groupRepo) CreateGroup(ctx context.Context, name string) (groups.Group, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, g := range r.s.groups {
		if g.Name == name {
			return groups.Group{}, errors.New("group already exists")
		}
	}
	r.s.nextGroup++
	g := groups.Group{ID: r.s.nextGroup, Name: name}
	r.s.groups[g.ID] = g
	return g, nil
}

func (r *groupRepo) ListGroups(ctx context.Context) ([]groups.Group, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]groups.Group, 0, len(r.s.groups))
	for _, g := range r.s.groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *groupRepo) GetGroup(ctx context.Context, id int64) (groups.Group, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	g, ok := r.s.groups[id]
	if !ok {
		return groups.Group{}, groups.ErrNotFound
	}
	return g, nil
}

func (r *groupRepo) CreateFamily(ctx context.Context, name string, groupID int64) (groups.Family, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.groups[groupID]; !ok {
		return groups.Family{}, errors.New("group does not exist")
	}
	r.s.nextFamily++
	f := groups.Family{Code: r.s.nextFamily, Name: name, GroupID: groupID}
	r.s.families[f.Code] = f
	return f, nil
}

func (r *groupRepo) ListFamiliesByGroup(ctx context.Context, groupID int64) ([]groups.Family, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]groups.Family, 0)
	for _, f := range r.s.families {
		if f.GroupID == groupID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

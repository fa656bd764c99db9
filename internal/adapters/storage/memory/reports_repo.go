package memory

import (
	"context"
	"sort"

	"ganaderia-dashboard/internal/domain/animals"
	"ganaderia-dashboard/internal/domain/reports"
)

// ReportsRepo reproduce los JOIN de los reportes de Postgres,
// incluido el orden ASC con NULLs al final.
type ReportsRepo struct {
	s *Store
}

func toAnimalRow(a animals.Animal) reports.AnimalRow {
	return reports.AnimalRow{
		Code:      a.Code,
		Name:      a.Name,
		EarTag:    a.EarTag,
		Sex:       string(a.Sex),
		BirthDate: a.BirthDate,
		Weight:    a.Weight,
		Price:     a.Price,
		Status:    a.Status,
	}
}

// lessNullsLast compara dos nombres opcionales como ORDER BY ... ASC.
func lessNullsLast(a, b *string) (less, equal bool) {
	switch {
	case a == nil && b == nil:
		return false, true
	case a == nil:
		return false, false
	case b == nil:
		return true, false
	default:
		return *a < *b, *a == *b
	}
}

// groupName debe llamarse con el lock tomado.
func (r *ReportsRepo) groupName(id *int64) *string {
	if id == nil {
		return nil
	}
	g, ok := r.s.groups[*id]
	if !ok {
		return nil
	}
	name := g.Name
	return &name
}

func (r *ReportsRepo) AnimalRows(ctx context.Context, category string) ([]reports.AnimalRow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]reports.AnimalRow, 0)
	for _, a := range r.s.animals {
		if !a.Exists {
			continue
		}
		row := toAnimalRow(a)
		row.Category = r.groupName(a.GroupID)
		if category != "" && (row.Category == nil || *row.Category != category) {
			continue
		}
		out = append(out, row)
	}

	sort.Slice(out, func(i, j int) bool {
		less, equal := lessNullsLast(out[i].Category, out[j].Category)
		if !equal {
			return less
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *ReportsRepo) CategoryCounts(ctx context.Context) ([]reports.CategoryCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	counts := map[string]int64{}
	var noGroup int64
	for _, a := range r.s.animals {
		if !a.Exists {
			continue
		}
		if name := r.groupName(a.GroupID); name != nil {
			counts[*name]++
		} else {
			noGroup++
		}
	}

	out := make([]reports.CategoryCount, 0, len(counts)+1)
	for name, total := range counts {
		out = append(out, reports.CategoryCount{Category: &name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return *out[i].Category < *out[j].Category })
	if noGroup > 0 {
		out = append(out, reports.CategoryCount{Total: noGroup})
	}
	return out, nil
}

func (r *ReportsRepo) FamilyAnimalRows(ctx context.Context, family string) ([]reports.FamilyAnimalRow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	fams := r.sortedFamilies()
	out := make([]reports.FamilyAnimalRow, 0)
	for _, f := range fams {
		if family != "" && f.Name != family {
			continue
		}
		gid := f.GroupID
		base := reports.FamilyAnimalRow{
			FamilyCode: f.Code,
			FamilyName: f.Name,
			Group:      r.groupName(&gid),
		}

		members := make([]reports.AnimalRow, 0)
		for _, a := range r.s.animals {
			if a.Exists && a.FamilyCode != nil && *a.FamilyCode == f.Code {
				members = append(members, toAnimalRow(a))
			}
		}
		sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })

		if len(members) == 0 {
			out = append(out, base)
			continue
		}
		for i := range members {
			row := base
			row.Animal = &members[i]
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *ReportsRepo) FamilyCounts(ctx context.Context) ([]reports.FamilyCount, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]reports.FamilyCount, 0, len(r.s.families))
	for _, f := range r.sortedFamilies() {
		c := reports.FamilyCount{FamilyCode: f.Code, FamilyName: f.Name}
		for _, a := range r.s.animals {
			if a.Exists && a.FamilyCode != nil && *a.FamilyCode == f.Code {
				c.Total++
			}
		}
		out = append(out, c)
	}
	return out, nil
}

type familyRow struct {
	Code    int64
	Name    string
	GroupID int64
}

func (r *ReportsRepo) sortedFamilies() []familyRow {
	out := make([]familyRow, 0, len(r.s.families))
	for _, f := range r.s.families {
		out = append(out, familyRow{Code: f.Code, Name: f.Name, GroupID: f.GroupID})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Code < out[j].Code
	})
	return out
}

package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"ganaderia-dashboard/internal/domain/animals"
)

type animalRepo struct {
	s *Store
}

func (r *animalRepo) Create(ctx context.Context, a animals.Animal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(a.Code) == "" {
		return errors.New("animal code required")
	}
	if _, exists := r.s.animals[a.Code]; exists {
		return errors.New("animal already exists")
	}
	a.Exists = true
	r.s.animals[a.Code] = a
	return nil
}

func (r *animalRepo) Update(ctx context.Context, code string, a animals.Animal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.animals[code]
	if !ok || !cur.Exists {
		return animals.ErrNotFound
	}
	if a.Code != code {
		if _, taken := r.s.animals[a.Code]; taken {
			return errors.New("animal already exists")
		}
		delete(r.s.animals, code)
		// la producción referencia al animal por código (ON UPDATE CASCADE)
		for i, m := range r.s.milk {
			if m.AnimalCode != nil && *m.AnimalCode == code {
				newCode := a.Code
				r.s.milk[i].AnimalCode = &newCode
			}
		}
	}
	a.Exists = true
	r.s.animals[a.Code] = a
	return nil
}

func (r *animalRepo) GetByCode(ctx context.Context, code string) (animals.Animal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.animals[code]
	if !ok || !a.Exists {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}

func (r *animalRepo) List(ctx context.Context) ([]animals.Animal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]animals.Animal, 0, len(r.s.animals))
	for _, a := range r.s.animals {
		if a.Exists {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Code < out[j].Code
	})
	return out, nil
}

func (r *animalRepo) SoftDelete(ctx context.Context, code string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.animals[code]
	if !ok || !a.Exists {
		return animals.ErrNotFound
	}
	a.Exists = false
	r.s.animals[code] = a
	return nil
}

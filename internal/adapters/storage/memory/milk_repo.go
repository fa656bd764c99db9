package memory

import (
	"context"
	"errors"

	"ganaderia-dashboard/internal/domain/milk"

	"github.com/shopspring/decimal"
)

type milkRepo struct {
	s *Store
}

func (r *milkRepo) Create(ctx context.Context, rec milk.Record) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if rec.AnimalCode != nil {
		if _, ok := r.s.animals[*rec.AnimalCode]; !ok {
			return errors.New("animal does not exist")
		}
	}
	r.s.milk = append(r.s.milk, rec)
	return nil
}

func (r *milkRepo) MonthlySums(ctx context.Context, year int) ([]milk.MonthSum, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var sums [12]decimal.Decimal
	var seen [12]bool
	for _, rec := range r.s.milk {
		if rec.Date.Year() != year {
			continue
		}
		m := int(rec.Date.Month()) - 1
		sums[m] = sums[m].Add(rec.Liters)
		seen[m] = true
	}

	out := make([]milk.MonthSum, 0, 12)
	for i := range sums {
		if seen[i] {
			out = append(out, milk.MonthSum{Month: i + 1, Liters: sums[i]})
		}
	}
	return out, nil
}

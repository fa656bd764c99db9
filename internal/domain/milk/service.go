package milk

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// WithClock fija el reloj que decide el año actual.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

type CreateInput struct {
	Date       time.Time
	Liters     decimal.Decimal
	AnimalCode *string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Record, error) {
	if in.Date.IsZero() {
		return Record{}, ErrInvalidInput
	}
	if in.Liters.IsNegative() {
		return Record{}, ErrInvalidInput
	}

	var code *string
	if in.AnimalCode != nil {
		if v := strings.TrimSpace(*in.AnimalCode); v != "" {
			code = &v
		}
	}

	r := Record{
		ID:         uuid.NewString(),
		Date:       in.Date,
		Liters:     in.Liters,
		AnimalCode: code,
		RecordedAt: s.now(),
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return Record{}, err
	}
	return r, nil
}

// CurrentYear según el reloj del servicio.
func (s *Service) CurrentYear() int {
	return s.now().Year()
}

// MonthlyTotals devuelve siempre 12 entradas, Enero..Diciembre, con 0 en los meses sin datos.
func (s *Service) MonthlyTotals(ctx context.Context, year int) ([]MonthlyTotal, error) {
	if year < 1 || year > 9999 {
		return nil, ErrInvalidInput
	}

	sums, err := s.repo.MonthlySums(ctx, year)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[int]decimal.Decimal, len(sums))
	for _, m := range sums {
		byMonth[m.Month] = byMonth[m.Month].Add(m.Liters)
	}

	out := make([]MonthlyTotal, 0, len(MonthNames))
	for i, name := range MonthNames {
		out = append(out, MonthlyTotal{Month: name, Liters: byMonth[i+1]})
	}
	return out, nil
}

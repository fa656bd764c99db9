package milk

import "context"

type Repository interface {
	Create(ctx context.Context, r Record) error
	// MonthlySums devuelve solo los meses con registros del año.
	MonthlySums(ctx context.Context, year int) ([]MonthSum, error)
}

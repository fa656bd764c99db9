package animals

import "context"

type Repository interface {
	Create(ctx context.Context, a Animal) error
	// Update reemplaza la fila identificada por code (a.Code puede ser un código nuevo).
	Update(ctx context.Context, code string, a Animal) error
	GetByCode(ctx context.Context, code string) (Animal, error)
	List(ctx context.Context) ([]Animal, error)
	// SoftDelete apaga la marca de existencia.
	SoftDelete(ctx context.Context, code string) error
}

package reports

import "context"

// Repository devuelve filas ya ordenadas. Un filtro vacío significa "todos".
type Repository interface {
	// AnimalRows: animales existentes, por categoría y nombre.
	AnimalRows(ctx context.Context, category string) ([]AnimalRow, error)
	// CategoryCounts: animales existentes por grupo, sin filtro.
	CategoryCounts(ctx context.Context) ([]CategoryCount, error)
	// FamilyAnimalRows: familias con sus animales existentes, por familia y nombre.
	FamilyAnimalRows(ctx context.Context, family string) ([]FamilyAnimalRow, error)
	// FamilyCounts: todas las familias con su cantidad de animales, sin filtro.
	FamilyCounts(ctx context.Context) ([]FamilyCount, error)
}

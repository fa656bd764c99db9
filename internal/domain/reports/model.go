package reports

import (
	"time"

	"ganaderia-dashboard/internal/domain/animals"

	"github.com/shopspring/decimal"
)

// AllFilter es el valor del selector que desactiva el filtro.
const AllFilter = "Todos"

// AnimalRow es un animal tal como aparece en los reportes.
type AnimalRow struct {
	Code      string
	Name      string
	EarTag    *string
	Sex       string
	BirthDate *time.Time
	Weight    decimal.NullDecimal
	Price     decimal.NullDecimal
	Status    animals.Status
	// Category es el nombre del grupo; nil si el animal no tiene grupo.
	Category *string
}

type CategoryCount struct {
	Category *string
	Total    int64
}

// FamilyAnimalRow es una fila del LEFT JOIN familia/grupo/animal.
// Animal es nil cuando la familia no tiene animales.
type FamilyAnimalRow struct {
	FamilyCode int64
	FamilyName string
	Group      *string
	Animal     *AnimalRow
}

type FamilyCount struct {
	FamilyCode int64
	FamilyName string
	Total      int64
}

// FamilyGroup es una familia con sus animales anidados.
type FamilyGroup struct {
	FamilyCode int64
	FamilyName string
	Group      *string
	Animals    []AnimalRow
}

type AnimalReport struct {
	Animals []AnimalRow
	// Counts no depende del filtro.
	Counts []CategoryCount
	Total  int
}

type FamilyReport struct {
	Families     []FamilyGroup
	Counts       []FamilyCount
	TotalAnimals int
}

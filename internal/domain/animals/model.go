package animals

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sex define el sexo del animal, tal como lo guarda la base.
// @Enum Hembra, Macho
type Sex string

const (
	SexFemale Sex = "Hembra"
	SexMale   Sex = "Macho"
)

// Status del animal en el hato.
// @Enum 1, 2
type Status int

const (
	StatusActive   Status = 1
	StatusInactive Status = 2
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

func (s Status) Label() string {
	if s == StatusActive {
		return "Activo"
	}
	return "Inactivo"
}

// Animal es una unidad del hato (tabla animal).
// GroupID/FamilyCode son FKs; no se valida que la familia pertenezca al grupo.
type Animal struct {
	Code string
	Name string
	Chip string // "0" cuando no tiene chip

	GroupID    *int64
	FamilyCode *int64

	Sex Sex

	// Solo tienen sentido para hembras.
	PalpationDate *time.Time
	GestationTime *string

	Weight decimal.NullDecimal
	Price  decimal.NullDecimal

	EarTag *string

	BirthDate       *time.Time
	VaccinationDate *time.Time

	Status Status

	// Exists es la marca de existencia (borrado lógico).
	Exists bool
}

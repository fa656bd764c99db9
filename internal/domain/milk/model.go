package milk

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record es un registro de producción de leche (tabla produccionleche).
type Record struct {
	ID     string
	Date   time.Time
	Liters decimal.Decimal
	// AnimalCode es opcional: la producción puede registrarse por hato.
	AnimalCode *string
	RecordedAt time.Time
}

// MonthSum es la suma de litros de un mes (1..12).
type MonthSum struct {
	Month  int
	Liters decimal.Decimal
}

// MonthlyTotal es una entrada del gráfico anual.
type MonthlyTotal struct {
	Month  string
	Liters decimal.Decimal
}

var MonthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

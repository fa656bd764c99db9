package reportdoc

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	NotAvailable = "N/A"
	NoEarTag     = "Sin Arete"
)

func Date(t *time.Time) string {
	if t == nil || t.IsZero() {
		return NotAvailable
	}
	return t.Format("02/01/2006")
}

func EarTag(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return NoEarTag
	}
	return *s
}

// Amount imprime 0 cuando el valor falta.
func Amount(d decimal.NullDecimal) string {
	if !d.Valid {
		return "0"
	}
	return d.Decimal.String()
}

func Text(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return NotAvailable
	}
	return *s
}

package animalform

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const SexFemale = "Hembra"

// Values son los campos del formulario tal como los edita el usuario (todo texto).
type Values struct {
	Code            string `json:"codigo_ani"`
	Name            string `json:"nombre_ani" validate:"required,min=2"`
	Chip            string `json:"chip_ani"`
	GroupID         string `json:"id_gru" validate:"required,numeric"`
	FamilyCode      string `json:"codigo_fam" validate:"required,numeric"`
	Sex             string `json:"sexo_ani" validate:"required,oneof=Hembra Macho"`
	PalpationDate   string `json:"fechaPalpacion_ani" validate:"required_if=Sex Hembra,omitempty,datetime=2006-01-02,notfuture"`
	GestationTime   string `json:"tiempoGestacion_ani" validate:"required_if=Sex Hembra"`
	Weight          string `json:"peso_ani" validate:"omitempty,decimal"`
	EarTag          string `json:"arete_ani"`
	BirthDate       string `json:"fechaNacimiento_ani" validate:"required,datetime=2006-01-02,notfuture"`
	VaccinationDate string `json:"fechaVacunacion_ani" validate:"required,datetime=2006-01-02,notfuture"`
	Status          string `json:"status_ani" validate:"required,oneof=1 2"`
	Price           string `json:"precio_ani" validate:"omitempty,decimal"`
}

// Record es el animal como lo devuelve GET /api/animal/{id}.
type Record struct {
	Code            string       `json:"codigo_ani"`
	Name            string       `json:"nombre_ani"`
	Chip            string       `json:"chip_ani"`
	GroupID         *int64       `json:"id_gru"`
	FamilyCode      *int64       `json:"codigo_fam"`
	Sex             string       `json:"sexo_ani"`
	PalpationDate   *string      `json:"fechaPalpacion_ani"`
	GestationTime   *string      `json:"tiempoGestacion_ani"`
	Weight          *json.Number `json:"peso_ani"`
	EarTag          *string      `json:"arete_ani"`
	BirthDate       *string      `json:"fechaNacimiento_ani"`
	VaccinationDate *string      `json:"fechaVacunacion_ani"`
	Status          int          `json:"status_ani"`
	Price           *json.Number `json:"precio_ani"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// dateOnly recorta "2024-01-02T00:00:00Z" a "2024-01-02".
func dateOnly(s *string) string {
	v := strings.TrimSpace(deref(s))
	if len(v) > 10 {
		v = v[:10]
	}
	return v
}

func intString(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func numberString(n *json.Number) string {
	if n == nil {
		return ""
	}
	return n.String()
}

// ValuesFromRecord prellena el formulario. Status ausente => "1".
func ValuesFromRecord(r Record) Values {
	status := r.Status
	if status == 0 {
		status = 1
	}
	return Values{
		Code:            r.Code,
		Name:            r.Name,
		Chip:            r.Chip,
		GroupID:         intString(r.GroupID),
		FamilyCode:      intString(r.FamilyCode),
		Sex:             r.Sex,
		PalpationDate:   dateOnly(r.PalpationDate),
		GestationTime:   deref(r.GestationTime),
		Weight:          numberString(r.Weight),
		EarTag:          deref(r.EarTag),
		BirthDate:       dateOnly(r.BirthDate),
		VaccinationDate: dateOnly(r.VaccinationDate),
		Status:          strconv.Itoa(status),
		Price:           numberString(r.Price),
	}
}

// Payload es el cuerpo del PUT /api/animal/{id}.
type Payload struct {
	Code            string       `json:"codigo_ani"`
	Name            string       `json:"nombre_ani"`
	Chip            *string      `json:"chip_ani"`
	GroupID         *int64       `json:"id_gru"`
	FamilyCode      *int64       `json:"codigo_fam"`
	Sex             string       `json:"sexo_ani"`
	PalpationDate   *string      `json:"fechaPalpacion_ani"`
	GestationTime   *string      `json:"tiempoGestacion_ani"`
	Weight          *json.Number `json:"peso_ani"`
	EarTag          *string      `json:"arete_ani"`
	BirthDate       *string      `json:"fechaNacimiento_ani"`
	VaccinationDate *string      `json:"fechaVacunacion_ani"`
	Status          int          `json:"status_ani"`
	Price           *json.Number `json:"precio_ani"`
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func optionalInt(s string) *int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// optionalNumber: vacío, inválido o cero => null.
func optionalNumber(s string) *json.Number {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsZero() {
		return nil
	}
	n := json.Number(d.String())
	return &n
}

// BuildPayload convierte los valores validados al cuerpo del PUT.
// Los datos de gestación solo viajan si el sexo es Hembra y tienen valor.
func BuildPayload(v Values) Payload {
	p := Payload{
		Code:            strings.TrimSpace(v.Code),
		Name:            strings.TrimSpace(v.Name),
		Chip:            optional(v.Chip),
		GroupID:         optionalInt(v.GroupID),
		FamilyCode:      optionalInt(v.FamilyCode),
		Sex:             v.Sex,
		Weight:          optionalNumber(v.Weight),
		EarTag:          optional(v.EarTag),
		BirthDate:       optional(v.BirthDate),
		VaccinationDate: optional(v.VaccinationDate),
		Price:           optionalNumber(v.Price),
	}
	p.Status, _ = strconv.Atoi(strings.TrimSpace(v.Status))

	if v.Sex == SexFemale {
		p.PalpationDate = optional(v.PalpationDate)
		p.GestationTime = optional(v.GestationTime)
	}
	return p
}

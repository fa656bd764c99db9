package animalform

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldErrors es campo (nombre JSON) => mensaje para el usuario.
type FieldErrors map[string]string

// ValidationError agrupa los errores de campo de un envío rechazado.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "validación fallida: " + strings.Join(keys, ", ")
}

var messages = map[string]string{
	"nombre_ani.required":             "El nombre del animal es requerido",
	"nombre_ani.min":                  "El nombre debe tener mínimo 2 caracteres",
	"sexo_ani.required":               "Debe seleccionar el sexo",
	"sexo_ani.oneof":                  "Debe seleccionar el sexo",
	"id_gru.required":                 "Debe seleccionar un grupo",
	"id_gru.numeric":                  "Debe seleccionar un grupo",
	"codigo_fam.required":             "Debe seleccionar una familia",
	"codigo_fam.numeric":              "Debe seleccionar una familia",
	"fechaPalpacion_ani.required_if":  "La fecha de palpación es requerida para hembras",
	"fechaPalpacion_ani.notfuture":    "La fecha de palpación no puede ser futura",
	"tiempoGestacion_ani.required_if": "El tiempo de gestación es requerido para hembras",
	"fechaNacimiento_ani.required":    "La fecha de nacimiento es requerida",
	"fechaNacimiento_ani.notfuture":   "La fecha de nacimiento no puede ser futura",
	"fechaVacunacion_ani.required":    "La fecha de vacunación es requerida",
	"fechaVacunacion_ani.notfuture":   "La fecha de vacunación no puede ser futura",
	"status_ani.required":             "El status es requerido",
	"status_ani.oneof":                "El status es requerido",
}

var tagMessages = map[string]string{
	"datetime": "Fecha inválida",
	"decimal":  "Debe ser un número",
}

func message(fe validator.FieldError) string {
	if m, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return m
	}
	if m, ok := tagMessages[fe.Tag()]; ok {
		return m
	}
	return "Valor inválido"
}

// Validator aplica las reglas del formulario. now define "hoy" para las fechas.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

func NewValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	val := &Validator{v: validator.New(validator.WithRequiredStructEnabled()), now: now}

	val.v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = val.v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		_, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		return err == nil
	})
	// datetime ya validó el formato; aquí solo importa que no sea posterior a hoy.
	_ = val.v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		d, err := time.Parse("2006-01-02", fl.Field().String())
		if err != nil {
			return true
		}
		now := val.now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		return !d.After(today)
	})
	return val
}

// Validate devuelve nil si los valores son válidos.
// Los campos de gestación de un macho no se validan (no se envían).
func (val *Validator) Validate(v Values) FieldErrors {
	if v.Sex != SexFemale {
		v.PalpationDate = ""
		v.GestationTime = ""
	}

	err := val.v.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"": err.Error()}
	}

	out := FieldErrors{}
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = message(fe)
		}
	}
	return out
}

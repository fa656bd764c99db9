package animalform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validValues() Values {
	return Values{
		Code:            "123",
		Name:            "Lola",
		GroupID:         "1",
		FamilyCode:      "10",
		Sex:             "Hembra",
		PalpationDate:   "2024-03-01",
		GestationTime:   "3 meses",
		BirthDate:       "2020-01-10",
		VaccinationDate: "2024-06-15",
		Status:          "2",
	}
}

func TestValidate(t *testing.T) {
	val := NewValidator(fixedNow)

	tests := []struct {
		name   string
		mutate func(v *Values)
		want   FieldErrors
	}{
		{name: "valid", mutate: func(*Values) {}},
		{
			name:   "short name",
			mutate: func(v *Values) { v.Name = "L" },
			want:   FieldErrors{"nombre_ani": "El nombre debe tener mínimo 2 caracteres"},
		},
		{
			name:   "future birth date",
			mutate: func(v *Values) { v.BirthDate = "2024-06-16" },
			want:   FieldErrors{"fechaNacimiento_ani": "La fecha de nacimiento no puede ser futura"},
		},
		{
			name:   "bad date",
			mutate: func(v *Values) { v.VaccinationDate = "15/06/2024" },
			want:   FieldErrors{"fechaVacunacion_ani": "Fecha inválida"},
		},
		{
			name: "macho ignores gestation",
			mutate: func(v *Values) {
				v.Sex = "Macho"
				v.PalpationDate = "2099-01-01"
				v.GestationTime = ""
			},
		},
		{
			name:   "missing family",
			mutate: func(v *Values) { v.FamilyCode = "" },
			want:   FieldErrors{"codigo_fam": "Debe seleccionar una familia"},
		},
		{
			name: "weight and status",
			mutate: func(v *Values) {
				v.Weight = "pesado"
				v.Status = "3"
			},
			want: FieldErrors{"peso_ani": "Debe ser un número", "status_ani": "El status es requerido"},
		},
		{
			name: "decimal weight and price",
			mutate: func(v *Values) {
				v.Weight = "420.5"
				v.Price = " 1500.75"
			},
		},
		{
			name: "price with two points",
			mutate: func(v *Values) {
				v.Price = "1.500.75"
			},
			want: FieldErrors{"precio_ani": "Debe ser un número"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := validValues()
			tc.mutate(&v)
			assert.Equal(t, tc.want, val.Validate(v))
		})
	}
}

func TestBuildPayload(t *testing.T) {
	v := validValues()
	v.Weight = "350.50"
	v.Price = "abc"
	v.EarTag = "  "

	p := BuildPayload(v)
	if assert.NotNil(t, p.Weight) {
		assert.Equal(t, "350.5", p.Weight.String())
	}
	assert.Nil(t, p.Price)
	assert.Nil(t, p.EarTag)
	assert.Equal(t, ptr("3 meses"), p.GestationTime)
	assert.Equal(t, ptr(int64(1)), p.GroupID)
	assert.Equal(t, 2, p.Status)
}

func TestValuesFromRecord_DefaultsStatus(t *testing.T) {
	r := hembra()
	r.Status = 0
	r.Weight = nil

	v := ValuesFromRecord(r)
	assert.Equal(t, "1", v.Status)
	assert.Equal(t, "", v.Weight)
	assert.Equal(t, "2020-01-10", v.BirthDate)
}

package animals

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"ganaderia-dashboard/internal/platform/jsonx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/animal", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))

		ar.Get("/{id}", getAnimalHandler(svc))
		ar.Put("/{id}", updateAnimalHandler(svc))
		ar.Delete("/{id}", deleteAnimalHandler(svc))
	})
}

// animalRequest usa RawMessage porque el formulario manda números como
// string, "" en vez de null, etc. jsonx normaliza.
type animalRequest struct {
	Code            json.RawMessage `json:"codigo_ani"`
	Name            json.RawMessage `json:"nombre_ani"`
	Chip            json.RawMessage `json:"chip_ani"`
	GroupID         json.RawMessage `json:"id_gru"`
	FamilyCode      json.RawMessage `json:"codigo_fam"`
	Sex             json.RawMessage `json:"sexo_ani"`
	PalpationDate   json.RawMessage `json:"fechaPalpacion_ani"`
	GestationTime   json.RawMessage `json:"tiempoGestacion_ani"`
	Weight          json.RawMessage `json:"peso_ani"`
	EarTag          json.RawMessage `json:"arete_ani"`
	BirthDate       json.RawMessage `json:"fechaNacimiento_ani"`
	VaccinationDate json.RawMessage `json:"fechaVacunacion_ani"`
	Status          json.RawMessage `json:"status_ani"`
	Price           json.RawMessage `json:"precio_ani"`
}

// animalResponse representa un animal devuelto por la API.
type animalResponse struct {
	Code            string       `json:"codigo_ani"`
	Name            string       `json:"nombre_ani"`
	Chip            string       `json:"chip_ani"`
	GroupID         *int64       `json:"id_gru"`
	FamilyCode      *int64       `json:"codigo_fam"`
	Sex             Sex          `json:"sexo_ani"`
	PalpationDate   *string      `json:"fechaPalpacion_ani"`
	GestationTime   *string      `json:"tiempoGestacion_ani"`
	Weight          *json.Number `json:"peso_ani" swaggertype:"number"`
	EarTag          *string      `json:"arete_ani"`
	BirthDate       *string      `json:"fechaNacimiento_ani"`
	VaccinationDate *string      `json:"fechaVacunacion_ani"`
	Status          Status       `json:"status_ani"`
	Price           *json.Number `json:"precio_ani" swaggertype:"number"`
	Exists          int          `json:"existencia"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (req animalRequest) toInput() (Input, error) {
	var (
		in  Input
		err error
	)

	fail := func(field string, e error) (Input, error) {
		return Input{}, fmt.Errorf("%w: %s: %v", ErrInvalidInput, field, e)
	}

	if in.Code, err = jsonx.String(req.Code); err != nil {
		return fail("codigo_ani", err)
	}
	if in.Name, err = jsonx.String(req.Name); err != nil {
		return fail("nombre_ani", err)
	}
	if in.Chip, err = jsonx.String(req.Chip); err != nil {
		return fail("chip_ani", err)
	}
	if in.Sex, err = jsonx.String(req.Sex); err != nil {
		return fail("sexo_ani", err)
	}
	if in.GroupID, err = optInt(req.GroupID); err != nil {
		return fail("id_gru", err)
	}
	if in.FamilyCode, err = optInt(req.FamilyCode); err != nil {
		return fail("codigo_fam", err)
	}
	if in.PalpationDate, err = jsonx.Date(req.PalpationDate); err != nil {
		return fail("fechaPalpacion_ani", err)
	}
	if in.GestationTime, err = jsonx.OptString(req.GestationTime); err != nil {
		return fail("tiempoGestacion_ani", err)
	}
	if in.Weight, err = jsonx.Decimal(req.Weight); err != nil {
		return fail("peso_ani", err)
	}
	if in.EarTag, err = jsonx.OptString(req.EarTag); err != nil {
		return fail("arete_ani", err)
	}
	if in.BirthDate, err = jsonx.Date(req.BirthDate); err != nil {
		return fail("fechaNacimiento_ani", err)
	}
	if in.VaccinationDate, err = jsonx.Date(req.VaccinationDate); err != nil {
		return fail("fechaVacunacion_ani", err)
	}
	status, _, err := jsonx.Int64(req.Status)
	if err != nil {
		return fail("status_ani", err)
	}
	in.Status = Status(status)
	if in.Price, err = jsonx.Decimal(req.Price); err != nil {
		return fail("precio_ani", err)
	}

	return in, nil
}

func optInt(raw json.RawMessage) (*int64, error) {
	n, ok, err := jsonx.Int64(raw)
	if err != nil || !ok {
		return nil, err
	}
	return &n, nil
}

// createAnimalHandler godoc
// @Summary Registrar animal
// @Tags animal
// @Accept json
// @Produce json
// @Param payload body animalRequest true "Datos del animal"
// @Success 201 {object} animalResponse
// @Failure 400 {object} messageResponse
// @Failure 500 {object} messageResponse
// @Router /api/animal [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeInput(w, r)
		if !ok {
			return
		}

		a, err := svc.Create(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Obtener animal por código
// @Tags animal
// @Produce json
// @Param id path string true "codigo_ani"
// @Success 200 {object} animalResponse
// @Failure 404 {object} messageResponse "Animal no encontrado"
// @Failure 500 {object} messageResponse
// @Router /api/animal/{id} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByCode(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// updateAnimalHandler godoc
// @Summary Actualizar animal
// @Description Reemplaza el registro. chip vacío se guarda como 0 y peso ausente o no positivo como 1.
// @Tags animal
// @Accept json
// @Produce json
// @Param id path string true "codigo_ani"
// @Param payload body animalRequest true "Datos del animal"
// @Success 200 {object} messageResponse
// @Failure 400 {object} messageResponse
// @Failure 404 {object} messageResponse
// @Failure 500 {object} messageResponse
// @Router /api/animal/{id} [put]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeInput(w, r)
		if !ok {
			return
		}

		if _, err := svc.Update(r.Context(), chi.URLParam(r, "id"), in); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeJSON(w, http.StatusNotFound, messageResponse{Message: "No se encontró el animal para actualizar."})
				return
			}
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, messageResponse{Message: "Animal actualizado exitosamente."})
	}
}

// deleteAnimalHandler godoc
// @Summary Eliminar animal (borrado lógico)
// @Tags animal
// @Produce json
// @Param id path string true "codigo_ani"
// @Success 200 {object} messageResponse
// @Failure 404 {object} messageResponse
// @Failure 500 {object} messageResponse
// @Router /api/animal/{id} [delete]
func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Animal eliminado exitosamente"})
	}
}

func decodeInput(w http.ResponseWriter, r *http.Request) (Input, bool) {
	var req animalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid json"})
		return Input{}, false
	}
	in, err := req.toInput()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
		return Input{}, false
	}
	return in, true
}

func toAnimalResponse(a Animal) animalResponse {
	exists := 0
	if a.Exists {
		exists = 1
	}
	return animalResponse{
		Code:            a.Code,
		Name:            a.Name,
		Chip:            a.Chip,
		GroupID:         a.GroupID,
		FamilyCode:      a.FamilyCode,
		Sex:             a.Sex,
		PalpationDate:   jsonx.FormatDate(a.PalpationDate),
		GestationTime:   a.GestationTime,
		Weight:          jsonx.Number(a.Weight),
		EarTag:          a.EarTag,
		BirthDate:       jsonx.FormatDate(a.BirthDate),
		VaccinationDate: jsonx.FormatDate(a.VaccinationDate),
		Status:          a.Status,
		Price:           jsonx.Number(a.Price),
		Exists:          exists,
	}
}

// writeError traduce errores de dominio. Los errores de base se devuelven
// tal cual en "message" (500), como siempre lo hizo el dashboard.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, messageResponse{Message: "Animal no encontrado"})
	default:
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: err.Error()})
	}
}

// writeJSON se repite en cada módulo; no hay paquete de helpers HTTP.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package milk

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ganaderia-dashboard/internal/platform/jsonx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/produccionleche", func(mr chi.Router) {
		mr.Post("/", createRecordHandler(svc))
		mr.Get("/mensual", monthlyHandler(svc))
	})
}

type createRecordRequest struct {
	Date       json.RawMessage `json:"fecha_lec"`
	Liters     json.RawMessage `json:"litros_lec"`
	AnimalCode json.RawMessage `json:"codigo_ani"`
}

type recordResponse struct {
	ID         string      `json:"id_lec"`
	Date       string      `json:"fecha_lec"`
	Liters     json.Number `json:"litros_lec" swaggertype:"number"`
	AnimalCode *string     `json:"codigo_ani"`
	RecordedAt time.Time   `json:"registrado"`
}

type monthlyResponse struct {
	Month  string      `json:"mes"`
	Liters json.Number `json:"total_litros" swaggertype:"number"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// createRecordHandler godoc
// @Summary Registrar producción de leche
// @Tags produccionleche
// @Accept json
// @Produce json
// @Param payload body createRecordRequest true "fecha_lec YYYY-MM-DD, litros_lec >= 0"
// @Success 201 {object} recordResponse
// @Failure 400 {object} messageResponse
// @Failure 500 {object} messageResponse
// @Router /api/produccionleche [post]
func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid json"})
			return
		}

		date, err := jsonx.Date(req.Date)
		if err != nil || date == nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "fecha_lec inválida"})
			return
		}
		liters, err := jsonx.Decimal(req.Liters)
		if err != nil || !liters.Valid {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "litros_lec inválido"})
			return
		}
		code, err := jsonx.OptString(req.AnimalCode)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "codigo_ani inválido"})
			return
		}

		rec, err := svc.Create(r.Context(), CreateInput{Date: *date, Liters: liters.Decimal, AnimalCode: code})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, recordResponse{
			ID:         rec.ID,
			Date:       rec.Date.Format(jsonx.DateLayout),
			Liters:     json.Number(rec.Liters.String()),
			AnimalCode: rec.AnimalCode,
			RecordedAt: rec.RecordedAt,
		})
	}
}

// monthlyHandler godoc
// @Summary Producción mensual de leche
// @Description Devuelve 12 entradas (Enero..Diciembre) con la suma de litros; 0 en meses sin registros.
// @Tags produccionleche
// @Produce json
// @Param year query integer false "Año (por defecto el actual)"
// @Success 200 {array} monthlyResponse
// @Failure 400 {object} messageResponse
// @Failure 500 {object} messageResponse
// @Router /api/produccionleche/mensual [get]
func monthlyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year := svc.CurrentYear()
		if raw := strings.TrimSpace(r.URL.Query().Get("year")); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, messageResponse{Message: "year inválido"})
				return
			}
			year = v
		}

		totals, err := svc.MonthlyTotals(r.Context(), year)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]monthlyResponse, 0, len(totals))
		for _, t := range totals {
			out = append(out, monthlyResponse{Month: t.Month, Liters: json.Number(t.Liters.String())})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, messageResponse{Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

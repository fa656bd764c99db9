package reports

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"ganaderia-dashboard/internal/platform/jsonx"
	"ganaderia-dashboard/internal/reportdoc"

	"github.com/go-chi/chi/v5"
)

// Recorder cuenta reportes generados (ver platform/metrics).
type Recorder interface {
	ReportGenerated(kind, format string)
}

type nopRecorder struct{}

func (nopRecorder) ReportGenerated(string, string) {}

func RegisterRoutes(r chi.Router, svc *Service, rec Recorder) {
	if rec == nil {
		rec = nopRecorder{}
	}

	r.Route("/api/reportes", func(rr chi.Router) {
		rr.Get("/animales", animalReportHandler(svc, rec))
		rr.Get("/animales/pdf", animalPDFHandler(svc, rec))
		rr.Get("/familiaanimal", familyReportHandler(svc, rec))
		rr.Get("/familiaanimal/pdf", familyPDFHandler(svc, rec))
	})
}

type animalRowResponse struct {
	Code      string       `json:"codigo_ani"`
	Name      string       `json:"nombre_ani"`
	EarTag    *string      `json:"arete_ani"`
	Sex       string       `json:"sexo_ani"`
	BirthDate *string      `json:"fechaNacimiento_ani"`
	Weight    *json.Number `json:"peso_ani" swaggertype:"number"`
	Price     *json.Number `json:"precio_ani" swaggertype:"number"`
	Status    int          `json:"status_ani"`
	Category  *string      `json:"categoria,omitempty"`
}

type categoryCountResponse struct {
	Category *string `json:"categoria"`
	Total    int64   `json:"total"`
}

type animalReportResponse struct {
	Animals []animalRowResponse     `json:"animales"`
	Counts  []categoryCountResponse `json:"conteo"`
	Total   int                     `json:"total"`
}

type familyGroupResponse struct {
	FamilyCode int64               `json:"codigo_fam"`
	FamilyName string              `json:"nombre_fam"`
	Group      *string             `json:"grupo"`
	Animals    []animalRowResponse `json:"animales"`
}

type familyCountResponse struct {
	FamilyCode int64  `json:"codigo_fam"`
	FamilyName string `json:"nombre_fam"`
	Total      int64  `json:"total"`
}

type familyReportResponse struct {
	Families     []familyGroupResponse `json:"familias"`
	Counts       []familyCountResponse `json:"conteo"`
	TotalAnimals int                   `json:"totalAnimales"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toAnimalRowResponse(a AnimalRow, withCategory bool) animalRowResponse {
	out := animalRowResponse{
		Code:      a.Code,
		Name:      a.Name,
		EarTag:    a.EarTag,
		Sex:       a.Sex,
		BirthDate: jsonx.FormatDate(a.BirthDate),
		Weight:    jsonx.Number(a.Weight),
		Price:     jsonx.Number(a.Price),
		Status:    int(a.Status),
	}
	if withCategory {
		out.Category = a.Category
	}
	return out
}

// animalReportHandler godoc
// @Summary Reporte de animales por categoría
// @Tags reportes
// @Produce json
// @Param categoria query string false "Nombre del grupo o Todos"
// @Success 200 {object} animalReportResponse
// @Failure 500 {object} messageResponse
// @Router /api/reportes/animales [get]
func animalReportHandler(svc *Service, rec Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.AnimalReport(r.Context(), r.URL.Query().Get("categoria"))
		if err != nil {
			writeError(w, err, "Error al obtener el reporte de animales")
			return
		}

		out := animalReportResponse{
			Animals: make([]animalRowResponse, 0, len(rep.Animals)),
			Counts:  make([]categoryCountResponse, 0, len(rep.Counts)),
			Total:   rep.Total,
		}
		for _, a := range rep.Animals {
			out.Animals = append(out.Animals, toAnimalRowResponse(a, true))
		}
		for _, c := range rep.Counts {
			out.Counts = append(out.Counts, categoryCountResponse{Category: c.Category, Total: c.Total})
		}

		rec.ReportGenerated(reportdoc.KindAnimals, "json")
		writeJSON(w, http.StatusOK, out)
	}
}

// familyReportHandler godoc
// @Summary Reporte de familias con sus animales
// @Tags reportes
// @Produce json
// @Param familia query string false "Nombre de la familia o Todos"
// @Success 200 {object} familyReportResponse
// @Failure 500 {object} messageResponse
// @Router /api/reportes/familiaanimal [get]
func familyReportHandler(svc *Service, rec Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.FamilyReport(r.Context(), r.URL.Query().Get("familia"))
		if err != nil {
			writeError(w, err, "Error al obtener el reporte de familias")
			return
		}

		out := familyReportResponse{
			Families:     make([]familyGroupResponse, 0, len(rep.Families)),
			Counts:       make([]familyCountResponse, 0, len(rep.Counts)),
			TotalAnimals: rep.TotalAnimals,
		}
		for _, f := range rep.Families {
			g := familyGroupResponse{
				FamilyCode: f.FamilyCode,
				FamilyName: f.FamilyName,
				Group:      f.Group,
				Animals:    make([]animalRowResponse, 0, len(f.Animals)),
			}
			for _, a := range f.Animals {
				g.Animals = append(g.Animals, toAnimalRowResponse(a, false))
			}
			out.Families = append(out.Families, g)
		}
		for _, c := range rep.Counts {
			out.Counts = append(out.Counts, familyCountResponse{FamilyCode: c.FamilyCode, FamilyName: c.FamilyName, Total: c.Total})
		}

		rec.ReportGenerated(reportdoc.KindFamilies, "json")
		writeJSON(w, http.StatusOK, out)
	}
}

// animalPDFHandler godoc
// @Summary Descargar reporte de animales en PDF
// @Tags reportes
// @Produce application/pdf
// @Param categoria query string false "Nombre del grupo o Todos"
// @Success 200 {file} file
// @Failure 500 {object} messageResponse
// @Router /api/reportes/animales/pdf [get]
func animalPDFHandler(svc *Service, rec Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("categoria")
		doc, err := svc.AnimalDocument(r.Context(), category)
		if err != nil {
			writeError(w, err, "Error al obtener el reporte de animales")
			return
		}
		writePDF(w, doc, svc.Filename(reportdoc.KindAnimals, category))
		rec.ReportGenerated(reportdoc.KindAnimals, "pdf")
	}
}

// familyPDFHandler godoc
// @Summary Descargar reporte de familias en PDF
// @Tags reportes
// @Produce application/pdf
// @Param familia query string false "Nombre de la familia o Todos"
// @Success 200 {file} file
// @Failure 500 {object} messageResponse
// @Router /api/reportes/familiaanimal/pdf [get]
func familyPDFHandler(svc *Service, rec Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		family := r.URL.Query().Get("familia")
		doc, err := svc.FamilyDocument(r.Context(), family)
		if err != nil {
			writeError(w, err, "Error al obtener el reporte de familias")
			return
		}
		writePDF(w, doc, svc.Filename(reportdoc.KindFamilies, family))
		rec.ReportGenerated(reportdoc.KindFamilies, "pdf")
	}
}

// writePDF renderiza a memoria antes de escribir headers para poder responder 500.
func writePDF(w http.ResponseWriter, doc *reportdoc.Document, filename string) {
	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Report-ID", doc.ID)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// writeError responde 500 con el mensaje crudo de la base.
func writeError(w http.ResponseWriter, err error, fallback string) {
	msg := err.Error()
	if msg == "" {
		msg = fallback
	}
	writeJSON(w, http.StatusInternalServerError, messageResponse{Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

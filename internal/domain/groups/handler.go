package groups

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/grupoAnimales", func(gr chi.Router) {
		gr.Post("/", createGroupHandler(svc))
		gr.Get("/", listGroupsHandler(svc))
		gr.Get("/{id}", getGroupHandler(svc))
	})

	r.Route("/api/familia", func(fr chi.Router) {
		fr.Post("/", createFamilyHandler(svc))
		// {id} es el id_gru: familias de un grupo
		fr.Get("/{id}", listFamiliesHandler(svc))
	})
}

type groupResponse struct {
	ID   int64  `json:"id_gru"`
	Name string `json:"name_gru"`
}

type familyResponse struct {
	Code    int64  `json:"codigo_fam"`
	Name    string `json:"name_fam"`
	GroupID int64  `json:"id_gru"`
}

type createGroupRequest struct {
	Name string `json:"name_gru"`
}

type createFamilyRequest struct {
	Name    string `json:"name_fam"`
	GroupID int64  `json:"id_gru"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func createGroupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createGroupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid json"})
			return
		}

		g, err := svc.CreateGroup(r.Context(), req.Name)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, groupResponse{ID: g.ID, Name: g.Name})
	}
}

func listGroupsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListGroups(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]groupResponse, 0, len(items))
		for _, g := range items {
			out = append(out, groupResponse{ID: g.ID, Name: g.Name})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getGroupHandler godoc
// @Summary Obtener grupo de animales por id
// @Tags grupoAnimales
// @Produce json
// @Param id path integer true "id_gru"
// @Success 200 {object} groupResponse
// @Failure 400 {object} messageResponse "ID de grupo no proporcionado"
// @Failure 404 {object} messageResponse "Grupo no encontrado"
// @Failure 500 {object} messageResponse
// @Router /api/grupoAnimales/{id} [get]
func getGroupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		g, err := svc.GetGroup(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, groupResponse{ID: g.ID, Name: g.Name})
	}
}

func createFamilyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createFamilyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid json"})
			return
		}

		f, err := svc.CreateFamily(r.Context(), req.Name, req.GroupID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, familyResponse{Code: f.Code, Name: f.Name, GroupID: f.GroupID})
	}
}

func listFamiliesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		items, err := svc.FamiliesByGroup(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]familyResponse, 0, len(items))
		for _, f := range items {
			out = append(out, familyResponse{Code: f.Code, Name: f.Name, GroupID: f.GroupID})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func parseID(w http.ResponseWriter, raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "ID de grupo no proporcionado"})
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "ID de grupo inválido"})
		return 0, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, messageResponse{Message: "Grupo no encontrado"})
	default:
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package clients

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/cliente", func(cr chi.Router) {
		cr.Post("/", createClientHandler(svc))
		cr.Get("/", listClientsHandler(svc))

		cr.Get("/{id}", getClientHandler(svc))
		cr.Put("/{id}", updateClientHandler(svc))
		cr.Delete("/{id}", deleteClientHandler(svc))
	})
}

// clientPayload se usa para request y response (mismo shape).
type clientPayload struct {
	Code    string `json:"codigo_cli"`
	Name    string `json:"nombre_cli"`
	Phone   string `json:"telefono_cli"`
	RIF     string `json:"rif_cli"`
	Email   string `json:"email_cli"`
	Address string `json:"direccion_cli"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (p clientPayload) toClient() Client {
	return Client{
		Code:    p.Code,
		Name:    p.Name,
		Phone:   p.Phone,
		RIF:     p.RIF,
		Email:   p.Email,
		Address: p.Address,
	}
}

func toClientPayload(c Client) clientPayload {
	return clientPayload{
		Code:    c.Code,
		Name:    c.Name,
		Phone:   c.Phone,
		RIF:     c.RIF,
		Email:   c.Email,
		Address: c.Address,
	}
}

func createClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req clientPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid json"})
			return
		}

		c, err := svc.Create(r.Context(), req.toClient())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toClientPayload(c))
	}
}

func listClientsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]clientPayload, 0, len(items))
		for _, c := range items {
			out = append(out, toClientPayload(c))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getClientHandler godoc
// @Summary Obtener cliente por código
// @Tags cliente
// @Produce json
// @Param id path string true "codigo_cli"
// @Success 200 {object} clientPayload
// @Failure 404 {object} messageResponse "Cliente no encontrado"
// @Failure 500 {object} messageResponse
// @Router /api/cliente/{id} [get]
func getClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByCode(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toClientPayload(c))
	}
}

func updateClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req clientPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid json"})
			return
		}

		c, err := svc.Update(r.Context(), chi.URLParam(r, "id"), req.toClient())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toClientPayload(c))
	}
}

func deleteClientHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "Cliente eliminado exitosamente"})
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "codigo_cli y nombre_cli son requeridos; email_cli debe ser válido"})
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, messageResponse{Message: "Cliente no encontrado"})
	default:
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

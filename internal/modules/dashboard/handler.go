package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the mock dashboard.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/api/v1/dashboard", h.view)
}

func (h *Handler) view(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	v, err := h.service.View(r.Context(), Role(q.Get("role")), q.Get("tab"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrUnknownRole) || errors.Is(err, ErrUnknownTab) {
			status = http.StatusBadRequest
		}
		respond(w, status, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, v)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

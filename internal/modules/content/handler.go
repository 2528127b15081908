package content

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the marketing content endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/content", func(r chi.Router) {
		r.Get("/home", h.home)
		r.Get("/about", h.about)
	})
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	slide, err := intParam(r, "slide")
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "slide must be an integer"})
		return
	}
	quote, err := intParam(r, "testimonial")
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "testimonial must be an integer"})
		return
	}
	respond(w, http.StatusOK, h.service.Home(slide, quote))
}

func (h *Handler) about(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.About())
}

func intParam(r *http.Request, key string) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

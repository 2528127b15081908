package nutro

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/nutro", func(r chi.Router) {
		r.Get("/", h.page)
		r.Post("/waitlist", h.subscribe)
	})
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.Page())
}

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	var req WaitlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	sub, err := h.service.Subscribe(r.Context(), req.Email)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidEmail) {
			status = http.StatusUnprocessableEntity
		}
		respond(w, status, map[string]string{"error": err.Error()})
		return
	}
	status := http.StatusCreated
	if sub.AlreadySubscribed {
		status = http.StatusOK
	}
	respond(w, status, sub)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the login and signup endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Post("/signup", h.signup)
		r.Post("/signup/validate", h.validateStep)
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var form LoginForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	res, err := h.service.Login(r.Context(), form)
	if err != nil {
		respondError(w, err)
		return
	}
	status := http.StatusOK
	if !res.OK {
		status = http.StatusUnauthorized
	}
	respond(w, status, res)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	form := NewSignupForm()
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	u, err := h.service.Signup(r.Context(), form)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, u)
}

// validateStep runs the wizard's "Next Step" check for ?step=N.
func (h *Handler) validateStep(w http.ResponseWriter, r *http.Request) {
	step, err := strconv.Atoi(r.URL.Query().Get("step"))
	if err != nil {
		step = 1
	}
	form := NewSignupForm()
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	next, err := Wizard{Step: step}.Next(form)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"step": next.Step, "final": next.Final()})
}

func respondError(w http.ResponseWriter, err error) {
	var verrs ValidationErrors
	switch {
	case errors.As(err, &verrs):
		respond(w, http.StatusUnprocessableEntity, map[string]interface{}{"error": "validation failed", "fields": verrs})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respond(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	default:
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler exposes catalog HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Get("/products/{id}", h.getProduct)
		r.Get("/facets", h.facets)
		r.Get("/featured", h.featured)
		r.Post("/favorites", h.toggleFavorite)
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	state, err := ParseQuery(r.URL.Query())
	if err != nil {
		respondError(w, err)
		return
	}
	result, err := h.service.ListProducts(r.Context(), state)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, result)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid product id"})
		return
	}
	p, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) facets(w http.ResponseWriter, r *http.Request) {
	f, err := h.service.Facets(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, f)
}

func (h *Handler) featured(w http.ResponseWriter, r *http.Request) {
	lineup, err := h.service.Featured(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, lineup)
}

// FavoritesRequest carries the client's current favorites and the product
// whose heart was clicked.
type FavoritesRequest struct {
	Favorites []int `json:"favorites"`
	ProductID int   `json:"product_id"`
}

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	var req FavoritesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if _, err := h.service.GetProduct(r.Context(), req.ProductID); err != nil && !inLineup(req.ProductID) {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string][]int{"favorites": ToggleFavorite(req.Favorites, req.ProductID)})
}

func respondError(w http.ResponseWriter, err error) {
	var ferr *FilterError
	switch {
	case errors.As(err, &ferr):
		respond(w, http.StatusBadRequest, map[string]interface{}{"error": ErrInvalidFilter.Error(), "fields": ferr.Fields})
	case errors.Is(err, ErrProductNotFound):
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

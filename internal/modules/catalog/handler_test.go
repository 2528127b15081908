package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(repo Repository) *chi.Mux {
	r := chi.NewRouter()
	NewHandler(NewService(repo)).RegisterRoutes(r)
	return r
}

func serve(t *testing.T, r http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestListProductsHandler(t *testing.T) {
	r := newTestRouter(NewMemoryRepository(Seed()))

	rec := serve(t, r, http.MethodGet, "/api/v1/catalog/products?min_price=4.49&max_price=4.99&category=proton", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var res Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, []int{1, 2}, ids(res.Products))
	assert.Equal(t, 6, res.Total)
	assert.True(t, res.Filtered)
}

func TestListProductsHandlerUnfiltered(t *testing.T) {
	r := newTestRouter(NewMemoryRepository(Seed()))

	rec := serve(t, r, http.MethodGet, "/api/v1/catalog/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Len(t, res.Products, 6)
	assert.False(t, res.Filtered)
}

func TestListProductsHandlerEmptyResult(t *testing.T) {
	r := newTestRouter(NewMemoryRepository(Seed()))

	rec := serve(t, r, http.MethodGet, "/api/v1/catalog/products?q=cola", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.JSONEq(t, `[]`, string(raw["products"]))
	assert.JSONEq(t, `true`, string(raw["filtered"]))
}

func TestListProductsHandlerRejectsBadQuery(t *testing.T) {
	r := newTestRouter(NewMemoryRepository(Seed()))

	rec := serve(t, r, http.MethodGet, "/api/v1/catalog/products?category=quark&min_price=x", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrInvalidFilter.Error(), body.Error)
	assert.Contains(t, body.Fields, QueryCategory)
	assert.Contains(t, body.Fields, QueryMinPrice)
}

func TestGetProductHandler(t *testing.T) {
	r := newTestRouter(NewMemoryRepository(Seed()))

	rec := serve(t, r, http.MethodGet, "/api/v1/catalog/products/5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var p Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "Electron Recover", p.Name)
	assert.Equal(t, "5.49", p.Price.String())
	assert.Len(t, p.Nutrients, 7)

	assert.Equal(t, http.StatusNotFound, serve(t, r, http.MethodGet, "/api/v1/catalog/products/99", nil).Code)
	assert.Equal(t, http.StatusBadRequest, serve(t, r, http.MethodGet, "/api/v1/catalog/products/abc", nil).Code)
}

func TestFacetsAndFeaturedHandlers(t *testing.T) {
	r := newTestRouter(NewMemoryRepository(Seed()))

	rec := serve(t, r, http.MethodGet, "/api/v1/catalog/facets", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var f Facets
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))
	assert.Len(t, f.Categories, 3)
	assert.Equal(t, "0.5", f.Price.Step.String())

	rec = serve(t, r, http.MethodGet, "/api/v1/catalog/featured", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var lineup Lineup
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lineup))
	require.Len(t, lineup.Groups, 3)
	assert.Equal(t, CategoryProton, lineup.Active)
	assert.Len(t, lineup.Groups[0].Products, FeaturedPerGroup)
}

func TestToggleFavoriteHandler(t *testing.T) {
	r := newTestRouter(NewMemoryRepository(Seed()))

	rec := serve(t, r, http.MethodPost, "/api/v1/catalog/favorites", []byte(`{"favorites":[1,3],"product_id":3}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"favorites":[1]}`, rec.Body.String())

	rec = serve(t, r, http.MethodPost, "/api/v1/catalog/favorites", []byte(`{"favorites":[1],"product_id":2}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"favorites":[1,2]}`, rec.Body.String())

	rec = serve(t, r, http.MethodPost, "/api/v1/catalog/favorites", []byte(`{"favorites":[1],"product_id":9}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"favorites":[1,9]}`, rec.Body.String())

	rec = serve(t, r, http.MethodPost, "/api/v1/catalog/favorites", []byte(`{"favorites":[],"product_id":42}`))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, r, http.MethodPost, "/api/v1/catalog/favorites", []byte(`{`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type failingRepo struct{}

func (failingRepo) List(context.Context) ([]Product, error) { return nil, errors.New("catalog offline") }

func (failingRepo) GetByID(context.Context, int) (*Product, error) {
	return nil, errors.New("catalog offline")
}

func TestHandlerRepositoryFailure(t *testing.T) {
	r := newTestRouter(failingRepo{})

	rec := serve(t, r, http.MethodGet, "/api/v1/catalog/products", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "catalog offline")
}

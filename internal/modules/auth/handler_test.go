package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	r := chi.NewRouter()
	NewHandler(newFixture(t, Options{}).service).RegisterRoutes(r)
	return r
}

func post(r http.Handler, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(body)))
	return rec
}

const signupBody = `{"full_name":"Alex Thompson","email":"alex@example.com","password":"electrolytes","age":"24","primary_sport":"basketball"}`

func TestSignupAndLoginHandlers(t *testing.T) {
	r := newTestRouter(t)

	rec := post(r, "/api/v1/auth/signup", signupBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "player", created["role"])
	assert.Equal(t, "moderate", created["sport_intensity"])
	assert.NotContains(t, rec.Body.String(), "electrolytes")

	rec = post(r, "/api/v1/auth/signup", signupBody)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = post(r, "/api/v1/auth/login", `{"email":"alex@example.com","password":"electrolytes"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var res Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.OK)
	assert.NotEmpty(t, res.Token)

	rec = post(r, "/api/v1/auth/login", `{"email":"alex@example.com","password":"sugar"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"ok":false,"reason":"invalid_credentials"}`, rec.Body.String())
}

func TestLoginHandlerValidation(t *testing.T) {
	r := newTestRouter(t)

	rec := post(r, "/api/v1/auth/login", `{"email":"","password":""}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":"validation failed","fields":{"email":"Valid email is required","password":"Password is required"}}`, rec.Body.String())

	rec = post(r, "/api/v1/auth/login", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateStepHandler(t *testing.T) {
	r := newTestRouter(t)

	rec := post(r, "/api/v1/auth/signup/validate?step=1", `{"full_name":"Alex Thompson","email":"alex@example.com","password":"electrolytes"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"step":2,"final":true}`, rec.Body.String())

	rec = post(r, "/api/v1/auth/signup/validate?step=2", `{"age":"","primary_sport":"chess"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{
		"age":           "Age is required",
		"primary_sport": "Primary sport is required",
	}, body.Fields)
}

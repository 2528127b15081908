package logging

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "loud")
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())

	logger.Info("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestRequestLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("ok")) })
	r.Get("/missing", func(w http.ResponseWriter, r *http.Request) { http.NotFound(w, r) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, http.StatusOK, entry.Data["status_code"])
	assert.Equal(t, "/ok", entry.Data["path"])
	assert.NotEmpty(t, entry.Data["request_id"])

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))
	entry = hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, http.StatusNotFound, entry.Data["status_code"])
}

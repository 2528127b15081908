package logging

import (
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// New builds a JSON logger writing to out. Unknown levels fall back to info.
func New(out io.Writer, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger
}

// RequestLogger logs one entry per request once the handler has finished.
// It relies on middleware.RequestID running earlier in the chain.
func RequestLogger(logger logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			entry := logger.WithFields(logrus.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"remote_ip":   r.RemoteAddr,
				"status_code": status,
				"bytes":       ww.BytesWritten(),
				"latency_ms":  time.Since(start).Milliseconds(),
			})
			if reqID := middleware.GetReqID(r.Context()); reqID != "" {
				entry = entry.WithField("request_id", reqID)
			}

			switch {
			case status >= 500:
				entry.Error("Request completed with server error")
			case status >= 400:
				entry.Warn("Request completed with client error")
			default:
				entry.Info("Request completed")
			}
		}
		return http.HandlerFunc(fn)
	}
}

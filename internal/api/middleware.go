package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tejavath/vaanibill/internal/metrics"
)

// requestLogger logs every request and feeds the Prometheus collectors.
// Route patterns (not raw paths) label the metrics to keep cardinality
// bounded.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}

		metrics.RequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(ww.Status())).Inc()
		metrics.RequestDuration.WithLabelValues(route).Observe(duration.Seconds())

		logFn := slog.Info
		if ww.Status() >= http.StatusInternalServerError {
			logFn = slog.Error
		} else if ww.Status() >= http.StatusBadRequest {
			logFn = slog.Warn
		}
		logFn("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", duration.Milliseconds(),
		)
	})
}

// cors adds the headers the browser client needs.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

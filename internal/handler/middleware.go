package handler

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/GoArmGo/BlogApp/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// AccessLogger — middleware доступа: одна запись на входе запроса и одна
// на выходе, с длительностью обработки. Отсутствующий User-Agent
// отображается пустым сегментом.
func AccessLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			logger.Info(fmt.Sprintf("%s %s - %s - %s - Request started",
				r.Method, r.URL.Path, clientIP(r), r.UserAgent()))

			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(ww, r)

			logger.Info(fmt.Sprintf("%s %s - %d - %dms - Request completed",
				r.Method, r.URL.Path, ww.statusCode, time.Since(start).Milliseconds()))
		})
	}
}

// MetricsMiddleware записывает счётчик и длительность каждого запроса.
// В качестве пути используется шаблон маршрута, а не сырой URL.
func MetricsMiddleware(m *metrics.Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(ww, r)

			path := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				path = rctx.RoutePattern()
			}

			m.RecordHTTPRequest(r.Method, path, strconv.Itoa(ww.statusCode), time.Since(start))
		})
	}
}

func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// responseWriter нужен, чтобы перехватывать код ответа
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

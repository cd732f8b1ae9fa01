package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// RequestIDHeader заголовок корреляции запросов
const RequestIDHeader = "X-Request-ID"

// RequestLogger пишет строку лога на каждый завершённый запрос
// Отсутствующий X-Request-ID генерируется и возвращается в ответе
func RequestLogger(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqID := r.Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, reqID)

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			duration := time.Since(start).Milliseconds()
			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("%s %s - status=%d, duration_ms=%d, request_id=%s",
					r.Method, r.URL.Path, rec.status, duration, reqID)
			case rec.status >= http.StatusBadRequest:
				logger.Warn("%s %s - status=%d, duration_ms=%d, request_id=%s",
					r.Method, r.URL.Path, rec.status, duration, reqID)
			default:
				logger.Info("%s %s - status=%d, duration_ms=%d, request_id=%s",
					r.Method, r.URL.Path, rec.status, duration, reqID)
			}
		})
	}
}

package middleware

import (
	"net/http"
	"time"

	"cat-collector/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLog registra cada request y deja en el contexto un logger con request_id
// (y user_id si hay claims) para que los handlers logueen con el mismo contexto.
// chimw.RequestID y AuthContext deben ir antes.
func RequestLog(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			reqFields := map[string]any{"request_id": chimw.GetReqID(r.Context())}
			if uid, ok := UserID(r.Context()); ok {
				reqFields["user_id"] = uid
			}
			reqLog := log.With(reqFields)

			next.ServeHTTP(ww, r.WithContext(logger.NewContext(r.Context(), reqLog)))

			status := ww.Status()
			if status == 0 {
				// el handler no escribió nada: net/http responde 200
				status = http.StatusOK
			}

			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
			}

			switch {
			case status >= 500:
				reqLog.Error("request", fields)
			case status >= 400:
				reqLog.Warn("request", fields)
			default:
				reqLog.Info("request", fields)
			}
		})
	}
}

package respond

import (
	"encoding/json"
	"net/http"

	"cat-collector/internal/platform/logger"
)

// JSON escribe v como JSON con el status indicado.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// InternalError loguea la causa con el logger del request y responde 500 sin detalles.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).Error("internal error", map[string]any{
		"method": r.Method,
		"path":   r.URL.Path,
		"error":  err,
	})
	http.Error(w, "internal error", http.StatusInternalServerError)
}

package access

import (
	"errors"
	"net/http"

	"cat-collector/internal/platform/respond"
)

// WriteError traduce un error de AuthorizeCat a la respuesta HTTP.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "cat not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		respond.InternalError(w, r, err)
	}
}

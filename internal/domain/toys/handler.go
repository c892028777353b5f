package toys

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cat-collector/internal/domain/access"
	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, guard *access.Guard) {
	// Juguetes compartidos (cualquier usuario autenticado)
	r.Route("/toys", func(tr chi.Router) {
		tr.Get("/", listToysHandler(svc))
		tr.Post("/", createToyHandler(svc))
		tr.Get("/{toyID}", getToyHandler(svc))
		tr.Patch("/{toyID}", updateToyHandler(svc))
		tr.Delete("/{toyID}", deleteToyHandler(svc))
	})

	// Asociación gato <-> juguete (solo alta, no hay baja)
	r.Post("/cats/{catID}/toys/{toyID}", associateToyHandler(svc, guard))
}

type toyRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// updateToyRequest: punteros para PATCH (nil = no tocar).
type updateToyRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

// ToyResponse también lo usa el detalle del gato.
type ToyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// listToysHandler godoc
// @Summary Listar juguetes
// @Tags toys
// @Produce json
// @Success 200 {array} ToyResponse
// @Failure 401 {string} string "unauthorized"
// @Router /toys [get]
func listToysHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			respond.InternalError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, ToResponses(items))
	}
}

// createToyHandler godoc
// @Summary Crear juguete
// @Tags toys
// @Accept json
// @Produce json
// @Param payload body toyRequest true "name y color (máx. 50)"
// @Success 201 {object} ToyResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Router /toys [post]
func createToyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req toyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := svc.Create(r.Context(), Input{Name: req.Name, Color: req.Color})
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusCreated, ToResponse(t))
	}
}

// getToyHandler godoc
// @Summary Detalle de juguete
// @Tags toys
// @Produce json
// @Param toyID path string true "ID del juguete"
// @Success 200 {object} ToyResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "toy not found"
// @Router /toys/{toyID} [get]
func getToyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		t, err := svc.GetByID(r.Context(), chi.URLParam(r, "toyID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, ToResponse(t))
	}
}

// updateToyHandler godoc
// @Summary Actualizar juguete
// @Tags toys
// @Accept json
// @Produce json
// @Param toyID path string true "ID del juguete"
// @Param payload body updateToyRequest true "name y/o color"
// @Success 200 {object} ToyResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "toy not found"
// @Router /toys/{toyID} [patch]
func updateToyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateToyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		t, err := svc.Update(r.Context(), chi.URLParam(r, "toyID"), UpdateInput{Name: req.Name, Color: req.Color})
		if err != nil {
			writeError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, ToResponse(t))
	}
}

// deleteToyHandler godoc
// @Summary Borrar juguete
// @Description Borra el juguete y lo quita de todos los gatos.
// @Tags toys
// @Param toyID path string true "ID del juguete"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "toy not found"
// @Router /toys/{toyID} [delete]
func deleteToyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "toyID")); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// associateToyHandler godoc
// @Summary Asociar juguete a gato
// @Description Idempotente: asociar dos veces deja una sola asociación. Devuelve los juguetes del gato.
// @Tags toys
// @Produce json
// @Param catID path string true "ID del gato"
// @Param toyID path string true "ID del juguete"
// @Success 200 {array} ToyResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "cat not found / toy not found"
// @Router /cats/{catID}/toys/{toyID} [post]
func associateToyHandler(svc *Service, guard *access.Guard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		catID := chi.URLParam(r, "catID")
		if err := guard.AuthorizeCat(r.Context(), catID, userID); err != nil {
			access.WriteError(w, r, err)
			return
		}

		if err := svc.Associate(r.Context(), catID, chi.URLParam(r, "toyID")); err != nil {
			writeError(w, r, err)
			return
		}

		items, err := svc.ListByCat(r.Context(), catID)
		if err != nil {
			respond.InternalError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, ToResponses(items))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "toy not found", http.StatusNotFound)
	case errors.Is(err, ErrCatNotFound):
		http.Error(w, "cat not found", http.StatusNotFound)
	default:
		respond.InternalError(w, r, err)
	}
}

func ToResponse(t Toy) ToyResponse {
	return ToyResponse{
		ID:        t.ID,
		Name:      t.Name,
		Color:     t.Color,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func ToResponses(items []Toy) []ToyResponse {
	out := make([]ToyResponse, 0, len(items))
	for _, t := range items {
		out = append(out, ToResponse(t))
	}
	return out
}

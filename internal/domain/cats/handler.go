package cats

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cat-collector/internal/domain/access"
	"cat-collector/internal/domain/feedings"
	"cat-collector/internal/domain/photos"
	"cat-collector/internal/domain/toys"
	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// DetailSources son los servicios que arman la vista de detalle del gato.
type DetailSources struct {
	Feedings *feedings.Service
	Toys     *toys.Service
	Photos   *photos.Service
}

func RegisterRoutes(r chi.Router, svc *Service, guard *access.Guard, detail DetailSources) {
	r.Route("/cats", func(cr chi.Router) {
		// Solo los gatos del usuario autenticado
		cr.Get("/", listCatsHandler(svc))
		cr.Post("/", createCatHandler(svc))

		cr.Get("/{catID}", getCatHandler(svc, guard, detail))
		cr.Patch("/{catID}", updateCatHandler(svc, guard))
		cr.Delete("/{catID}", deleteCatHandler(svc, guard))
	})
}

// createCatRequest no tiene owner: el dueño siempre es el usuario autenticado.
type createCatRequest struct {
	Name        string `json:"name"`
	Breed       string `json:"breed"`
	Description string `json:"description"`
	Age         int    `json:"age"`
}

// updateCatRequest: punteros para PATCH real (nil = no tocar). name no es editable.
type updateCatRequest struct {
	Breed       *string `json:"breed"`
	Description *string `json:"description"`
	Age         *int    `json:"age"`
}

type catResponse struct {
	ID          string    `json:"id"`
	OwnerUserID string    `json:"owner_user_id"`
	Name        string    `json:"name"`
	Breed       string    `json:"breed"`
	Description string    `json:"description"`
	Age         int       `json:"age"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type catDetailResponse struct {
	Cat          catResponse                `json:"cat"`
	FedForToday  bool                       `json:"fed_for_today"`
	Feedings     []feedings.FeedingResponse `json:"feedings"`
	Toys         []toys.ToyResponse         `json:"toys"`
	ToysNotOnCat []toys.ToyResponse         `json:"toys_not_on_cat"`
	Photos       []photos.PhotoResponse     `json:"photos"`
}

// listCatsHandler godoc
// @Summary Listar mis gatos
// @Description Devuelve solo los gatos del usuario autenticado, en orden de alta.
// @Tags cats
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} catResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /cats [get]
func listCatsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), userID)
		if err != nil {
			respond.InternalError(w, r, err)
			return
		}

		out := make([]catResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toCatResponse(c))
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// createCatHandler godoc
// @Summary Crear gato
// @Description name y breed hasta 100 caracteres, description hasta 250, age >= 0. El dueño es siempre el usuario autenticado.
// @Tags cats
// @Accept json
// @Produce json
// @Param payload body createCatRequest true "Datos del gato"
// @Success 201 {object} catResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Router /cats [post]
func createCatHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createCatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Create(r.Context(), userID, CreateInput{
			Name:        req.Name,
			Breed:       req.Breed,
			Description: req.Description,
			Age:         req.Age,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		respond.JSON(w, http.StatusCreated, toCatResponse(c))
	}
}

// getCatHandler godoc
// @Summary Detalle del gato
// @Description Gato con sus comidas (fecha desc), fed_for_today, juguetes, juguetes que no tiene y fotos.
// @Tags cats
// @Produce json
// @Param catID path string true "ID del gato"
// @Success 200 {object} catDetailResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "cat not found"
// @Router /cats/{catID} [get]
func getCatHandler(svc *Service, guard *access.Guard, detail DetailSources) http.HandlerFunc {
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

		c, err := svc.GetByID(r.Context(), catID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		out, err := buildDetail(r, c, detail)
		if err != nil {
			respond.InternalError(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// updateCatHandler godoc
// @Summary Actualizar gato
// @Description Solo breed, description y age. Enviar name u owner devuelve 400.
// @Tags cats
// @Accept json
// @Produce json
// @Param catID path string true "ID del gato"
// @Param payload body updateCatRequest true "Campos a cambiar"
// @Success 200 {object} catResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "cat not found"
// @Router /cats/{catID} [patch]
func updateCatHandler(svc *Service, guard *access.Guard) http.HandlerFunc {
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

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateCatRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json (editable fields: breed, description, age)", http.StatusBadRequest)
			return
		}

		c, err := svc.Update(r.Context(), catID, UpdateInput{
			Breed:       req.Breed,
			Description: req.Description,
			Age:         req.Age,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, toCatResponse(c))
	}
}

// deleteCatHandler godoc
// @Summary Borrar gato
// @Description Borra el gato junto con sus comidas, fotos y asociaciones con juguetes.
// @Tags cats
// @Param catID path string true "ID del gato"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "cat not found"
// @Router /cats/{catID} [delete]
func deleteCatHandler(svc *Service, guard *access.Guard) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), catID); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func buildDetail(r *http.Request, c Cat, src DetailSources) (catDetailResponse, error) {
	ctx := r.Context()

	fs, err := src.Feedings.ListByCat(ctx, c.ID)
	if err != nil {
		return catDetailResponse{}, err
	}
	fed, err := src.Feedings.FedForToday(ctx, c.ID)
	if err != nil {
		return catDetailResponse{}, err
	}
	has, err := src.Toys.ListByCat(ctx, c.ID)
	if err != nil {
		return catDetailResponse{}, err
	}
	missing, err := src.Toys.ListNotOnCat(ctx, c.ID)
	if err != nil {
		return catDetailResponse{}, err
	}
	ps, err := src.Photos.ListByCat(ctx, c.ID)
	if err != nil {
		return catDetailResponse{}, err
	}

	return catDetailResponse{
		Cat:          toCatResponse(c),
		FedForToday:  fed,
		Feedings:     feedings.ToResponses(fs),
		Toys:         toys.ToResponses(has),
		ToysNotOnCat: toys.ToResponses(missing),
		Photos:       photos.ToResponses(ps),
	}, nil
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "cat not found", http.StatusNotFound)
	default:
		respond.InternalError(w, r, err)
	}
}

func toCatResponse(c Cat) catResponse {
	return catResponse{
		ID:          c.ID,
		OwnerUserID: c.OwnerUserID,
		Name:        c.Name,
		Breed:       c.Breed,
		Description: c.Description,
		Age:         c.Age,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

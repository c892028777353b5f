package feedings

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"cat-collector/internal/domain/access"
	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, guard *access.Guard) {
	r.Route("/cats/{catID}/feedings", func(fr chi.Router) {
		fr.Post("/", addFeedingHandler(svc, guard))
		fr.Get("/", listFeedingsHandler(svc, guard))
	})
}

// addFeedingRequest es el cuerpo para registrar una comida.
type addFeedingRequest struct {
	Date string `json:"date"`               // YYYY-MM-DD
	Meal string `json:"meal" enums:"B,L,D"` // opcional, default B
}

// FeedingResponse también lo usa el detalle del gato.
type FeedingResponse struct {
	ID          string    `json:"id"`
	CatID       string    `json:"cat_id"`
	Date        string    `json:"date"`
	Meal        Meal      `json:"meal"`
	MealDisplay string    `json:"meal_display"`
	CreatedAt   time.Time `json:"created_at"`
}

// addFeedingHandler godoc
// @Summary Registrar comida
// @Description Registra una comida (B, L o D; default B) para el gato. Con política owner solo el dueño puede hacerlo.
// @Tags feedings
// @Accept json
// @Produce json
// @Param catID path string true "ID del gato"
// @Param payload body addFeedingRequest true "date en formato YYYY-MM-DD"
// @Success 201 {object} FeedingResponse
// @Failure 400 {string} string "invalid json / date / meal"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "cat not found"
// @Router /cats/{catID}/feedings [post]
func addFeedingHandler(svc *Service, guard *access.Guard) http.HandlerFunc {
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

		var req addFeedingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date, err := time.Parse("2006-01-02", strings.TrimSpace(req.Date))
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		meal, err := ParseMeal(req.Meal)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		f, err := svc.Add(r.Context(), catID, AddInput{Date: date, Meal: meal})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			respond.InternalError(w, r, err)
			return
		}

		respond.JSON(w, http.StatusCreated, ToResponse(f))
	}
}

// listFeedingsHandler godoc
// @Summary Listar comidas del gato
// @Description Comidas ordenadas por fecha descendente.
// @Tags feedings
// @Produce json
// @Param catID path string true "ID del gato"
// @Success 200 {array} FeedingResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "cat not found"
// @Router /cats/{catID}/feedings [get]
func listFeedingsHandler(svc *Service, guard *access.Guard) http.HandlerFunc {
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

		items, err := svc.ListByCat(r.Context(), catID)
		if err != nil {
			respond.InternalError(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, ToResponses(items))
	}
}

func ToResponse(f Feeding) FeedingResponse {
	return FeedingResponse{
		ID:          f.ID,
		CatID:       f.CatID,
		Date:        f.Date.Format("2006-01-02"),
		Meal:        f.Meal,
		MealDisplay: f.Meal.Display(),
		CreatedAt:   f.CreatedAt,
	}
}

func ToResponses(items []Feeding) []FeedingResponse {
	out := make([]FeedingResponse, 0, len(items))
	for _, f := range items {
		out = append(out, ToResponse(f))
	}
	return out
}

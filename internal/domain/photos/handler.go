package photos

import (
	"errors"
	"net/http"
	"time"

	"cat-collector/internal/domain/access"
	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/logger"
	"cat-collector/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

const (
	// FormField es el nombre del input file del formulario.
	FormField = "photo-file"

	StatusHeader  = "X-Photo-Status"
	StatusStored  = "stored"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

func RegisterRoutes(r chi.Router, svc *Service, guard *access.Guard) {
	r.Route("/cats/{catID}/photos", func(pr chi.Router) {
		pr.Post("/", addPhotoHandler(svc, guard))
		pr.Get("/", listPhotosHandler(svc, guard))
	})
}

// PhotoResponse también lo usa el detalle del gato.
type PhotoResponse struct {
	ID        string    `json:"id"`
	CatID     string    `json:"cat_id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// addPhotoHandler godoc
// @Summary Subir foto del gato
// @Description Sube el archivo al bucket y guarda la URL. Siempre redirige (303) al detalle del gato; el resultado va en el header X-Photo-Status (stored, skipped, failed).
// @Tags photos
// @Accept multipart/form-data
// @Param catID path string true "ID del gato"
// @Param photo-file formData file false "Imagen"
// @Success 303 {string} string "redirect a /cats/{catID}"
// @Failure 400 {string} string "invalid multipart form"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "cat not found"
// @Router /cats/{catID}/photos [post]
func addPhotoHandler(svc *Service, guard *access.Guard) http.HandlerFunc {
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

		redirect := func(status string) {
			w.Header().Set(StatusHeader, status)
			http.Redirect(w, r, "/cats/"+catID, http.StatusSeeOther)
		}

		r.Body = http.MaxBytesReader(w, r.Body, svc.MaxUploadBytes())
		if err := r.ParseMultipartForm(svc.MaxUploadBytes()); err != nil {
			if errors.Is(err, http.ErrNotMultipart) {
				redirect(StatusSkipped)
				return
			}
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}
		defer func() { _ = r.MultipartForm.RemoveAll() }()

		file, header, err := r.FormFile(FormField)
		if err != nil {
			// sin archivo: no-op
			redirect(StatusSkipped)
			return
		}
		defer file.Close()

		_, err = svc.Add(r.Context(), catID, &File{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		})
		switch {
		case err == nil:
			redirect(StatusStored)
		case errors.Is(err, ErrNoFile):
			redirect(StatusSkipped)
		default:
			// El usuario no ve el error; el fallo del bucket ya quedó logueado en el service.
			if !errors.Is(err, ErrUploadFailed) {
				logger.FromContext(r.Context()).Error("add photo failed", map[string]any{"cat_id": catID, "error": err})
			}
			redirect(StatusFailed)
		}
	}
}

// listPhotosHandler godoc
// @Summary Listar fotos del gato
// @Tags photos
// @Produce json
// @Param catID path string true "ID del gato"
// @Success 200 {array} PhotoResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "cat not found"
// @Router /cats/{catID}/photos [get]
func listPhotosHandler(svc *Service, guard *access.Guard) http.HandlerFunc {
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

func ToResponse(p Photo) PhotoResponse {
	return PhotoResponse{
		ID:        p.ID,
		CatID:     p.CatID,
		URL:       p.URL,
		CreatedAt: p.CreatedAt,
	}
}

func ToResponses(items []Photo) []PhotoResponse {
	out := make([]PhotoResponse, 0, len(items))
	for _, p := range items {
		out = append(out, ToResponse(p))
	}
	return out
}

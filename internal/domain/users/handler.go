package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cat-collector/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/signup", signupHandler(svc))
	r.Post("/login", loginHandler(svc))
}

type signupRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	UserID    string     `json:"user_id"`
	Username  string     `json:"username"`
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// signupHandler godoc
// @Summary Registrarse
// @Description Crea el usuario y devuelve un token de sesión (Bearer).
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body signupRequest true "username, password y confirmación"
// @Success 201 {object} sessionResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 409 {string} string "username already taken"
// @Router /signup [post]
func signupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sess, err := svc.Signup(r.Context(), SignupInput{
			Username:        req.Username,
			Password:        req.Password,
			PasswordConfirm: req.PasswordConfirm,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrUsernameTaken):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				respond.InternalError(w, r, err)
			}
			return
		}

		respond.JSON(w, http.StatusCreated, toSessionResponse(sess))
	}
}

// loginHandler godoc
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "credenciales"
// @Success 200 {object} sessionResponse
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "invalid credentials"
// @Router /login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sess, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}
			respond.InternalError(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, toSessionResponse(sess))
	}
}

func toSessionResponse(s Session) sessionResponse {
	out := sessionResponse{
		UserID:   s.User.ID,
		Username: s.User.Username,
		Token:    s.Token,
	}
	if !s.ExpiresAt.IsZero() {
		exp := s.ExpiresAt
		out.ExpiresAt = &exp
	}
	return out
}

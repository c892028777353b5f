package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"cat-collector/internal/ports/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	UsernameMaxLen    = 150
	PasswordMinLen    = 8
	passwordMaxBcrypt = 72
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	repo   Repository
	issuer auth.TokenIssuer // puede ser nil (modo dev: no se emiten tokens)
	now    func() time.Time
	cost   int
}

func NewService(repo Repository, issuer auth.TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		issuer: issuer,
		now:    time.Now,
		cost:   bcrypt.DefaultCost,
	}
}

type SignupInput struct {
	Username        string
	Password        string
	PasswordConfirm string
}

// Session es lo que se devuelve tras signup/login.
type Session struct {
	User      User
	Token     string
	ExpiresAt time.Time
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (Session, error) {
	username := strings.TrimSpace(in.Username)
	if err := validateUsername(username); err != nil {
		return Session{}, err
	}
	if err := validatePassword(in.Password); err != nil {
		return Session{}, err
	}
	if in.Password != in.PasswordConfirm {
		return Session{}, fmt.Errorf("%w: the two password fields didn't match", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return Session{}, err
	}

	return s.session(u)
}

func (s *Service) Login(ctx context.Context, username, password string) (Session, error) {
	u, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	return s.session(u)
}

func (s *Service) session(u User) (Session, error) {
	if s.issuer == nil {
		return Session{User: u}, nil
	}
	token, exp, err := s.issuer.Issue(auth.Claims{UserID: u.ID, Username: u.Username})
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}
	return Session{User: u, Token: token, ExpiresAt: exp}, nil
}

// validateUsername: letras, dígitos y @ . + - _.
func validateUsername(u string) error {
	if u == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(u) > UsernameMaxLen {
		return fmt.Errorf("%w: username must be at most %d characters", ErrInvalidInput, UsernameMaxLen)
	}
	for _, r := range u {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune("@.+-_", r) {
			continue
		}
		return fmt.Errorf("%w: username may contain only letters, numbers, and @/./+/-/_", ErrInvalidInput)
	}
	return nil
}

func validatePassword(p string) error {
	if utf8.RuneCountInString(p) < PasswordMinLen {
		return fmt.Errorf("%w: password must contain at least %d characters", ErrInvalidInput, PasswordMinLen)
	}
	if len(p) > passwordMaxBcrypt {
		return fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, passwordMaxBcrypt)
	}
	allDigits := true
	for _, r := range p {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return fmt.Errorf("%w: password can't be entirely numeric", ErrInvalidInput)
	}
	return nil
}

package toys

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	NameMaxLen  = 50
	ColorMaxLen = 50
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("toy not found")
	ErrCatNotFound  = errors.New("cat not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type Input struct {
	Name  string
	Color string
}

func (s *Service) Create(ctx context.Context, in Input) (Toy, error) {
	name, color, err := normalize(in)
	if err != nil {
		return Toy{}, err
	}

	now := s.now().UTC()
	t := Toy{
		ID:        uuid.NewString(),
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return Toy{}, err
	}
	return t, nil
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	Name  *string
	Color *string
}

func (s *Service) Update(ctx context.Context, toyID string, in UpdateInput) (Toy, error) {
	t, err := s.GetByID(ctx, toyID)
	if err != nil {
		return Toy{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if err := validateText("name", name, NameMaxLen); err != nil {
			return Toy{}, err
		}
		t.Name = name
	}
	if in.Color != nil {
		color := strings.TrimSpace(*in.Color)
		if err := validateText("color", color, ColorMaxLen); err != nil {
			return Toy{}, err
		}
		t.Color = color
	}
	t.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, t); err != nil {
		return Toy{}, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, toyID string) error {
	toyID = strings.TrimSpace(toyID)
	if toyID == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, toyID)
}

func (s *Service) GetByID(ctx context.Context, toyID string) (Toy, error) {
	toyID = strings.TrimSpace(toyID)
	if toyID == "" {
		return Toy{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, toyID)
}

func (s *Service) List(ctx context.Context) ([]Toy, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByCat(ctx context.Context, catID string) ([]Toy, error) {
	return s.repo.ListByCat(ctx, strings.TrimSpace(catID))
}

// ListNotOnCat devuelve todos los juguetes menos los que ya tiene el gato.
func (s *Service) ListNotOnCat(ctx context.Context, catID string) ([]Toy, error) {
	return s.repo.ListNotOnCat(ctx, strings.TrimSpace(catID))
}

// Associate agrega el juguete al gato. Repetirlo no duplica la asociación.
func (s *Service) Associate(ctx context.Context, catID, toyID string) error {
	catID = strings.TrimSpace(catID)
	toyID = strings.TrimSpace(toyID)
	if catID == "" {
		return ErrCatNotFound
	}
	if toyID == "" {
		return ErrNotFound
	}
	return s.repo.Associate(ctx, catID, toyID)
}

func normalize(in Input) (string, string, error) {
	name := strings.TrimSpace(in.Name)
	color := strings.TrimSpace(in.Color)

	if err := validateText("name", name, NameMaxLen); err != nil {
		return "", "", err
	}
	if err := validateText("color", color, ColorMaxLen); err != nil {
		return "", "", err
	}
	return name, color, nil
}

func validateText(field, v string, max int) error {
	if v == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	if utf8.RuneCountInString(v) > max {
		return fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, field, max)
	}
	return nil
}

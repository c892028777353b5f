package feedings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
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

type AddInput struct {
	Date time.Time
	Meal Meal // vacío => DefaultMeal
}

// Add registra una comida. La existencia del gato la valida el caller (access.Guard).
func (s *Service) Add(ctx context.Context, catID string, in AddInput) (Feeding, error) {
	catID = strings.TrimSpace(catID)
	if catID == "" {
		return Feeding{}, fmt.Errorf("%w: cat is required", ErrInvalidInput)
	}
	if in.Date.IsZero() {
		return Feeding{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	meal := in.Meal
	if meal == "" {
		meal = DefaultMeal
	}
	if !meal.Valid() {
		return Feeding{}, fmt.Errorf("%w: meal must be one of B, L, D", ErrInvalidInput)
	}

	f := Feeding{
		ID:        uuid.NewString(),
		CatID:     catID,
		Date:      DateOf(in.Date),
		Meal:      meal,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return Feeding{}, err
	}
	return f, nil
}

func (s *Service) ListByCat(ctx context.Context, catID string) ([]Feeding, error) {
	return s.repo.ListByCat(ctx, strings.TrimSpace(catID))
}

func (s *Service) CountOn(ctx context.Context, catID string, date time.Time) (int, error) {
	return s.repo.CountOn(ctx, strings.TrimSpace(catID), DateOf(date))
}

// FedForToday es true si hay al menos len(Meals) feedings con la fecha de hoy.
// Cuenta filas, no comidas distintas: tres desayunos también cuentan.
func (s *Service) FedForToday(ctx context.Context, catID string) (bool, error) {
	n, err := s.CountOn(ctx, catID, s.now())
	if err != nil {
		return false, err
	}
	return n >= len(Meals), nil
}

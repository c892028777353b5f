package cats

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
	NameMaxLen        = 100
	BreedMaxLen       = 100
	DescriptionMaxLen = 250
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("cat not found")
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

type CreateInput struct {
	Name        string
	Breed       string
	Description string
	Age         int
}

// UpdateInput: nil = no tocar. Nombre y dueño no se pueden cambiar.
type UpdateInput struct {
	Breed       *string
	Description *string
	Age         *int
}

// Create registra un gato. El dueño siempre es ownerUserID (el usuario autenticado).
func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Cat, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Cat{}, fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}

	name := strings.TrimSpace(in.Name)
	breed := strings.TrimSpace(in.Breed)
	desc := strings.TrimSpace(in.Description)

	if err := validateText("name", name, NameMaxLen); err != nil {
		return Cat{}, err
	}
	if err := validateText("breed", breed, BreedMaxLen); err != nil {
		return Cat{}, err
	}
	if err := validateText("description", desc, DescriptionMaxLen); err != nil {
		return Cat{}, err
	}
	if err := validateAge(in.Age); err != nil {
		return Cat{}, err
	}

	now := s.now().UTC()
	c := Cat{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Name:        name,
		Breed:       breed,
		Description: desc,
		Age:         in.Age,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Cat{}, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, catID string, in UpdateInput) (Cat, error) {
	c, err := s.GetByID(ctx, catID)
	if err != nil {
		return Cat{}, err
	}

	if in.Breed != nil {
		breed := strings.TrimSpace(*in.Breed)
		if err := validateText("breed", breed, BreedMaxLen); err != nil {
			return Cat{}, err
		}
		c.Breed = breed
	}
	if in.Description != nil {
		desc := strings.TrimSpace(*in.Description)
		if err := validateText("description", desc, DescriptionMaxLen); err != nil {
			return Cat{}, err
		}
		c.Description = desc
	}
	if in.Age != nil {
		if err := validateAge(*in.Age); err != nil {
			return Cat{}, err
		}
		c.Age = *in.Age
	}

	c.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, c); err != nil {
		return Cat{}, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, catID string) error {
	catID = strings.TrimSpace(catID)
	if catID == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, catID)
}

func (s *Service) GetByID(ctx context.Context, catID string) (Cat, error) {
	catID = strings.TrimSpace(catID)
	if catID == "" {
		return Cat{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, catID)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Cat, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return []Cat{}, nil
	}
	return s.repo.ListByOwner(ctx, ownerUserID)
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

func validateAge(age int) error {
	if age < 0 {
		return fmt.Errorf("%w: age must be zero or positive", ErrInvalidInput)
	}
	return nil
}

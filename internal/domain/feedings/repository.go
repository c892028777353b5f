package feedings

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, f Feeding) error
	// ListByCat ordena por fecha desc (y created_at desc para empates).
	ListByCat(ctx context.Context, catID string) ([]Feeding, error)
	CountOn(ctx context.Context, catID string, date time.Time) (int, error)
}

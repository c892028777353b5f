package cats

import "context"

type Repository interface {
	Create(ctx context.Context, c Cat) error
	Update(ctx context.Context, c Cat) error
	// Delete borra el gato y, en cascada, sus feedings, fotos y asociaciones con juguetes.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Cat, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Cat, error)
}

package toys

import "context"

type Repository interface {
	Create(ctx context.Context, t Toy) error
	Update(ctx context.Context, t Toy) error
	// Delete borra el juguete y sus asociaciones con gatos.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Toy, error)
	List(ctx context.Context) ([]Toy, error)

	ListByCat(ctx context.Context, catID string) ([]Toy, error)
	ListNotOnCat(ctx context.Context, catID string) ([]Toy, error)
	// Associate es idempotente. ErrCatNotFound / ErrNotFound si falta alguno de los dos.
	Associate(ctx context.Context, catID, toyID string) error
}

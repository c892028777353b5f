package cats

import "time"

// Cat es el registro de un gato. Pertenece a un único usuario.
type Cat struct {
	ID          string
	OwnerUserID string

	Name        string
	Breed       string
	Description string
	Age         int

	CreatedAt time.Time
	UpdatedAt time.Time
}

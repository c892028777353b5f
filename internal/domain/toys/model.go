package toys

import "time"

// Toy es global: no tiene dueño y se asocia a cualquier cantidad de gatos.
type Toy struct {
	ID    string
	Name  string
	Color string

	CreatedAt time.Time
	UpdatedAt time.Time
}

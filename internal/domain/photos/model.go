package photos

import "time"

// Photo vincula un gato con una imagen ya subida al bucket.
type Photo struct {
	ID    string
	CatID string
	URL   string

	CreatedAt time.Time
}

package feedings

import "time"

// Feeding registra una comida de un gato en un día. No se edita ni se borra.
type Feeding struct {
	ID    string
	CatID string

	Date time.Time // solo fecha, medianoche UTC
	Meal Meal

	CreatedAt time.Time
}

// DateOf normaliza t a su fecha calendario (medianoche UTC), así se compara por igualdad.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

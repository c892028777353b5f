package memory

import (
	"context"
	"errors"
	"sort"
	"time"

	"cat-collector/internal/domain/feedings"
)

var errCatMissing = errors.New("cat does not exist")

type feedingRepo struct {
	db *DB
}

func NewFeedingRepo(db *DB) feedings.Repository {
	return &feedingRepo{db: db}
}

func (r *feedingRepo) Create(ctx context.Context, f feedings.Feeding) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	// FK: el feeding no puede existir sin su gato
	if _, ok := r.db.cats[f.CatID]; !ok {
		return errCatMissing
	}
	r.db.feedings[f.ID] = f
	r.db.mark(f.ID)
	return nil
}

func (r *feedingRepo) ListByCat(ctx context.Context, catID string) ([]feedings.Feeding, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]feedings.Feeding, 0)
	for _, f := range r.db.feedings {
		if f.CatID == catID {
			out = append(out, f)
		}
	}

	// fecha desc; empates: el más nuevo primero
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return r.db.insertAt[out[i].ID] > r.db.insertAt[out[j].ID]
	})
	return out, nil
}

func (r *feedingRepo) CountOn(ctx context.Context, catID string, date time.Time) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	n := 0
	for _, f := range r.db.feedings {
		if f.CatID == catID && f.Date.Equal(date) {
			n++
		}
	}
	return n, nil
}

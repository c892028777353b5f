package memory

import (
	"context"
	"sort"

	"cat-collector/internal/domain/photos"
)

type photoRepo struct {
	db *DB
}

func NewPhotoRepo(db *DB) photos.Repository {
	return &photoRepo{db: db}
}

func (r *photoRepo) Create(ctx context.Context, p photos.Photo) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.cats[p.CatID]; !ok {
		return errCatMissing
	}
	r.db.photos[p.ID] = p
	r.db.mark(p.ID)
	return nil
}

func (r *photoRepo) ListByCat(ctx context.Context, catID string) ([]photos.Photo, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]photos.Photo, 0)
	for _, p := range r.db.photos {
		if p.CatID == catID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return r.db.insertAt[out[i].ID] < r.db.insertAt[out[j].ID]
	})
	return out, nil
}

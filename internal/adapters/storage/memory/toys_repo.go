package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"cat-collector/internal/domain/toys"
)

type toyRepo struct {
	db *DB
}

func NewToyRepo(db *DB) toys.Repository {
	return &toyRepo{db: db}
}

func (r *toyRepo) Create(ctx context.Context, t toys.Toy) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errors.New("toy id required")
	}
	if _, exists := r.db.toys[t.ID]; exists {
		return errors.New("toy already exists")
	}
	r.db.toys[t.ID] = t
	r.db.mark(t.ID)
	return nil
}

func (r *toyRepo) Update(ctx context.Context, t toys.Toy) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.toys[t.ID]; !exists {
		return toys.ErrNotFound
	}
	r.db.toys[t.ID] = t
	return nil
}

func (r *toyRepo) Delete(ctx context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.toys[id]; !exists {
		return toys.ErrNotFound
	}
	delete(r.db.toys, id)
	delete(r.db.insertAt, id)
	for k := range r.db.catToys {
		if k.toyID == id {
			delete(r.db.catToys, k)
		}
	}
	return nil
}

func (r *toyRepo) GetByID(ctx context.Context, id string) (toys.Toy, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	t, ok := r.db.toys[id]
	if !ok {
		return toys.Toy{}, toys.ErrNotFound
	}
	return t, nil
}

func (r *toyRepo) List(ctx context.Context) ([]toys.Toy, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.filterLocked(func(toys.Toy) bool { return true }), nil
}

func (r *toyRepo) ListByCat(ctx context.Context, catID string) ([]toys.Toy, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.filterLocked(func(t toys.Toy) bool {
		_, ok := r.db.catToys[catToy{catID: catID, toyID: t.ID}]
		return ok
	}), nil
}

func (r *toyRepo) ListNotOnCat(ctx context.Context, catID string) ([]toys.Toy, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.filterLocked(func(t toys.Toy) bool {
		_, ok := r.db.catToys[catToy{catID: catID, toyID: t.ID}]
		return !ok
	}), nil
}

func (r *toyRepo) Associate(ctx context.Context, catID, toyID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.cats[catID]; !ok {
		return toys.ErrCatNotFound
	}
	if _, ok := r.db.toys[toyID]; !ok {
		return toys.ErrNotFound
	}
	r.db.catToys[catToy{catID: catID, toyID: toyID}] = struct{}{}
	return nil
}

// filterLocked devuelve los juguetes que cumplen keep, ordenados por nombre.
func (r *toyRepo) filterLocked(keep func(toys.Toy) bool) []toys.Toy {
	out := make([]toys.Toy, 0)
	for _, t := range r.db.toys {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return r.db.insertAt[out[i].ID] < r.db.insertAt[out[j].ID]
	})
	return out
}

package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"cat-collector/internal/domain/toys"
)

const toyColumns = `t.id, t.name, t.color, t.created_at, t.updated_at`

type ToysRepo struct {
	db *DB
}

func NewToysRepo(db *DB) *ToysRepo {
	return &ToysRepo{db: db}
}

func (r *ToysRepo) Create(ctx context.Context, t toys.Toy) error {
	_, err := r.db.exec(ctx, `
		INSERT INTO toys (id, name, color, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5)
	`, t.ID, t.Name, t.Color, t.CreatedAt, t.UpdatedAt)
	return err
}

func (r *ToysRepo) Update(ctx context.Context, t toys.Toy) error {
	res, err := r.db.exec(ctx, `
		UPDATE toys
		SET name = $2, color = $3, updated_at = $4
		WHERE id = $1
	`, t.ID, t.Name, t.Color, t.UpdatedAt)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return toys.ErrNotFound
	}
	return nil
}

// Delete: las filas de cat_toys caen por ON DELETE CASCADE.
func (r *ToysRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.exec(ctx, `DELETE FROM toys WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return toys.ErrNotFound
	}
	return nil
}

func (r *ToysRepo) GetByID(ctx context.Context, id string) (toys.Toy, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return toys.Toy{}, toys.ErrNotFound
	}

	var t toys.Toy
	err := r.db.queryRow(ctx, `SELECT `+toyColumns+` FROM toys t WHERE t.id = $1`, id).
		Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return toys.Toy{}, toys.ErrNotFound
		}
		return toys.Toy{}, err
	}
	return t, nil
}

func (r *ToysRepo) List(ctx context.Context) ([]toys.Toy, error) {
	return r.list(ctx, `
		SELECT `+toyColumns+`
		FROM toys t
		ORDER BY t.name ASC, t.created_at ASC
	`)
}

func (r *ToysRepo) ListByCat(ctx context.Context, catID string) ([]toys.Toy, error) {
	return r.list(ctx, `
		SELECT `+toyColumns+`
		FROM toys t
		JOIN cat_toys ct ON ct.toy_id = t.id
		WHERE ct.cat_id = $1
		ORDER BY t.name ASC, t.created_at ASC
	`, catID)
}

// ListNotOnCat es el complemento de ListByCat sobre todos los juguetes.
func (r *ToysRepo) ListNotOnCat(ctx context.Context, catID string) ([]toys.Toy, error) {
	return r.list(ctx, `
		SELECT `+toyColumns+`
		FROM toys t
		WHERE NOT EXISTS (
			SELECT 1 FROM cat_toys ct
			WHERE ct.toy_id = t.id AND ct.cat_id = $1
		)
		ORDER BY t.name ASC, t.created_at ASC
	`, catID)
}

func (r *ToysRepo) Associate(ctx context.Context, catID, toyID string) error {
	var n int
	if err := r.db.queryRow(ctx, `SELECT COUNT(*) FROM cats WHERE id = $1`, catID).Scan(&n); err != nil {
		return err
	}
	if n == 0 {
		return toys.ErrCatNotFound
	}
	if err := r.db.queryRow(ctx, `SELECT COUNT(*) FROM toys WHERE id = $1`, toyID).Scan(&n); err != nil {
		return err
	}
	if n == 0 {
		return toys.ErrNotFound
	}

	_, err := r.db.exec(ctx, `
		INSERT INTO cat_toys (cat_id, toy_id)
		VALUES ($1,$2)
		ON CONFLICT (cat_id, toy_id) DO NOTHING
	`, catID, toyID)
	return err
}

func (r *ToysRepo) list(ctx context.Context, query string, args ...any) ([]toys.Toy, error) {
	rows, err := r.db.query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]toys.Toy, 0)
	for rows.Next() {
		var t toys.Toy
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

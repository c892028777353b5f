package sqldb

import (
	"context"

	"cat-collector/internal/domain/photos"
)

type PhotosRepo struct {
	db *DB
}

func NewPhotosRepo(db *DB) *PhotosRepo {
	return &PhotosRepo{db: db}
}

func (r *PhotosRepo) Create(ctx context.Context, p photos.Photo) error {
	_, err := r.db.exec(ctx, `
		INSERT INTO photos (id, cat_id, url, created_at)
		VALUES ($1,$2,$3,$4)
	`, p.ID, p.CatID, p.URL, p.CreatedAt)
	return err
}

func (r *PhotosRepo) ListByCat(ctx context.Context, catID string) ([]photos.Photo, error) {
	rows, err := r.db.query(ctx, `
		SELECT id, cat_id, url, created_at
		FROM photos
		WHERE cat_id = $1
		ORDER BY created_at ASC, id ASC
	`, catID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]photos.Photo, 0)
	for rows.Next() {
		var p photos.Photo
		if err := rows.Scan(&p.ID, &p.CatID, &p.URL, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

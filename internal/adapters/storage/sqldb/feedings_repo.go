package sqldb

import (
	"context"
	"time"

	"cat-collector/internal/domain/feedings"
)

type FeedingsRepo struct {
	db *DB
}

func NewFeedingsRepo(db *DB) *FeedingsRepo {
	return &FeedingsRepo{db: db}
}

func (r *FeedingsRepo) Create(ctx context.Context, f feedings.Feeding) error {
	_, err := r.db.exec(ctx, `
		INSERT INTO feedings (id, cat_id, feeding_date, meal, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`,
		f.ID,
		f.CatID,
		feedings.DateOf(f.Date),
		string(f.Meal),
		f.CreatedAt,
	)
	return err
}

func (r *FeedingsRepo) ListByCat(ctx context.Context, catID string) ([]feedings.Feeding, error) {
	rows, err := r.db.query(ctx, `
		SELECT id, cat_id, feeding_date, meal, created_at
		FROM feedings
		WHERE cat_id = $1
		ORDER BY feeding_date DESC, created_at DESC, id DESC
	`, catID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]feedings.Feeding, 0)
	for rows.Next() {
		var (
			f    feedings.Feeding
			meal string
		)
		if err := rows.Scan(&f.ID, &f.CatID, &f.Date, &meal, &f.CreatedAt); err != nil {
			return nil, err
		}
		f.Date = feedings.DateOf(f.Date)
		f.Meal = feedings.Meal(meal)
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *FeedingsRepo) CountOn(ctx context.Context, catID string, date time.Time) (int, error) {
	var n int
	err := r.db.queryRow(ctx, `
		SELECT COUNT(*)
		FROM feedings
		WHERE cat_id = $1 AND feeding_date = $2
	`, catID, feedings.DateOf(date)).Scan(&n)
	return n, err
}

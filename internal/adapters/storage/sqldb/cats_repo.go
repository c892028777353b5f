package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"cat-collector/internal/domain/cats"
)

type CatsRepo struct {
	db *DB
}

func NewCatsRepo(db *DB) *CatsRepo {
	return &CatsRepo{db: db}
}

func (r *CatsRepo) Create(ctx context.Context, c cats.Cat) error {
	_, err := r.db.exec(ctx, `
		INSERT INTO cats (
			id, owner_user_id,
			name, breed, description, age,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		c.ID,
		c.OwnerUserID,
		c.Name,
		c.Breed,
		c.Description,
		c.Age,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}

// Update no toca name ni owner_user_id.
func (r *CatsRepo) Update(ctx context.Context, c cats.Cat) error {
	res, err := r.db.exec(ctx, `
		UPDATE cats
		SET
			breed = $2,
			description = $3,
			age = $4,
			updated_at = $5
		WHERE id = $1
	`,
		c.ID,
		c.Breed,
		c.Description,
		c.Age,
		c.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return cats.ErrNotFound
	}
	return nil
}

// Delete: feedings, photos y cat_toys caen por ON DELETE CASCADE.
func (r *CatsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.exec(ctx, `DELETE FROM cats WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return cats.ErrNotFound
	}
	return nil
}

func (r *CatsRepo) GetByID(ctx context.Context, id string) (cats.Cat, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return cats.Cat{}, cats.ErrNotFound
	}

	row := r.db.queryRow(ctx, `
		SELECT
			id, owner_user_id,
			name, breed, description, age,
			created_at, updated_at
		FROM cats
		WHERE id = $1
	`, id)

	c, err := scanCat(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cats.Cat{}, cats.ErrNotFound
		}
		return cats.Cat{}, err
	}
	return c, nil
}

func (r *CatsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]cats.Cat, error) {
	rows, err := r.db.query(ctx, `
		SELECT
			id, owner_user_id,
			name, breed, description, age,
			created_at, updated_at
		FROM cats
		WHERE owner_user_id = $1
		ORDER BY created_at ASC, id ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]cats.Cat, 0)
	for rows.Next() {
		c, err := scanCat(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCat(s scanner) (cats.Cat, error) {
	var c cats.Cat
	err := s.Scan(
		&c.ID,
		&c.OwnerUserID,
		&c.Name,
		&c.Breed,
		&c.Description,
		&c.Age,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

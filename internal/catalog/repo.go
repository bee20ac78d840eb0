package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

// List returns the whole catalog in creation order.
func (r *Repo) List(ctx context.Context) ([]Product, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, category, description, box_type, unit_type, st_bun, price::float8, created_at, updated_at
		FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Category, &p.Description, &p.BoxType, &p.UnitType, &p.StBun, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) Create(ctx context.Context, in ProductInput) (Product, error) {
	if err := in.Validate(); err != nil {
		return Product{}, err
	}
	var p Product
	err := r.DB.QueryRow(ctx, `
		INSERT INTO products(category, description, box_type, unit_type, st_bun, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, category, description, box_type, unit_type, st_bun, price::float8, created_at, updated_at`,
		in.Category, in.Description, in.BoxType, in.UnitType, in.StBun, in.Price,
	).Scan(&p.ID, &p.Category, &p.Description, &p.BoxType, &p.UnitType, &p.StBun, &p.Price, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *Repo) Update(ctx context.Context, id int64, in ProductInput) (Product, error) {
	if err := in.Validate(); err != nil {
		return Product{}, err
	}
	var p Product
	err := r.DB.QueryRow(ctx, `
		UPDATE products
		SET category=$2, description=$3, box_type=$4, unit_type=$5, st_bun=$6, price=$7, updated_at=now()
		WHERE id=$1
		RETURNING id, category, description, box_type, unit_type, st_bun, price::float8, created_at, updated_at`,
		id, in.Category, in.Description, in.BoxType, in.UnitType, in.StBun, in.Price,
	).Scan(&p.ID, &p.Category, &p.Description, &p.BoxType, &p.UnitType, &p.StBun, &p.Price, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	ct, err := r.DB.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
)

type productsRepo struct {
	q   querier
	now func() time.Time
}

const productColumns = `id, name, description, price_cents, category, image, stock, created_at, updated_at`

func (r *productsRepo) Get(ctx context.Context, id int64) (domain.Product, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	p, err := scanProduct(row)
	if err != nil {
		return domain.Product{}, mapNotFound(err)
	}
	return p, nil
}

func (r *productsRepo) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int, error) {
	where, args := "", []any{}
	if f.Category != "" {
		where = ` WHERE category = ?`
		args = append(args, string(f.Category))
	}

	var total int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.q.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products`+where+
			` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		append(args, f.Limit, f.Offset)...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := make([]domain.Product, 0, f.Limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

func (r *productsRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	now := r.now()
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO products (name, description, price_cents, category, image, stock, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Description, int64(p.Price), string(p.Category), mapStringNull(p.Image), p.Stock, now, now,
	)
	if err != nil {
		return domain.Product{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Product{}, err
	}
	p.ID, p.CreatedAt, p.UpdatedAt = id, now, now
	return p, nil
}

func (r *productsRepo) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	p.UpdatedAt = r.now()
	err := requireAffected(r.q.ExecContext(ctx, `
		UPDATE products SET name = ?, description = ?, price_cents = ?, category = ?,
			image = ?, stock = ?, updated_at = ?
		WHERE id = ?`,
		p.Name, p.Description, int64(p.Price), string(p.Category), mapStringNull(p.Image), p.Stock,
		p.UpdatedAt, p.ID,
	))
	if err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (r *productsRepo) Delete(ctx context.Context, id int64) error {
	return requireAffected(r.q.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id))
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var (
		p        domain.Product
		price    int64
		category string
		image    sql.NullString
	)
	err := row.Scan(&p.ID, &p.Name, &p.Description, &price, &category, &image, &p.Stock,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Product{}, err
	}
	p.Price = domain.Cents(price)
	p.Category = domain.Category(category)
	p.Image = mapNullString(image)
	return p, nil
}

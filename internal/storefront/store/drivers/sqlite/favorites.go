package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
)

type favoritesRepo struct {
	q   querier
	now func() time.Time
}

func (r *favoritesRepo) List(ctx context.Context, identityID int64) ([]domain.Favorite, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT f.id, f.identity_id, f.product_id, f.created_at,
			p.id, p.name, p.description, p.price_cents, p.category, p.image, p.stock, p.created_at, p.updated_at
		FROM favorites f
		JOIN products p ON p.id = f.product_id
		WHERE f.identity_id = ?
		ORDER BY f.created_at, f.id`, identityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favs := []domain.Favorite{}
	for rows.Next() {
		var f domain.Favorite
		var p domain.Product
		var price int64
		var category string
		var image sql.NullString
		if err := rows.Scan(&f.ID, &f.IdentityID, &f.ProductID, &f.CreatedAt,
			&p.ID, &p.Name, &p.Description, &price, &category, &image, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		p.Price, p.Category, p.Image = domain.Cents(price), domain.Category(category), mapNullString(image)
		f.Product = &p
		favs = append(favs, f)
	}
	return favs, rows.Err()
}

func (r *favoritesRepo) Add(ctx context.Context, identityID, productID int64) (domain.Favorite, error) {
	now := r.now()
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO favorites (identity_id, product_id, created_at) VALUES (?, ?, ?)`,
		identityID, productID, now)
	if err != nil {
		return domain.Favorite{}, mapConstraint(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Favorite{}, err
	}
	return domain.Favorite{ID: id, IdentityID: identityID, ProductID: productID, CreatedAt: now}, nil
}

func (r *favoritesRepo) Remove(ctx context.Context, identityID, productID int64) error {
	return requireAffected(r.q.ExecContext(ctx,
		`DELETE FROM favorites WHERE identity_id = ? AND product_id = ?`, identityID, productID))
}

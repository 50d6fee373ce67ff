package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
)

type cartRepo struct {
	q   querier
	now func() time.Time
}

const cartColumns = `c.id, c.identity_id, c.product_id, c.quantity, c.created_at, c.updated_at`

func (r *cartRepo) List(ctx context.Context, identityID int64) ([]domain.CartItem, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+cartColumns+`,
			p.id, p.name, p.description, p.price_cents, p.category, p.image, p.stock, p.created_at, p.updated_at
		FROM cart_items c
		JOIN products p ON p.id = c.product_id
		WHERE c.identity_id = ?
		ORDER BY c.created_at, c.id`, identityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.CartItem{}
	for rows.Next() {
		var c domain.CartItem
		var p domain.Product
		var price int64
		var category string
		var image sql.NullString
		if err := rows.Scan(&c.ID, &c.IdentityID, &c.ProductID, &c.Quantity, &c.CreatedAt, &c.UpdatedAt,
			&p.ID, &p.Name, &p.Description, &price, &category, &image, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		p.Price, p.Category, p.Image = domain.Cents(price), domain.Category(category), mapNullString(image)
		c.Product = &p
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *cartRepo) Get(ctx context.Context, identityID, productID int64) (domain.CartItem, error) {
	var c domain.CartItem
	err := r.q.QueryRowContext(ctx, `
		SELECT `+cartColumns+` FROM cart_items c
		WHERE c.identity_id = ? AND c.product_id = ?`, identityID, productID,
	).Scan(&c.ID, &c.IdentityID, &c.ProductID, &c.Quantity, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.CartItem{}, mapNotFound(err)
	}
	return c, nil
}

func (r *cartRepo) Add(ctx context.Context, identityID, productID int64, quantity int) (domain.CartItem, error) {
	now := r.now()
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO cart_items (identity_id, product_id, quantity, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`, identityID, productID, quantity, now, now)
	if err != nil {
		return domain.CartItem{}, mapConstraint(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.CartItem{}, err
	}
	return domain.CartItem{
		ID:         id,
		IdentityID: identityID,
		ProductID:  productID,
		Quantity:   quantity,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

func (r *cartRepo) SetQuantity(ctx context.Context, identityID, productID int64, quantity int) (domain.CartItem, error) {
	err := requireAffected(r.q.ExecContext(ctx, `
		UPDATE cart_items SET quantity = ?, updated_at = ?
		WHERE identity_id = ? AND product_id = ?`, quantity, r.now(), identityID, productID))
	if err != nil {
		return domain.CartItem{}, err
	}
	return r.Get(ctx, identityID, productID)
}

func (r *cartRepo) Remove(ctx context.Context, identityID, productID int64) error {
	return requireAffected(r.q.ExecContext(ctx,
		`DELETE FROM cart_items WHERE identity_id = ? AND product_id = ?`, identityID, productID))
}

func (r *cartRepo) Clear(ctx context.Context, identityID int64) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM cart_items WHERE identity_id = ?`, identityID)
	return err
}

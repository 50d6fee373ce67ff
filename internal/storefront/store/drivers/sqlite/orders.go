package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
)

type ordersRepo struct {
	q   querier
	now func() time.Time
}

func (r *ordersRepo) Create(ctx context.Context, o domain.Order) (domain.Order, error) {
	now := r.now()
	if o.Status == "" {
		o.Status = domain.OrderPending
	}

	res, err := r.q.ExecContext(ctx, `
		INSERT INTO orders (identity_id, total_cents, status, customer_info, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		o.IdentityID, int64(o.Total), string(o.Status), mapStringNull(o.CustomerInfo), now, now)
	if err != nil {
		return domain.Order{}, err
	}
	o.ID, err = res.LastInsertId()
	if err != nil {
		return domain.Order{}, err
	}
	o.CreatedAt, o.UpdatedAt = now, now

	for i := range o.Items {
		it := &o.Items[i]
		it.OrderID = o.ID
		res, err := r.q.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price_cents)
			VALUES (?, ?, ?, ?)`, o.ID, it.ProductID, it.Quantity, int64(it.Price))
		if err != nil {
			return domain.Order{}, err
		}
		if it.ID, err = res.LastInsertId(); err != nil {
			return domain.Order{}, err
		}
	}
	return o, nil
}

func (r *ordersRepo) ListByIdentity(ctx context.Context, identityID int64) ([]domain.Order, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, identity_id, total_cents, status, customer_info, created_at, updated_at
		FROM orders WHERE identity_id = ?
		ORDER BY created_at DESC, id DESC`, identityID)
	if err != nil {
		return nil, err
	}
	orders, err := collectOrders(rows, false)
	if err != nil {
		return nil, err
	}
	return orders, r.attachItems(ctx, orders)
}

func (r *ordersRepo) List(ctx context.Context, limit, offset int) ([]domain.Order, int, error) {
	var total int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.q.QueryContext(ctx, `
		SELECT o.id, o.identity_id, o.total_cents, o.status, o.customer_info, o.created_at, o.updated_at,
			i.id, i.first_name, i.last_name, i.email
		FROM orders o
		JOIN identities i ON i.id = o.identity_id
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	orders, err := collectOrders(rows, true)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, r.attachItems(ctx, orders)
}

// collectOrders drains and closes rows before any follow-up query, which a
// single-connection pool requires.
func collectOrders(rows *sql.Rows, withCustomer bool) ([]domain.Order, error) {
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var (
			o      domain.Order
			total  int64
			status string
			info   sql.NullString
		)
		dest := []any{&o.ID, &o.IdentityID, &total, &status, &info, &o.CreatedAt, &o.UpdatedAt}
		var c domain.Identity
		if withCustomer {
			dest = append(dest, &c.ID, &c.FirstName, &c.LastName, &c.Email)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		o.Total = domain.Cents(total)
		o.Status = domain.OrderStatus(status)
		o.CustomerInfo = mapNullString(info)
		o.Items = []domain.OrderItem{}
		if withCustomer {
			o.Customer = &c
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// attachItems loads the items (and, when still present, their products) for
// orders in one query.
func (r *ordersRepo) attachItems(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.Order, len(orders))
	args := make([]any, 0, len(orders))
	for i := range orders {
		byID[orders[i].ID] = &orders[i]
		args = append(args, orders[i].ID)
	}

	rows, err := r.q.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price_cents,
			p.id, p.name, p.price_cents, p.image
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id IN (`+placeholders(len(args))+`)
		ORDER BY oi.id`, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			it     domain.OrderItem
			price  int64
			pID    sql.NullInt64
			pName  sql.NullString
			pPrice sql.NullInt64
			pImage sql.NullString
		)
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &price,
			&pID, &pName, &pPrice, &pImage); err != nil {
			return err
		}
		it.Price = domain.Cents(price)
		if pID.Valid {
			it.Product = &domain.Product{
				ID:    pID.Int64,
				Name:  pName.String,
				Price: domain.Cents(pPrice.Int64),
				Image: mapNullString(pImage),
			}
		}
		if o := byID[it.OrderID]; o != nil {
			o.Items = append(o.Items, it)
		}
	}
	return rows.Err()
}

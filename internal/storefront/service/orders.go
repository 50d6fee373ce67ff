package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

const DefaultOrderPageSize = 10

type OrderService struct {
	Store store.Store
}

// Create places an order for identityID. Prices come from the catalog at the
// time of the order, never from the client; the total and all items are
// written in one transaction.
func (s *OrderService) Create(ctx context.Context, identityID int64, lines []domain.OrderLine, customerInfo string) (domain.Order, error) {
	if len(lines) == 0 {
		return domain.Order{}, ErrNoOrderItems
	}
	for _, l := range lines {
		if !validQuantity(l.Quantity) {
			return domain.Order{}, ErrInvalidQuantity
		}
	}

	var order domain.Order
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		o := domain.Order{
			IdentityID:   identityID,
			Status:       domain.OrderPending,
			CustomerInfo: customerInfo,
			Items:        make([]domain.OrderItem, 0, len(lines)),
		}

		for _, l := range lines {
			p, err := tx.Products().Get(ctx, l.ProductID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return &ProductMissingError{ProductID: l.ProductID}
				}
				return err
			}
			line, ok := lineTotal(p.Price, l.Quantity)
			if !ok || line > math.MaxInt64-o.Total {
				return ErrInvalidQuantity
			}
			o.Total += line
			o.Items = append(o.Items, domain.OrderItem{
				ProductID: p.ID,
				Quantity:  l.Quantity,
				Price:     p.Price,
				Product:   &p,
			})
		}

		var err error
		order, err = tx.Orders().Create(ctx, o)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrProductNotFound) || errors.Is(err, ErrInvalidQuantity) {
			return domain.Order{}, err
		}
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}

	slogx.FromContext(ctx).Info("order placed",
		"order_id", order.ID,
		"items", len(order.Items),
		"total_cents", int64(order.Total),
	)
	return order, nil
}

// lineTotal multiplies price by quantity, reporting false on overflow or a
// negative price.
func lineTotal(price domain.Cents, quantity int) (domain.Cents, bool) {
	if price < 0 {
		return 0, false
	}
	if price != 0 && domain.Cents(quantity) > math.MaxInt64/price {
		return 0, false
	}
	return price * domain.Cents(quantity), true
}

// ListMine returns the caller's orders, newest first.
func (s *OrderService) ListMine(ctx context.Context, identityID int64) ([]domain.Order, error) {
	orders, err := s.Store.Orders().ListByIdentity(ctx, identityID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// List returns one page of every order, for administrators.
func (s *OrderService) List(ctx context.Context, page, limit int) ([]domain.Order, domain.Page, error) {
	page, limit = normalizePage(page, limit, DefaultOrderPageSize)

	orders, total, err := s.Store.Orders().List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, domain.Page{}, fmt.Errorf("list orders: %w", err)
	}
	return orders, domain.NewPage(total, page, limit), nil
}

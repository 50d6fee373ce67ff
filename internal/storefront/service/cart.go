package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
)

// MaxLineQuantity caps the quantity of a single cart line or order line.
const MaxLineQuantity = 1000

func validQuantity(q int) bool { return q > 0 && q <= MaxLineQuantity }

type CartService struct {
	Store store.Store
}

func (s *CartService) List(ctx context.Context, identityID int64) ([]domain.CartItem, error) {
	items, err := s.Store.Cart().List(ctx, identityID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	return items, nil
}

// Add puts quantity of a product in the cart. Adding a product that is
// already there increases its quantity; created reports a new line.
func (s *CartService) Add(ctx context.Context, identityID, productID int64, quantity int) (item domain.CartItem, created bool, err error) {
	if !validQuantity(quantity) {
		return domain.CartItem{}, false, ErrInvalidQuantity
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Products().Get(ctx, productID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		existing, err := tx.Cart().Get(ctx, identityID, productID)
		switch {
		case err == nil:
			total := existing.Quantity + quantity
			if !validQuantity(total) {
				return ErrInvalidQuantity
			}
			item, err = tx.Cart().SetQuantity(ctx, identityID, productID, total)
			return err
		case errors.Is(err, store.ErrNotFound):
			item, err = tx.Cart().Add(ctx, identityID, productID, quantity)
			created = err == nil
			return err
		default:
			return err
		}
	})
	if err != nil {
		if errors.Is(err, ErrProductNotFound) || errors.Is(err, ErrInvalidQuantity) {
			return domain.CartItem{}, false, err
		}
		return domain.CartItem{}, false, fmt.Errorf("add to cart: %w", err)
	}
	return item, created, nil
}

// Update sets the quantity of a product already in the cart.
func (s *CartService) Update(ctx context.Context, identityID, productID int64, quantity int) (domain.CartItem, error) {
	if !validQuantity(quantity) {
		return domain.CartItem{}, ErrInvalidQuantity
	}
	item, err := s.Store.Cart().SetQuantity(ctx, identityID, productID, quantity)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.CartItem{}, ErrCartItemNotFound
		}
		return domain.CartItem{}, fmt.Errorf("update cart: %w", err)
	}
	return item, nil
}

func (s *CartService) Remove(ctx context.Context, identityID, productID int64) error {
	if err := s.Store.Cart().Remove(ctx, identityID, productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCartItemNotFound
		}
		return fmt.Errorf("remove from cart: %w", err)
	}
	return nil
}

func (s *CartService) Clear(ctx context.Context, identityID int64) error {
	if err := s.Store.Cart().Clear(ctx, identityID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

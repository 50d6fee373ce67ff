package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
)

type FavoriteService struct {
	Store store.Store
}

func (s *FavoriteService) List(ctx context.Context, identityID int64) ([]domain.Favorite, error) {
	favs, err := s.Store.Favorites().List(ctx, identityID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favs, nil
}

func (s *FavoriteService) Add(ctx context.Context, identityID, productID int64) (domain.Favorite, error) {
	if _, err := s.Store.Products().Get(ctx, productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Favorite{}, ErrProductNotFound
		}
		return domain.Favorite{}, fmt.Errorf("get product: %w", err)
	}

	fav, err := s.Store.Favorites().Add(ctx, identityID, productID)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Favorite{}, ErrFavoriteExists
		}
		return domain.Favorite{}, fmt.Errorf("add favorite: %w", err)
	}
	return fav, nil
}

func (s *FavoriteService) Remove(ctx context.Context, identityID, productID int64) error {
	if err := s.Store.Favorites().Remove(ctx, identityID, productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrFavoriteNotFound
		}
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

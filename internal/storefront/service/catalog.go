package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

const (
	DefaultProductPageSize = 4
	MaxPageSize            = 100
)

// ProductInput carries the writable product fields. Nil fields are left
// unchanged on update.
type ProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Stock       *int

	// Image is the stored file name of a new upload; empty keeps the
	// current image.
	Image string
}

type CatalogService struct {
	Store store.Store
}

// List returns one page of products, newest first. page starts at 1.
func (s *CatalogService) List(ctx context.Context, category string, page, limit int) ([]domain.Product, domain.Page, error) {
	page, limit = normalizePage(page, limit, DefaultProductPageSize)

	products, total, err := s.Store.Products().List(ctx, domain.ProductFilter{
		Category: domain.Category(strings.TrimSpace(category)),
		Limit:    limit,
		Offset:   (page - 1) * limit,
	})
	if err != nil {
		return nil, domain.Page{}, fmt.Errorf("list products: %w", err)
	}
	return products, domain.NewPage(total, page, limit), nil
}

func (s *CatalogService) Get(ctx context.Context, id int64) (domain.Product, error) {
	p, err := s.Store.Products().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Product{}, ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Create adds a product. Name, description, price and category are required.
func (s *CatalogService) Create(ctx context.Context, in ProductInput) (domain.Product, error) {
	err := checkFields(validation.Errors{
		"name":        validation.Validate(in.Name, validation.NotNil.Error("Product name is required")),
		"description": validation.Validate(in.Description, validation.NotNil.Error("Product description is required")),
		"price":       validation.Validate(in.Price, validation.NotNil.Error("Product price is required")),
		"category":    validation.Validate(in.Category, validation.NotNil.Error("Product category is required")),
	})
	if err != nil {
		return domain.Product{}, err
	}

	var p domain.Product
	applyProductInput(&p, in)
	if err := validateProduct(p); err != nil {
		return domain.Product{}, err
	}

	p, err = s.Store.Products().Create(ctx, p)
	if err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}
	slogx.FromContext(ctx).Info("product created", "product_id", p.ID)
	return p, nil
}

// Update applies the non-nil fields of in to product id.
func (s *CatalogService) Update(ctx context.Context, id int64, in ProductInput) (domain.Product, error) {
	var updated domain.Product
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		p, err := tx.Products().Get(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		applyProductInput(&p, in)
		if err := validateProduct(p); err != nil {
			return err
		}

		updated, err = tx.Products().Update(ctx, p)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrProductNotFound) || errors.Is(err, ErrValidation) {
			return domain.Product{}, err
		}
		return domain.Product{}, fmt.Errorf("update product: %w", err)
	}

	slogx.FromContext(ctx).Info("product updated", "product_id", id)
	return updated, nil
}

func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	if err := s.Store.Products().Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("delete product: %w", err)
	}
	slogx.FromContext(ctx).Info("product deleted", "product_id", id)
	return nil
}

func applyProductInput(p *domain.Product, in ProductInput) {
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		p.Price = domain.CentsFromFloat(*in.Price)
	}
	if in.Category != nil {
		p.Category = domain.Category(strings.TrimSpace(*in.Category))
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.Image != "" {
		p.Image = in.Image
	}
}

func validateProduct(p domain.Product) error {
	return checkFields(validation.Errors{
		"name":        validation.Validate(p.Name, validation.Required.Error("Product name is required")),
		"description": validation.Validate(p.Description, validation.Required.Error("Product description is required")),
		"price":       validation.Validate(int64(p.Price), validation.Min(int64(0)).Error("Price must be a positive number")),
		"category": validation.Validate(p.Category,
			validation.Required.Error("Product category is required"),
			validation.In(domain.CategoryAirConditioning, domain.CategoryPlumbing, domain.CategoryFireFighting).
				Error("Category must be one of Air Conditioning, Plumbing, Fire Fighting"),
		),
		"stock": validation.Validate(p.Stock, validation.Min(0).Error("Stock must not be negative")),
	})
}

// normalizePage clamps page to >= 1 and limit to [1, MaxPageSize].
func normalizePage(page, limit, def int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = def
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

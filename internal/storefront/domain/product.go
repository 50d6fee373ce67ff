package domain

import (
	"math"
	"time"
)

// Category groups products in the catalog.
type Category string

const (
	CategoryAirConditioning Category = "Air Conditioning"
	CategoryPlumbing        Category = "Plumbing"
	CategoryFireFighting    Category = "Fire Fighting"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryAirConditioning, CategoryPlumbing, CategoryFireFighting:
		return true
	}
	return false
}

// Cents is an amount of money in hundredths of the currency unit.
type Cents int64

// CentsFromFloat rounds a decimal amount to the nearest cent.
func CentsFromFloat(f float64) Cents { return Cents(math.Round(f * 100)) }

func (c Cents) Float() float64 { return float64(c) / 100 }

type Product struct {
	ID          int64
	Name        string
	Description string
	Price       Cents
	Category    Category
	Image       string // file name under the uploads dir; empty when none
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductFilter selects a page of products.
type ProductFilter struct {
	Category Category // empty for all
	Limit    int
	Offset   int
}

// Page describes a paginated result.
type Page struct {
	Total       int
	TotalPages  int
	CurrentPage int
}

// NewPage computes page counts the way the storefront UI expects:
// ceil(total/limit) pages.
func NewPage(total, page, limit int) Page {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Page{Total: total, TotalPages: pages, CurrentPage: page}
}

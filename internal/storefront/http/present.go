package http

import (
	"encoding/json"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

func presentUser(i domain.Identity) shopsdk.User {
	return shopsdk.User{
		ID:        i.ID,
		FirstName: i.FirstName,
		LastName:  i.LastName,
		Email:     i.Email,
		Role:      string(i.Role),
		Avatar:    i.Avatar,
	}
}

func presentProduct(p domain.Product) shopsdk.Product {
	out := shopsdk.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.Float(),
		Category:    string(p.Category),
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Image != "" {
		img := p.Image
		out.Image = &img
	}
	return out
}

func presentProducts(ps []domain.Product) []shopsdk.Product {
	out := make([]shopsdk.Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, presentProduct(p))
	}
	return out
}

// optionalProduct presents a joined product, if it was loaded.
func optionalProduct(p *domain.Product) *shopsdk.Product {
	if p == nil {
		return nil
	}
	out := presentProduct(*p)
	return &out
}

func presentCartItem(c domain.CartItem) shopsdk.CartItem {
	return shopsdk.CartItem{
		ID:        c.ID,
		UserID:    c.IdentityID,
		ProductID: c.ProductID,
		Quantity:  c.Quantity,
		Product:   optionalProduct(c.Product),
	}
}

func presentFavorite(f domain.Favorite) shopsdk.Favorite {
	return shopsdk.Favorite{
		ID:        f.ID,
		UserID:    f.IdentityID,
		ProductID: f.ProductID,
		Product:   optionalProduct(f.Product),
	}
}

func presentOrder(o domain.Order) shopsdk.Order {
	out := shopsdk.Order{
		ID:          o.ID,
		UserID:      o.IdentityID,
		TotalAmount: o.Total.Float(),
		Status:      string(o.Status),
		Items:       make([]shopsdk.OrderItem, 0, len(o.Items)),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
	// Customer info is echoed verbatim, but only when it is a JSON document.
	if o.CustomerInfo != "" && json.Valid([]byte(o.CustomerInfo)) {
		out.CustomerInfo = json.RawMessage(o.CustomerInfo)
	}
	for _, it := range o.Items {
		out.Items = append(out.Items, shopsdk.OrderItem{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price.Float(),
			Product:   optionalProduct(it.Product),
		})
	}
	if c := o.Customer; c != nil {
		out.User = &shopsdk.OrderCustomer{
			ID:        c.ID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
		}
	}
	return out
}

func presentOrders(orders []domain.Order) []shopsdk.Order {
	out := make([]shopsdk.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, presentOrder(o))
	}
	return out
}

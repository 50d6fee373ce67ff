package shopsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListProducts returns one page of the catalog. Zero page/limit use the
// server defaults; an empty category lists everything.
func (c *Client) ListProducts(ctx context.Context, category string, page, limit int) (ProductPage, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/api/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return callData[ProductPage](ctx, c, http.MethodGet, path, nil, http.StatusOK)
}

func (c *Client) GetProduct(ctx context.Context, id int64) (Product, error) {
	d, err := callData[ProductData](ctx, c, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, http.StatusOK)
	return d.Product, err
}

// CreateProduct requires an ADMIN session.
func (c *Client) CreateProduct(ctx context.Context, req ProductRequest) (Product, error) {
	d, err := callData[ProductData](ctx, c, http.MethodPost, "/api/products", req, http.StatusCreated)
	return d.Product, err
}

// UpdateProduct requires an ADMIN session.
func (c *Client) UpdateProduct(ctx context.Context, id int64, req ProductRequest) (Product, error) {
	d, err := callData[ProductData](ctx, c, http.MethodPut, fmt.Sprintf("/api/products/%d", id), req, http.StatusOK)
	return d.Product, err
}

// DeleteProduct requires an ADMIN session.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	_, err := callMessage(ctx, c, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil, http.StatusOK)
	return err
}

func (c *Client) GetCart(ctx context.Context) ([]CartItem, error) {
	d, err := callData[CartData](ctx, c, http.MethodGet, "/api/cart", nil, http.StatusOK)
	return d.CartItems, err
}

// AddToCart returns the item and whether it was newly created (201) rather
// than incremented (200).
func (c *Client) AddToCart(ctx context.Context, productID int64, quantity int) (CartItem, bool, error) {
	req := AddToCartRequest{ProductID: productID}
	if quantity > 0 {
		req.Quantity = &quantity
	}
	resp, err := c.do(ctx, http.MethodPost, "/api/cart", req)
	if err != nil {
		return CartItem{}, false, err
	}

	expected := http.StatusOK
	if resp.StatusCode == http.StatusCreated {
		expected = http.StatusCreated
	}
	var env DataResponse[CartItemData]
	if err := decodeJSON(resp, &env, expected); err != nil {
		return CartItem{}, false, err
	}
	return env.Data.CartItem, expected == http.StatusCreated, nil
}

func (c *Client) UpdateCartItem(ctx context.Context, productID int64, quantity int) (CartItem, error) {
	d, err := callData[CartItemData](ctx, c, http.MethodPut, fmt.Sprintf("/api/cart/%d", productID),
		UpdateCartRequest{Quantity: quantity}, http.StatusOK)
	return d.CartItem, err
}

func (c *Client) RemoveFromCart(ctx context.Context, productID int64) error {
	_, err := callMessage(ctx, c, http.MethodDelete, fmt.Sprintf("/api/cart/%d", productID), nil, http.StatusOK)
	return err
}

func (c *Client) ClearCart(ctx context.Context) error {
	_, err := callMessage(ctx, c, http.MethodDelete, "/api/cart", nil, http.StatusOK)
	return err
}

func (c *Client) GetFavorites(ctx context.Context) ([]Favorite, error) {
	d, err := callData[FavoritesData](ctx, c, http.MethodGet, "/api/favorites", nil, http.StatusOK)
	return d.Favorites, err
}

func (c *Client) AddFavorite(ctx context.Context, productID int64) (Favorite, error) {
	d, err := callData[FavoriteData](ctx, c, http.MethodPost, "/api/favorites",
		AddFavoriteRequest{ProductID: productID}, http.StatusCreated)
	return d.Favorite, err
}

func (c *Client) RemoveFavorite(ctx context.Context, productID int64) error {
	_, err := callMessage(ctx, c, http.MethodDelete, fmt.Sprintf("/api/favorites/%d", productID), nil, http.StatusOK)
	return err
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (Order, error) {
	d, err := callData[OrderData](ctx, c, http.MethodPost, "/api/orders", req, http.StatusCreated)
	return d.Order, err
}

func (c *Client) MyOrders(ctx context.Context) ([]Order, error) {
	d, err := callData[OrdersData](ctx, c, http.MethodGet, "/api/orders/my-orders", nil, http.StatusOK)
	return d.Orders, err
}

// ListOrders requires an ADMIN session.
func (c *Client) ListOrders(ctx context.Context, page int) (OrderPage, error) {
	path := "/api/orders"
	if page > 0 {
		path += "?page=" + strconv.Itoa(page)
	}
	return callData[OrderPage](ctx, c, http.MethodGet, path, nil, http.StatusOK)
}

func (c *Client) SendContact(ctx context.Context, req ContactRequest) error {
	_, err := callMessage(ctx, c, http.MethodPost, "/api/contact", req, http.StatusOK)
	return err
}

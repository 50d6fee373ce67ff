package storefront_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

// TestShoppingFlow walks a customer from registration to a placed order and
// checks the admin sees it.
func TestShoppingFlow(t *testing.T) {
	baseURL, cleanup := setupStorefrontContainer(t)
	defer cleanup()
	ctx := t.Context()

	customer := shopsdk.NewClient(baseURL)
	user, err := customer.Register(ctx, shopsdk.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "engine42",
	})
	require.NoError(t, err)
	require.Equal(t, "USER", user.Role)

	page, err := customer.ListProducts(ctx, "Air Conditioning", 1, 10)
	require.NoError(t, err)
	require.Equal(t, 3, page.TotalProducts)
	product := page.Products[0]

	_, created, err := customer.AddToCart(ctx, product.ID, 2)
	require.NoError(t, err)
	require.True(t, created)

	_, err = customer.AddFavorite(ctx, product.ID)
	require.NoError(t, err)

	order, err := customer.CreateOrder(ctx, shopsdk.CreateOrderRequest{
		Items:        []shopsdk.OrderLine{{ID: product.ID, Quantity: 2}},
		CustomerInfo: json.RawMessage(`{"phone":"0400 000 000"}`),
	})
	require.NoError(t, err)
	require.InDelta(t, 2*product.Price, order.TotalAmount, 1e-9)
	require.NoError(t, customer.ClearCart(ctx))

	mine, err := customer.MyOrders(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	_, err = customer.ListOrders(ctx, 1)
	assertAPIError(t, err, http.StatusUnauthorized, "This role is not authorized")

	admin := loginAs(t, baseURL, adminEmail)
	all, err := admin.ListOrders(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, all.TotalOrders)
	require.Equal(t, user.ID, all.Orders[0].UserID)

	t.Logf("order %d placed for %.2f", order.ID, order.TotalAmount)
}

// TestAdminCatalog checks product writes are admin only.
func TestAdminCatalog(t *testing.T) {
	baseURL, cleanup := setupStorefrontContainer(t)
	defer cleanup()
	ctx := t.Context()

	name, desc, cat := "Pipe Wrench", "18 inch", "Plumbing"
	price, stock := 45.0, 12
	req := shopsdk.ProductRequest{Name: &name, Description: &desc, Price: &price, Category: &cat, Stock: &stock}

	_, err := loginAs(t, baseURL, userEmail).CreateProduct(ctx, req)
	assertAPIError(t, err, http.StatusUnauthorized, "This role is not authorized")

	admin := loginAs(t, baseURL, adminEmail)
	p, err := admin.CreateProduct(ctx, req)
	require.NoError(t, err)

	page, err := shopsdk.NewClient(baseURL).ListProducts(ctx, "", 1, 1)
	require.NoError(t, err)
	require.Equal(t, 9, page.TotalProducts)
	require.Equal(t, p.ID, page.Products[0].ID, "newest product is listed first")

	require.NoError(t, admin.DeleteProduct(ctx, p.ID))
	_, err = admin.GetProduct(ctx, p.ID)
	assertAPIError(t, err, http.StatusNotFound, "Product not found")
}

// TestSessionLifecycle covers login failures, logout and unknown routes.
func TestSessionLifecycle(t *testing.T) {
	baseURL, cleanup := setupStorefrontContainer(t)
	defer cleanup()
	ctx := t.Context()

	_, err := shopsdk.NewClient(baseURL).Login(ctx, userEmail, "wrong")
	assertAPIError(t, err, http.StatusUnauthorized, "Invalid email or password")

	client := loginAs(t, baseURL, userEmail)
	token := client.SessionToken()
	require.NotEmpty(t, token)

	_, err = client.GetCart(ctx)
	require.NoError(t, err)

	require.NoError(t, client.Logout(ctx))
	_, err = client.GetCart(ctx)
	assertAPIError(t, err, http.StatusUnauthorized, "Unauthorized - No token provided")

	// Tokens are stateless: the bearer form still works until it expires.
	bearer := shopsdk.NewClient(baseURL)
	bearer.BearerToken = token
	_, err = bearer.GetCart(ctx)
	require.NoError(t, err)

	resp, err := http.Get(baseURL + "/api/nothing-here")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

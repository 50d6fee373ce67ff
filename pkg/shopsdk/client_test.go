package shopsdk_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

func TestLoginStoresCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		httpx.SetSessionCookie(w, "session-token", time.Hour, false)
		httpx.WriteData(w, http.StatusOK, shopsdk.UserData{User: shopsdk.User{ID: 7, Email: "a@b.com", Role: "USER"}})
	})
	mux.HandleFunc("GET /api/cart", func(w http.ResponseWriter, r *http.Request) {
		if httpx.TokenFromRequest(r) != "session-token" {
			shopsdk.ErrNoToken.WriteError(w)
			return
		}
		httpx.WriteData(w, http.StatusOK, shopsdk.CartData{CartItems: []shopsdk.CartItem{}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := shopsdk.NewClient(srv.URL)

	_, err := c.GetCart(context.Background())
	var apiErr *shopsdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, httpx.MsgNoToken, apiErr.Message)

	u, err := c.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	require.Equal(t, int64(7), u.ID)
	require.Equal(t, "session-token", c.SessionToken())

	items, err := c.GetCart(context.Background())
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestAddToCartReportsCreated(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		code := http.StatusOK
		if calls == 1 {
			code = http.StatusCreated
		}
		httpx.WriteData(w, code, shopsdk.CartItemData{CartItem: shopsdk.CartItem{ProductID: 1, Quantity: calls}})
	}))
	defer srv.Close()

	c := shopsdk.NewClient(srv.URL)
	_, created, err := c.AddToCart(context.Background(), 1, 1)
	require.NoError(t, err)
	require.True(t, created)

	item, created, err := c.AddToCart(context.Background(), 1, 1)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, 2, item.Quantity)
}

func TestNonEnvelopeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := shopsdk.NewClient(srv.URL).GetLiveness(context.Background())
	var apiErr *shopsdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, httpx.StatusError, apiErr.Status)
}

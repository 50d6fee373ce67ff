package http

import (
	"net/http"

	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

type CartHandler struct {
	CartService *service.CartService
}

// HandleList godoc
//
//	@Summary	List cart items
//	@Tags		Cart
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	shopsdk.DataResponse[shopsdk.CartData]	"Items with their products"
//	@Failure	401	{object}	shopsdk.APIError						"Missing or invalid token"
//	@Router		/api/cart [get].
func (h *CartHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	items, err := h.CartService.List(r.Context(), p.IdentityID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]shopsdk.CartItem, 0, len(items))
	for _, it := range items {
		out = append(out, presentCartItem(it))
	}
	httpx.WriteData(w, http.StatusOK, shopsdk.CartData{CartItems: out})
}

// HandleAdd godoc
//
//	@Summary		Add to cart
//	@Description	Adds quantity (default 1) to the product's line, creating it when absent.
//	@Tags			Cart
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		shopsdk.AddToCartRequest					true	"Product and quantity"
//	@Success		200		{object}	shopsdk.DataResponse[shopsdk.CartItemData]	"Existing line incremented"
//	@Success		201		{object}	shopsdk.DataResponse[shopsdk.CartItemData]	"New line created"
//	@Failure		400		{object}	shopsdk.APIError							"Quantity must be between 1 and 1000"
//	@Failure		404		{object}	shopsdk.APIError							"Product not found"
//	@Router			/api/cart [post].
func (h *CartHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req shopsdk.AddToCartRequest
	if err := httpx.DecodeJSON(r, &req, maxBodyBytes); err != nil {
		writeError(w, r, err)
		return
	}
	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	item, created, err := h.CartService.Add(r.Context(), p.IdentityID, req.ProductID, qty)
	if err != nil {
		writeError(w, r, err)
		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	httpx.WriteData(w, code, shopsdk.CartItemData{CartItem: presentCartItem(item)})
}

// HandleUpdate godoc
//
//	@Summary	Set a cart line's quantity
//	@Tags		Cart
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		productId	path		int											true	"Product id"
//	@Param		request		body		shopsdk.UpdateCartRequest					true	"New quantity"
//	@Success	200			{object}	shopsdk.DataResponse[shopsdk.CartItemData]	"Updated line"
//	@Failure	400			{object}	shopsdk.APIError							"Quantity must be between 1 and 1000"
//	@Failure	404			{object}	shopsdk.APIError							"Cart item not found"
//	@Router		/api/cart/{productId} [put].
func (h *CartHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	productID, err := pathID(r, "productId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req shopsdk.UpdateCartRequest
	if err := httpx.DecodeJSON(r, &req, maxBodyBytes); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.CartService.Update(r.Context(), p.IdentityID, productID, req.Quantity)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, shopsdk.CartItemData{CartItem: presentCartItem(item)})
}

// HandleRemove godoc
//
//	@Summary	Remove a cart line
//	@Tags		Cart
//	@Security	BearerAuth
//	@Produce	json
//	@Param		productId	path		int						true	"Product id"
//	@Success	200			{object}	shopsdk.MessageResponse	"Removed from cart"
//	@Failure	404			{object}	shopsdk.APIError		"Cart item not found"
//	@Router		/api/cart/{productId} [delete].
func (h *CartHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	productID, err := pathID(r, "productId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.CartService.Remove(r.Context(), p.IdentityID, productID); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, msgRemovedFromCart)
}

// HandleClear godoc
//
//	@Summary	Empty the cart
//	@Tags		Cart
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	shopsdk.MessageResponse	"Cart cleared"
//	@Router		/api/cart [delete].
func (h *CartHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	if err := h.CartService.Clear(r.Context(), p.IdentityID); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, msgCartCleared)
}

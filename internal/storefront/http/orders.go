package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

type OrdersHandler struct {
	OrderService *service.OrderService
}

// HandleCreate godoc
//
//	@Summary		Place an order
//	@Description	Prices come from the catalog at the time of the order; the client only names products and quantities.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		shopsdk.CreateOrderRequest				true	"Lines and customer details"
//	@Success		201		{object}	shopsdk.DataResponse[shopsdk.OrderData]	"Created order"
//	@Failure		400		{object}	shopsdk.APIError						"Order items are required"
//	@Failure		404		{object}	shopsdk.APIError						"Product with ID n not found"
//	@Router			/api/orders [post].
func (h *OrdersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req shopsdk.CreateOrderRequest
	if err := httpx.DecodeJSON(r, &req, maxBodyBytes); err != nil {
		writeError(w, r, err)
		return
	}

	lines := make([]domain.OrderLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, domain.OrderLine{ProductID: it.ID, Quantity: it.Quantity})
	}

	order, err := h.OrderService.Create(r.Context(), p.IdentityID, lines, string(req.CustomerInfo))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusCreated, shopsdk.OrderData{Order: presentOrder(order)})
}

// HandleListMine godoc
//
//	@Summary	List my orders
//	@Tags		Orders
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	shopsdk.DataResponse[shopsdk.OrdersData]	"The caller's orders, newest first"
//	@Router		/api/orders/my-orders [get].
func (h *OrdersHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	orders, err := h.OrderService.ListMine(r.Context(), p.IdentityID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, shopsdk.OrdersData{Orders: presentOrders(orders)})
}

// HandleList godoc
//
//	@Summary	List all orders
//	@Tags		Orders
//	@Security	BearerAuth
//	@Produce	json
//	@Param		page	query		int										false	"Page number"
//	@Param		limit	query		int										false	"Page size (default 10)"
//	@Success	200		{object}	shopsdk.DataResponse[shopsdk.OrderPage]	"One page of orders with their customers"
//	@Failure	401		{object}	shopsdk.APIError						"Missing token or not an admin"
//	@Router		/api/orders [get].
func (h *OrdersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	orders, pg, err := h.OrderService.List(r.Context(), page, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, shopsdk.OrderPage{
		Orders:      presentOrders(orders),
		TotalOrders: pg.Total,
		TotalPages:  pg.TotalPages,
		CurrentPage: pg.CurrentPage,
	})
}

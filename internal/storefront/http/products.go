package http

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

type ProductsHandler struct {
	CatalogService *service.CatalogService
	UploadDir      string
}

func (h *ProductsHandler) imageDir() string { return filepath.Join(h.UploadDir, "products") }

// HandleList godoc
//
//	@Summary		List products
//	@Description	Newest first. Pages start at 1; the default page size is 4.
//	@Tags			Products
//	@Produce		json
//	@Param			category	query		string									false	"Category filter"	Enums(Air Conditioning, Plumbing, Fire Fighting)
//	@Param			page		query		int										false	"Page number"
//	@Param			limit		query		int										false	"Page size"
//	@Success		200			{object}	shopsdk.DataResponse[shopsdk.ProductPage]	"One page of products"
//	@Router			/api/products [get].
func (h *ProductsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	products, p, err := h.CatalogService.List(r.Context(), q.Get("category"), page, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteData(w, http.StatusOK, shopsdk.ProductPage{
		Products:      presentProducts(products),
		TotalProducts: p.Total,
		TotalPages:    p.TotalPages,
		CurrentPage:   p.CurrentPage,
	})
}

// HandleGet godoc
//
//	@Summary	Get a product
//	@Tags		Products
//	@Produce	json
//	@Param		id	path		int										true	"Product id"
//	@Success	200	{object}	shopsdk.DataResponse[shopsdk.ProductData]	"The product"
//	@Failure	400	{object}	shopsdk.APIError							"ID must be a valid number"
//	@Failure	404	{object}	shopsdk.APIError							"Product not found"
//	@Router		/api/products/{id} [get].
func (h *ProductsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	p, err := h.CatalogService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, shopsdk.ProductData{Product: presentProduct(p)})
}

// HandleCreate godoc
//
//	@Summary		Create a product
//	@Description	Accepts JSON or multipart/form-data with an optional "image" file (up to 5 MB).
//	@Tags			Products
//	@Security		BearerAuth
//	@Accept			json,mpfd
//	@Produce		json
//	@Param			request	body		shopsdk.ProductRequest						true	"Product fields"
//	@Success		201		{object}	shopsdk.DataResponse[shopsdk.ProductData]	"Created product"
//	@Failure		400		{object}	shopsdk.APIError							"Validation failed"
//	@Failure		401		{object}	shopsdk.APIError							"Missing token or not an admin"
//	@Router			/api/products [post].
func (h *ProductsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	in, err := h.readInput(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	p, err := h.CatalogService.Create(r.Context(), in)
	if err != nil {
		discardUpload(h.imageDir(), in.Image)
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusCreated, shopsdk.ProductData{Product: presentProduct(p)})
}

// HandleUpdate godoc
//
//	@Summary		Update a product
//	@Description	Only the fields present are changed. A new image replaces the old one.
//	@Tags			Products
//	@Security		BearerAuth
//	@Accept			json,mpfd
//	@Produce		json
//	@Param			id		path		int											true	"Product id"
//	@Param			request	body		shopsdk.ProductRequest						true	"Fields to change"
//	@Success		200		{object}	shopsdk.DataResponse[shopsdk.ProductData]	"Updated product"
//	@Failure		400		{object}	shopsdk.APIError							"Validation failed"
//	@Failure		401		{object}	shopsdk.APIError							"Missing token or not an admin"
//	@Failure		404		{object}	shopsdk.APIError							"Product not found"
//	@Router			/api/products/{id} [put].
func (h *ProductsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	in, err := h.readInput(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	p, err := h.CatalogService.Update(r.Context(), id, in)
	if err != nil {
		discardUpload(h.imageDir(), in.Image)
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, shopsdk.ProductData{Product: presentProduct(p)})
}

// HandleDelete godoc
//
//	@Summary	Delete a product
//	@Tags		Products
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int						true	"Product id"
//	@Success	200	{object}	shopsdk.MessageResponse	"Product deleted successfully"
//	@Failure	401	{object}	shopsdk.APIError		"Missing token or not an admin"
//	@Failure	404	{object}	shopsdk.APIError		"Product not found"
//	@Router		/api/products/{id} [delete].
func (h *ProductsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.CatalogService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, msgProductDeleted)
}

// readInput decodes a product from JSON or multipart form fields, saving an
// uploaded image along the way.
func (h *ProductsHandler) readInput(w http.ResponseWriter, r *http.Request) (service.ProductInput, error) {
	if !isMultipart(r) {
		var req shopsdk.ProductRequest
		if err := httpx.DecodeJSON(r, &req, maxBodyBytes); err != nil {
			return service.ProductInput{}, err
		}
		return service.ProductInput{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Category:    req.Category,
			Stock:       req.Stock,
		}, nil
	}

	if err := parseMultipart(w, r); err != nil {
		return service.ProductInput{}, err
	}

	var in service.ProductInput
	fields := map[string]string{}

	in.Name = formString(r, "name")
	in.Description = formString(r, "description")
	in.Category = formString(r, "category")

	if v := formString(r, "price"); v != nil {
		price, err := strconv.ParseFloat(strings.TrimSpace(*v), 64)
		if err != nil {
			fields["price"] = "Price must be a number"
		}
		in.Price = &price
	}
	if v := formString(r, "stock"); v != nil {
		stock, err := strconv.Atoi(strings.TrimSpace(*v))
		if err != nil {
			fields["stock"] = "Stock must be a whole number"
		}
		in.Stock = &stock
	}
	if len(fields) > 0 {
		return service.ProductInput{}, &service.ValidationError{Fields: fields}
	}

	image, err := saveImage(r, "image", h.imageDir(), "product")
	if err != nil {
		return service.ProductInput{}, err
	}
	in.Image = image
	return in, nil
}

// formString returns a multipart value, or nil when the field was not sent.
func formString(r *http.Request, key string) *string {
	vs, ok := r.MultipartForm.Value[key]
	if !ok || len(vs) == 0 {
		return nil
	}
	return &vs[0]
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return id, nil
}

package http

import (
	"net/http"

	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

type FavoritesHandler struct {
	FavoriteService *service.FavoriteService
}

// HandleList godoc
//
//	@Summary	List favorites
//	@Tags		Favorites
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	shopsdk.DataResponse[shopsdk.FavoritesData]	"Favorites with their products"
//	@Router		/api/favorites [get].
func (h *FavoritesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	favs, err := h.FavoriteService.List(r.Context(), p.IdentityID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]shopsdk.Favorite, 0, len(favs))
	for _, f := range favs {
		out = append(out, presentFavorite(f))
	}
	httpx.WriteData(w, http.StatusOK, shopsdk.FavoritesData{Favorites: out})
}

// HandleAdd godoc
//
//	@Summary	Add a favorite
//	@Tags		Favorites
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		shopsdk.AddFavoriteRequest					true	"Product"
//	@Success	201		{object}	shopsdk.DataResponse[shopsdk.FavoriteData]	"Created favorite"
//	@Failure	400		{object}	shopsdk.APIError							"Product already in favorites"
//	@Failure	404		{object}	shopsdk.APIError							"Product not found"
//	@Router		/api/favorites [post].
func (h *FavoritesHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var req shopsdk.AddFavoriteRequest
	if err := httpx.DecodeJSON(r, &req, maxBodyBytes); err != nil {
		writeError(w, r, err)
		return
	}

	fav, err := h.FavoriteService.Add(r.Context(), p.IdentityID, req.ProductID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteData(w, http.StatusCreated, shopsdk.FavoriteData{Favorite: presentFavorite(fav)})
}

// HandleRemove godoc
//
//	@Summary	Remove a favorite
//	@Tags		Favorites
//	@Security	BearerAuth
//	@Produce	json
//	@Param		productId	path		int						true	"Product id"
//	@Success	200			{object}	shopsdk.MessageResponse	"Removed from favorites"
//	@Failure	404			{object}	shopsdk.APIError		"Favorite not found"
//	@Router		/api/favorites/{productId} [delete].
func (h *FavoritesHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	productID, err := pathID(r, "productId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.FavoriteService.Remove(r.Context(), p.IdentityID, productID); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, msgRemovedFromFavs)
}

package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

// Messages existing storefront clients match on.
const (
	msgValidation         = "Validation failed"
	msgInvalidLogin       = "Invalid email or password"
	msgInvalidFirebase    = "Invalid Firebase token"
	msgMissingIDToken     = "Firebase ID token is required"
	msgEmailExists        = "Email already exists"
	msgNoPasswordAccount  = "User not found or is a social media user"
	msgUserNotInDatabase  = "User not found in database"
	msgInvalidResetToken  = "Invalid or expired token"
	msgProductNotFound    = "Product not found"
	msgCartItemNotFound   = "Cart item not found"
	msgBadQuantity        = "Quantity must be between 1 and 1000"
	msgFavoriteExists     = "Product already in favorites"
	msgFavoriteNotFound   = "Favorite not found"
	msgNoOrderItems       = "Order items are required"
	msgMissingFields      = "All fields are required"
	msgBadID              = "ID must be a valid number"
	msgBadUpload          = "Only image files up to 5 MB are allowed"
	msgLoggedOut          = "Logged out successfully"
	msgResetLinkSent      = "Password reset link sent to your email"
	msgPasswordReset      = "Password reset successfully"
	msgProductDeleted     = "Product deleted successfully"
	msgRemovedFromCart    = "Removed from cart"
	msgCartCleared        = "Cart cleared"
	msgRemovedFromFavs    = "Removed from favorites"
	msgContactSent        = "Message sent successfully"
	msgServiceUnavailable = "Service temporarily unavailable"
)

// apiError maps a service error to its response. Unknown errors become 500.
func apiError(err error) *shopsdk.APIError {
	var ve *service.ValidationError
	var missing *service.ProductMissingError

	switch {
	case errors.As(err, &ve):
		msg := ve.First("firstName", "lastName", "email", "password", "name", "description", "price", "category")
		if msg == "" {
			msg = msgValidation
		}
		return shopsdk.ValidationFailed(msg, ve.Fields)
	case errors.Is(err, httpx.ErrBadPayload):
		return shopsdk.ErrBadPayload
	case errors.Is(err, errBadUpload):
		return shopsdk.NewAPIError(http.StatusBadRequest, msgBadUpload)
	case errors.Is(err, errBadID):
		return shopsdk.ValidationFailed(msgBadID, map[string]string{"id": msgBadID})

	case errors.Is(err, service.ErrInvalidCredentials):
		return shopsdk.NewAPIError(http.StatusUnauthorized, msgInvalidLogin)
	case errors.Is(err, service.ErrInvalidToken):
		return shopsdk.ErrUnauthenticated
	case errors.Is(err, service.ErrMissingIDToken):
		return shopsdk.NewAPIError(http.StatusBadRequest, msgMissingIDToken)
	case errors.Is(err, service.ErrEmailExists):
		return shopsdk.NewAPIError(http.StatusBadRequest, msgEmailExists)
	case errors.Is(err, service.ErrIdentityNotFound):
		return shopsdk.NewAPIError(http.StatusNotFound, msgNoPasswordAccount)

	case errors.As(err, &missing):
		return shopsdk.NewAPIError(http.StatusNotFound, missing.Error())
	case errors.Is(err, service.ErrProductNotFound):
		return shopsdk.NewAPIError(http.StatusNotFound, msgProductNotFound)
	case errors.Is(err, service.ErrCartItemNotFound):
		return shopsdk.NewAPIError(http.StatusNotFound, msgCartItemNotFound)
	case errors.Is(err, service.ErrInvalidQuantity):
		return shopsdk.NewAPIError(http.StatusBadRequest, msgBadQuantity)
	case errors.Is(err, service.ErrFavoriteExists):
		return shopsdk.NewAPIError(http.StatusBadRequest, msgFavoriteExists)
	case errors.Is(err, service.ErrFavoriteNotFound):
		return shopsdk.NewAPIError(http.StatusNotFound, msgFavoriteNotFound)
	case errors.Is(err, service.ErrNoOrderItems):
		return shopsdk.NewAPIError(http.StatusBadRequest, msgNoOrderItems)
	case errors.Is(err, service.ErrMissingFields):
		return shopsdk.NewAPIError(http.StatusBadRequest, msgMissingFields)
	case errors.Is(err, service.ErrMailQueueFull), errors.Is(err, service.ErrMailQueueStopped):
		return shopsdk.NewAPIError(http.StatusServiceUnavailable, msgServiceUnavailable)
	}
	return shopsdk.ErrInternal
}

// writeError renders err, logging anything that maps to a server error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	e := apiError(err)
	if e.StatusCode >= http.StatusInternalServerError {
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
	}
	e.WriteError(w)
}

// writeAuthnError renders failures of the access guard.
func writeAuthnError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrIdentityNotFound):
		shopsdk.NewAPIError(http.StatusUnauthorized, msgUserNotInDatabase).WriteError(w)
	case errors.Is(err, service.ErrInvalidToken):
		shopsdk.ErrUnauthenticated.WriteError(w)
	default:
		writeError(w, r, err)
	}
}

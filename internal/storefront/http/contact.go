package http

import (
	"net/http"

	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

type ContactHandler struct {
	ContactService *service.ContactService
}

// ServeHTTP forwards a contact form to the shop mailbox.
//
//	@Summary	Send a contact message
//	@Tags		Contact
//	@Accept		json
//	@Produce	json
//	@Param		request	body		shopsdk.ContactRequest	true	"Message"
//	@Success	200		{object}	shopsdk.MessageResponse	"Message sent successfully"
//	@Failure	400		{object}	shopsdk.APIError		"All fields are required"
//	@Router		/api/contact [post].
func (h *ContactHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req shopsdk.ContactRequest
	if err := httpx.DecodeJSON(r, &req, maxBodyBytes); err != nil {
		writeError(w, r, err)
		return
	}

	err := h.ContactService.Send(r.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, msgContactSent)
}

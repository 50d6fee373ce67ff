package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

type AuthHandler struct {
	IdentityService *service.IdentityService
	UploadDir       string
	CookieSecure    bool
}

// HandleRegister creates a password account and signs it in.
//
//	@Summary		Register
//	@Description	Creates a USER account. Accepts JSON or multipart/form-data with an optional "avatar" image (up to 5 MB).
//	@Tags			Auth
//	@Accept			json,mpfd
//	@Produce		json
//	@Param			request	body		shopsdk.RegisterRequest						true	"Account details"
//	@Success		201		{object}	shopsdk.DataResponse[shopsdk.UserData]	"Created user; session cookie set"
//	@Failure		400		{object}	shopsdk.APIError							"Validation failed or email already exists"
//	@Failure		500		{object}	shopsdk.APIError							"Internal server error"
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var in service.RegisterInput

	if isMultipart(r) {
		if err := parseMultipart(w, r); err != nil {
			writeError(w, r, err)
			return
		}
		in = service.RegisterInput{
			FirstName: r.FormValue("firstName"),
			LastName:  r.FormValue("lastName"),
			Email:     r.FormValue("email"),
			Password:  r.FormValue("password"),
		}

		avatar, err := saveImage(r, "avatar", h.UploadDir, "user")
		if err != nil {
			writeError(w, r, err)
			return
		}
		in.Avatar = avatar
	} else {
		var req shopsdk.RegisterRequest
		if err := httpx.DecodeJSON(r, &req, maxBodyBytes); err != nil {
			writeError(w, r, err)
			return
		}
		in = service.RegisterInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  req.Password,
		}
	}

	sess, err := h.IdentityService.Register(r.Context(), in)
	if err != nil {
		discardUpload(h.UploadDir, in.Avatar)
		writeError(w, r, err)
		return
	}

	httpx.SetSessionCookie(w, sess.Token, sess.TTL, h.CookieSecure)
	httpx.WriteData(w, http.StatusCreated, shopsdk.UserData{User: presentUser(sess.Identity)})
}

// HandleLogin signs in with email and password.
//
//	@Summary		Login
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		shopsdk.LoginRequest						true	"Credentials"
//	@Success		200		{object}	shopsdk.DataResponse[shopsdk.UserData]	"Signed-in user; session cookie set"
//	@Failure		400		{object}	shopsdk.APIError							"Validation failed"
//	@Failure		401		{object}	shopsdk.APIError							"Invalid email or password"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req shopsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req, maxBodyBytes); err != nil {
		writeError(w, r, err)
		return
	}

	sess, err := h.IdentityService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.SetSessionCookie(w, sess.Token, sess.TTL, h.CookieSecure)
	httpx.WriteData(w, http.StatusOK, shopsdk.UserData{User: presentUser(sess.Identity)})
}

// HandleFirebaseLogin signs in with an ID token from the federated provider.
// The provider token itself becomes the session.
//
//	@Summary		Federated login
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		shopsdk.FirebaseLoginRequest				true	"Provider ID token"
//	@Success		200		{object}	shopsdk.DataResponse[shopsdk.UserData]	"Signed-in user; one hour session cookie set"
//	@Failure		400		{object}	shopsdk.APIError							"Missing token or email already registered"
//	@Failure		401		{object}	shopsdk.APIError							"Invalid Firebase token"
//	@Router			/api/auth/firebase-login [post].
func (h *AuthHandler) HandleFirebaseLogin(w http.ResponseWriter, r *http.Request) {
	var req shopsdk.FirebaseLoginRequest
	if err := httpx.DecodeJSON(r, &req, maxBodyBytes); err != nil {
		writeError(w, r, err)
		return
	}

	sess, err := h.IdentityService.FederatedLogin(r.Context(), req.IDToken)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidToken):
		shopsdk.NewAPIError(http.StatusUnauthorized, msgInvalidFirebase).WriteError(w)
		return
	default:
		writeError(w, r, err)
		return
	}

	httpx.SetSessionCookie(w, sess.Token, sess.TTL, h.CookieSecure)
	httpx.WriteData(w, http.StatusOK, shopsdk.UserData{User: presentUser(sess.Identity)})
}

// HandleLogout clears the session cookie. Tokens are stateless, so a copied
// token stays valid until it expires.
//
//	@Summary	Logout
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	shopsdk.MessageResponse	"Logged out successfully"
//	@Router		/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	httpx.ClearSessionCookie(w, h.CookieSecure)
	httpx.WriteMessage(w, http.StatusOK, msgLoggedOut)
}

// HandleForgotPassword mails a reset link to a password account.
//
//	@Summary		Forgot password
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		shopsdk.ForgotPasswordRequest	true	"Account email"
//	@Success		200		{object}	shopsdk.MessageResponse			"Password reset link sent to your email"
//	@Failure		404		{object}	shopsdk.APIError				"User not found or is a social media user"
//	@Failure		503		{object}	shopsdk.APIError				"Mail queue full"
//	@Router			/api/auth/forgot-password [post].
func (h *AuthHandler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req shopsdk.ForgotPasswordRequest
	if err := httpx.DecodeJSON(r, &req, maxBodyBytes); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.IdentityService.ForgotPassword(r.Context(), req.Email); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, msgResetLinkSent)
}

// HandleResetPassword sets a new password using a mailed reset token.
//
//	@Summary		Reset password
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		shopsdk.ResetPasswordRequest	true	"Token, account id and new password"
//	@Success		200		{object}	shopsdk.MessageResponse			"Password reset successfully"
//	@Failure		400		{object}	shopsdk.APIError				"Password too short"
//	@Failure		401		{object}	shopsdk.APIError				"Invalid or expired token"
//	@Failure		404		{object}	shopsdk.APIError				"User not found or is a social media user"
//	@Router			/api/auth/reset-password [post].
func (h *AuthHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req shopsdk.ResetPasswordRequest
	if err := httpx.DecodeJSON(r, &req, maxBodyBytes); err != nil {
		writeError(w, r, err)
		return
	}

	err := h.IdentityService.ResetPassword(r.Context(), req.Token, req.ID, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidToken):
		shopsdk.NewAPIError(http.StatusUnauthorized, msgInvalidResetToken).WriteError(w)
		return
	default:
		writeError(w, r, err)
		return
	}
	httpx.WriteMessage(w, http.StatusOK, msgPasswordReset)
}

// principal returns the caller attached by the guard, writing a 401 when
// there is none.
func principal(w http.ResponseWriter, r *http.Request) (domain.Principal, bool) {
	p, ok := domain.PrincipalFromContext(r.Context())
	if !ok {
		slogx.FromContext(r.Context()).Error("guarded route reached without a principal")
		shopsdk.ErrNoToken.WriteError(w)
	}
	return p, ok
}

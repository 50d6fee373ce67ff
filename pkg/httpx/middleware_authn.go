package httpx

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

// Authenticator resolves a raw token into a request context carrying the
// caller's identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (context.Context, error)
}

// ErrorWriter renders an authentication failure.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// AuthnMiddleware rejects requests without a token and hands the rest to a.
// onError renders failures from a; nil means a plain 401 "Invalid token".
func AuthnMiddleware(a Authenticator, onError ErrorWriter) Middleware {
	if onError == nil {
		onError = func(w http.ResponseWriter, _ *http.Request, _ error) {
			WriteFailure(w, http.StatusUnauthorized, MsgBadToken, nil)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := TokenFromRequest(r)
			if raw == "" {
				WriteFailure(w, http.StatusUnauthorized, MsgNoToken, nil)
				return
			}

			ctx, err := a.Authenticate(r.Context(), raw)
			if err != nil {
				slogx.FromContext(r.Context()).Warn("authentication failed", "err", err)
				onError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

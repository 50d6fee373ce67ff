package httpx

import (
	"context"
	"net/http"
	"slices"
)

// RoleFunc reports the caller's role from a request context.
type RoleFunc func(ctx context.Context) (string, bool)

// RequireRole admits callers whose role is one of allowed. Everyone else gets
// 401 "This role is not authorized"; existing clients rely on 401 here.
func RequireRole(roleOf RoleFunc, allowed ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := roleOf(r.Context())
			if !ok || !slices.Contains(allowed, role) {
				WriteFailure(w, http.StatusUnauthorized, MsgForbidden, nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

package httpx

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

// Middleware wraps a handler.
type Middleware func(http.Handler) http.Handler

// Chain wraps h so that mws[0] runs first and h runs last.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// Recover turns a panic in next into a 500 envelope and logs the stack.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				slogx.FromContext(r.Context()).Error("panic recovered",
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				WriteFailure(w, http.StatusInternalServerError, MsgInternal, nil)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/storefront/pkg/httpx"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) httpx.Envelope {
	t.Helper()
	var env httpx.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mw("a"), mw("b"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"a", "b", "handler"}, order)
}

func TestWriteFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteFailure(rec, http.StatusBadRequest, "Email already exists", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	env := decodeEnvelope(t, rec)
	require.Equal(t, httpx.StatusFail, env.Status)
	require.Equal(t, "Email already exists", env.Message)
	require.Equal(t, http.StatusBadRequest, env.Code)

	rec = httptest.NewRecorder()
	httpx.WriteFailure(rec, http.StatusInternalServerError, httpx.MsgInternal, nil)
	require.Equal(t, httpx.StatusError, decodeEnvelope(t, rec).Status)
}

func TestRecover(t *testing.T) {
	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), httpx.Recover())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	require.Equal(t, httpx.StatusError, env.Status)
	require.Equal(t, httpx.MsgInternal, env.Message)
	require.Equal(t, 500, env.Code)
}

func TestTokenFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		authz  string
		want   string
	}{
		{name: "none"},
		{name: "cookie", cookie: "c-tok", want: "c-tok"},
		{name: "bearer", authz: "Bearer b-tok", want: "b-tok"},
		{name: "lowercase scheme", authz: "bearer b-tok", want: "b-tok"},
		{name: "cookie wins", cookie: "c-tok", authz: "Bearer b-tok", want: "c-tok"},
		{name: "basic ignored", authz: "Basic dXNlcjpwdw=="},
		{name: "bare scheme", authz: "Bearer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: httpx.SessionCookie, Value: tt.cookie})
			}
			if tt.authz != "" {
				r.Header.Set("Authorization", tt.authz)
			}
			require.Equal(t, tt.want, httpx.TokenFromRequest(r))
		})
	}
}

func TestSessionCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.SetSessionCookie(rec, "tok", time.Hour, true)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	require.Equal(t, "token", c.Name)
	require.Equal(t, "tok", c.Value)
	require.True(t, c.HttpOnly)
	require.True(t, c.Secure)
	require.Equal(t, http.SameSiteStrictMode, c.SameSite)
	require.Equal(t, 3600, c.MaxAge)

	rec = httptest.NewRecorder()
	httpx.ClearSessionCookie(rec, false)
	c = rec.Result().Cookies()[0]
	require.Equal(t, "", c.Value)
	require.Less(t, c.MaxAge, 0)
}

type ctxKey struct{}

type fakeAuth struct{ err error }

func (f fakeAuth) Authenticate(ctx context.Context, token string) (context.Context, error) {
	if f.err != nil {
		return nil, f.err
	}
	return context.WithValue(ctx, ctxKey{}, token), nil
}

func roleFromCtx(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKey{}).(string)
	return strings.TrimPrefix(v, "role:"), ok
}

func TestAuthnMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteMessage(w, http.StatusOK, r.Context().Value(ctxKey{}).(string))
	})

	t.Run("no token", func(t *testing.T) {
		h := httpx.Chain(ok, httpx.AuthnMiddleware(fakeAuth{}, nil))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, httpx.MsgNoToken, decodeEnvelope(t, rec).Message)
	})

	t.Run("rejected token", func(t *testing.T) {
		h := httpx.Chain(ok, httpx.AuthnMiddleware(fakeAuth{err: errors.New("nope")}, nil))
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer x")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, httpx.MsgBadToken, decodeEnvelope(t, rec).Message)
	})

	t.Run("custom error writer", func(t *testing.T) {
		onErr := func(w http.ResponseWriter, _ *http.Request, err error) {
			httpx.WriteFailure(w, http.StatusUnauthorized, err.Error(), nil)
		}
		h := httpx.Chain(ok, httpx.AuthnMiddleware(fakeAuth{err: errors.New("User not found in database")}, onErr))
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: httpx.SessionCookie, Value: "x"})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		require.Equal(t, "User not found in database", decodeEnvelope(t, rec).Message)
	})

	t.Run("accepted token", func(t *testing.T) {
		h := httpx.Chain(ok, httpx.AuthnMiddleware(fakeAuth{}, nil))
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer good")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "good", decodeEnvelope(t, rec).Message)
	})
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := httpx.Chain(ok,
		httpx.AuthnMiddleware(fakeAuth{}, nil),
		httpx.RequireRole(roleFromCtx, "ADMIN"),
	)

	for role, want := range map[string]int{
		"ADMIN":   http.StatusNoContent,
		"USER":    http.StatusUnauthorized,
		"MANAGER": http.StatusUnauthorized,
		"admin":   http.StatusUnauthorized,
	} {
		t.Run(role, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Header.Set("Authorization", "Bearer role:"+role)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, r)
			require.Equal(t, want, rec.Code)
			if want == http.StatusUnauthorized {
				require.Equal(t, httpx.MsgForbidden, decodeEnvelope(t, rec).Message)
			}
		})
	}

	t.Run("no principal", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httpx.RequireRole(roleFromCtx, "ADMIN")(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Email string `json:"email"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.com","role":"ADMIN"}`))
	require.NoError(t, httpx.DecodeJSON(r, &v, 1<<10))
	require.Equal(t, "a@b.com", v.Email)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
	require.ErrorIs(t, httpx.DecodeJSON(r, &v, 1<<10), httpx.ErrBadPayload)
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	preflight := func() *http.Request {
		req := httptest.NewRequest(http.MethodOptions, "/api/cart", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
		return req
	}

	t.Run("trailing slash in origin", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httpx.CORS(" http://localhost:3000/ ")(next).ServeHTTP(rec, preflight())
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("no origins is a no-op", func(t *testing.T) {
		for _, origins := range [][]string{nil, {""}, {"  "}} {
			rec := httptest.NewRecorder()
			httpx.CORS(origins...)(next).ServeHTTP(rec, preflight())
			require.Equal(t, http.StatusTeapot, rec.Code)
			require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		}
	})
}

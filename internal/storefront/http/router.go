package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/obs"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
	"github.com/aussiebroadwan/storefront/pkg/slogx"

	_ "github.com/aussiebroadwan/storefront/api/storefront" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      *obs.Metrics
	store        store.Store

	UploadDir      string
	CookieSecure   bool
	AllowedOrigins []string // CORS origins allowed to send credentials
	MailMode     string // "smtp" or "log", reported by /readyz

	Guard           *service.AccessGuard
	IdentityService *service.IdentityService
	CatalogService  *service.CatalogService
	CartService     *service.CartService
	FavoriteService *service.FavoriteService
	OrderService    *service.OrderService
	ContactService  *service.ContactService
}

func NewRouter(buildVersion string, st store.Store, metrics *obs.Metrics, logger *slog.Logger) *Router {
	if metrics == nil {
		metrics = obs.NewMetrics(buildVersion)
	}

	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		metrics:      metrics,
		logger:       logger,
		UploadDir:    "uploads",
		MailMode:     "log",
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(r.AllowedOrigins...),
		httpx.Recover(),
	}

	r.registerAuth()
	r.registerProducts()
	r.registerCart()
	r.registerFavorites()
	r.registerOrders()
	r.registerContact()
	r.registerSystem()

	r.Mux.Handle("GET /uploads/", uploadsHandler(r.UploadDir))
	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		shopsdk.ErrRouteNotFound.WriteError(w)
	}))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Storefront API
//	@version		0.1.0
//	@description	Identity, catalog, cart, favorites and orders for the storefront.
//	@description
//	@description				Sessions are HS256 bearer tokens carried in the "token" cookie or an Authorization header.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/storefront
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	// Metrics wraps the mux directly so it can see the matched pattern.
	httpx.Chain(r.metrics.Middleware(r.Mux), r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(r.Guard, writeAuthnError)
}

func (r *Router) adminOnly() httpx.Middleware {
	return httpx.RequireRole(domain.PrincipalRole, string(domain.RoleAdmin))
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		IdentityService: r.IdentityService,
		UploadDir:       r.UploadDir,
		CookieSecure:    r.CookieSecure,
	}

	r.Mux.HandleFunc("POST /api/auth/register", h.HandleRegister)
	r.Mux.HandleFunc("POST /api/auth/login", h.HandleLogin)
	r.Mux.HandleFunc("POST /api/auth/firebase-login", h.HandleFirebaseLogin)
	r.Mux.HandleFunc("POST /api/auth/logout", h.HandleLogout)
	r.Mux.HandleFunc("POST /api/auth/forgot-password", h.HandleForgotPassword)
	r.Mux.HandleFunc("POST /api/auth/reset-password", h.HandleResetPassword)
}

func (r *Router) registerProducts() {
	h := &ProductsHandler{
		CatalogService: r.CatalogService,
		UploadDir:      r.UploadDir,
	}

	// Catalog reads are public
	r.Mux.HandleFunc("GET /api/products", h.HandleList)
	r.Mux.HandleFunc("GET /api/products/{id}", h.HandleGet)

	r.Mux.Handle("POST /api/products",
		httpx.Chain(http.HandlerFunc(h.HandleCreate), r.authn(), r.adminOnly()))
	r.Mux.Handle("PUT /api/products/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate), r.authn(), r.adminOnly()))
	r.Mux.Handle("DELETE /api/products/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete), r.authn(), r.adminOnly()))
}

func (r *Router) registerCart() {
	h := &CartHandler{CartService: r.CartService}

	r.Mux.Handle("GET /api/cart", httpx.Chain(http.HandlerFunc(h.HandleList), r.authn()))
	r.Mux.Handle("POST /api/cart", httpx.Chain(http.HandlerFunc(h.HandleAdd), r.authn()))
	r.Mux.Handle("DELETE /api/cart", httpx.Chain(http.HandlerFunc(h.HandleClear), r.authn()))
	r.Mux.Handle("PUT /api/cart/{productId}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), r.authn()))
	r.Mux.Handle("DELETE /api/cart/{productId}", httpx.Chain(http.HandlerFunc(h.HandleRemove), r.authn()))
}

func (r *Router) registerFavorites() {
	h := &FavoritesHandler{FavoriteService: r.FavoriteService}

	r.Mux.Handle("GET /api/favorites", httpx.Chain(http.HandlerFunc(h.HandleList), r.authn()))
	r.Mux.Handle("POST /api/favorites", httpx.Chain(http.HandlerFunc(h.HandleAdd), r.authn()))
	r.Mux.Handle("DELETE /api/favorites/{productId}", httpx.Chain(http.HandlerFunc(h.HandleRemove), r.authn()))
}

func (r *Router) registerOrders() {
	h := &OrdersHandler{OrderService: r.OrderService}

	r.Mux.Handle("POST /api/orders", httpx.Chain(http.HandlerFunc(h.HandleCreate), r.authn()))
	r.Mux.Handle("GET /api/orders/my-orders", httpx.Chain(http.HandlerFunc(h.HandleListMine), r.authn()))
	r.Mux.Handle("GET /api/orders",
		httpx.Chain(http.HandlerFunc(h.HandleList), r.authn(), r.adminOnly()))
}

func (r *Router) registerContact() {
	h := &ContactHandler{ContactService: r.ContactService}
	r.Mux.Handle("POST /api/contact", h)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.Guard, r.MailMode))
	r.Mux.Handle("GET /metrics", r.metrics.Handler())
}

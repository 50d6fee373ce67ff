package http_test

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	storehttp "github.com/aussiebroadwan/storefront/internal/storefront/http"
	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
	"github.com/aussiebroadwan/storefront/internal/storefront/store/drivers/sqlite"
	"github.com/aussiebroadwan/storefront/pkg/firebasex"
	"github.com/aussiebroadwan/storefront/pkg/mailx"
	"github.com/aussiebroadwan/storefront/pkg/obs"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

const (
	testProject    = "storefront-test"
	frontendOrigin = "http://shop.test"
)

var (
	rsaOnce sync.Once
	rsaKey  *rsa.PrivateKey
)

func testRSAKey() *rsa.PrivateKey {
	rsaOnce.Do(func() {
		k, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic(err)
		}
		rsaKey = k
	})
	return rsaKey
}

type recordingMailer struct {
	mu   sync.Mutex
	msgs []mailx.Message
}

func (m *recordingMailer) Enqueue(msg mailx.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs = append(m.msgs, msg)
	return nil
}

func (m *recordingMailer) sent() []mailx.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mailx.Message(nil), m.msgs...)
}

type testEnv struct {
	store     store.Store
	router    *storehttp.Router
	server    *httptest.Server
	mail      *recordingMailer
	uploadDir string
}

// newEnv serves a fully wired router over seeded in-memory storage.
func newEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, (&service.SeedService{Store: st}).SeedDemoData(ctx))

	fed, err := firebasex.New(ctx,
		firebasex.ServiceAccount{ProjectID: testProject},
		firebasex.WithKeySet(&oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{testRSAKey().Public()}}),
	)
	require.NoError(t, err)

	creds := &service.CredentialVerifier{Store: st, Federated: fed, Timeout: time.Second}
	sessions := &service.SessionIssuer{Secret: []byte("test-secret"), Issuer: "storefront-test"}
	mail := &recordingMailer{}

	r := storehttp.NewRouter("test", st, obs.NewMetrics("test"), slogx.Discard())
	r.UploadDir = t.TempDir()
	r.AllowedOrigins = []string{frontendOrigin}
	r.Guard = &service.AccessGuard{Credentials: creds, Sessions: sessions, Store: st}
	r.IdentityService = &service.IdentityService{
		Store:       st,
		Credentials: creds,
		Sessions:    sessions,
		Mail:        mail,
		FrontendURL: frontendOrigin,
	}
	r.CatalogService = &service.CatalogService{Store: st}
	r.CartService = &service.CartService{Store: st}
	r.FavoriteService = &service.FavoriteService{Store: st}
	r.OrderService = &service.OrderService{Store: st}
	r.ContactService = &service.ContactService{Mail: mail, Mailbox: "shop@example.com"}
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testEnv{store: st, router: r, server: srv, mail: mail, uploadDir: r.UploadDir}
}

// client returns a fresh client with its own cookie jar.
func (e *testEnv) client() *shopsdk.Client {
	return shopsdk.NewClient(e.server.URL)
}

// login returns a client holding a session for one of the seeded accounts.
func (e *testEnv) login(t *testing.T, email string) *shopsdk.Client {
	t.Helper()
	c := e.client()
	_, err := c.Login(context.Background(), email, service.DemoPassword)
	require.NoError(t, err)
	return c
}

// serve runs req through the router without a network round trip.
func (e *testEnv) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func requireAPIError(t *testing.T, err error, code int, msg string) {
	t.Helper()
	var apiErr *shopsdk.APIError
	require.True(t, errors.As(err, &apiErr), "want *shopsdk.APIError, got %v", err)
	require.Equal(t, code, apiErr.StatusCode)
	require.Equal(t, msg, apiErr.Message)
}

func decodeFailure(t *testing.T, rec *httptest.ResponseRecorder) shopsdk.APIError {
	t.Helper()
	var body shopsdk.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// federatedToken signs a provider ID token for subject.
func federatedToken(t *testing.T, subject, email string) string {
	t.Helper()
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"iss":   firebasex.Issuer(testProject),
		"aud":   testProject,
		"sub":   subject,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
		"name":  "Grace Hopper",
		"email": email,
	})
	tok.Header["kid"] = "test"
	s, err := tok.SignedString(testRSAKey())
	require.NoError(t, err)
	return s
}

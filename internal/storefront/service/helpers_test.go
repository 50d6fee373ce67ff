package service

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"sync"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
	"github.com/aussiebroadwan/storefront/internal/storefront/store/drivers/sqlite"
	"github.com/aussiebroadwan/storefront/pkg/cryptox"
	"github.com/aussiebroadwan/storefront/pkg/firebasex"
	"github.com/aussiebroadwan/storefront/pkg/mailx"
)

const (
	testProject = "storefront-test"
	testIssuer  = "storefront-test-issuer"
)

var (
	rsaOnce sync.Once
	rsaKey  *rsa.PrivateKey
)

func testRSAKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
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
	err  error
}

func (m *recordingMailer) Enqueue(msg mailx.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.msgs = append(m.msgs, msg)
	return nil
}

func (m *recordingMailer) sent() []mailx.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mailx.Message(nil), m.msgs...)
}

type fixture struct {
	store    store.Store
	creds    *CredentialVerifier
	sessions *SessionIssuer
	guard    *AccessGuard
	identity *IdentityService
	mail     *recordingMailer
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
	return st
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := newTestStore(t)

	fed, err := firebasex.New(context.Background(),
		firebasex.ServiceAccount{ProjectID: testProject},
		firebasex.WithKeySet(&oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{testRSAKey(t).Public()}}),
	)
	require.NoError(t, err)

	f := &fixture{
		store: st,
		creds: &CredentialVerifier{Store: st, Federated: fed, Timeout: time.Second},
		sessions: &SessionIssuer{
			Secret: []byte("test-secret"),
			Issuer: testIssuer,
		},
		mail: &recordingMailer{},
	}
	f.guard = &AccessGuard{Credentials: f.creds, Sessions: f.sessions, Store: st}
	f.identity = &IdentityService{
		Store:       st,
		Credentials: f.creds,
		Sessions:    f.sessions,
		Mail:        f.mail,
		FrontendURL: "http://shop.test/",
	}
	return f
}

// createPasswordIdentity stores a password account directly.
func (f *fixture) createPasswordIdentity(t *testing.T, email, password string, role domain.Role) domain.Identity {
	t.Helper()
	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)
	i, err := f.store.Identities().Create(context.Background(), domain.Identity{
		FirstName:  "Test",
		LastName:   "Account",
		Email:      email,
		SecretHash: hash,
		Role:       role,
	})
	require.NoError(t, err)
	return i
}

// federatedToken signs a provider ID token for subject.
func federatedToken(t *testing.T, subject, name, email, picture string) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   firebasex.Issuer(testProject),
		"aud":   testProject,
		"sub":   subject,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
		"email": email,
	}
	if name != "" {
		claims["name"] = name
	}
	if picture != "" {
		claims["picture"] = picture
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tok.Header["kid"] = "test"
	s, err := tok.SignedString(testRSAKey(t))
	require.NoError(t, err)
	return s
}

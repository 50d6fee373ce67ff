package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/pkg/jwtx"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

func TestGuardRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, role := range []domain.Role{domain.RoleUser, domain.RoleAdmin} {
		t.Run(string(role), func(t *testing.T) {
			i := f.createPasswordIdentity(t, string(role)+"@example.com", "secret1", role)
			token, expires, err := f.sessions.IssueBearerToken(i)
			require.NoError(t, err)
			require.WithinDuration(t, time.Now().Add(jwtx.SessionTTL), expires, time.Minute)

			authed, err := f.guard.Authenticate(ctx, token)
			require.NoError(t, err)

			p, ok := domain.PrincipalFromContext(authed)
			require.True(t, ok)
			require.Equal(t, i.ID, p.IdentityID)
			require.Equal(t, i.Email, p.Email)
			require.Equal(t, role, p.Role)
			require.NotSame(t, slogx.FromContext(ctx), slogx.FromContext(authed))

			got, ok := domain.PrincipalRole(authed)
			require.True(t, ok)
			require.Equal(t, string(role), got)
		})
	}
}

func TestGuardClassify(t *testing.T) {
	f := newFixture(t)
	i := f.createPasswordIdentity(t, "a@example.com", "secret1", domain.RoleUser)

	local, _, err := f.sessions.IssueBearerToken(i)
	require.NoError(t, err)
	cred, err := f.guard.Classify(local)
	require.NoError(t, err)
	require.IsType(t, domain.CredentialLocal{}, cred)

	fed := federatedToken(t, "uid-1", "A B", "a@b.com", "")
	cred, err = f.guard.Classify(fed)
	require.NoError(t, err)
	require.IsType(t, domain.CredentialFederated{}, cred)
	require.Equal(t, fed, cred.Raw())

	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"iss": "someone-else"}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = f.guard.Classify(foreign)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = f.guard.Classify("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestGuardRejects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	i := f.createPasswordIdentity(t, "a@example.com", "secret1", domain.RoleUser)

	t.Run("wrong secret", func(t *testing.T) {
		other := &SessionIssuer{Secret: []byte("other-secret"), Issuer: testIssuer}
		tok, _, err := other.IssueBearerToken(i)
		require.NoError(t, err)
		_, err = f.guard.Resolve(ctx, tok)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		past := &SessionIssuer{
			Secret: f.sessions.Secret,
			Issuer: testIssuer,
			Now:    func() time.Time { return time.Now().Add(-jwtx.SessionTTL - time.Hour) },
		}
		tok, _, err := past.IssueBearerToken(i)
		require.NoError(t, err)
		_, err = f.guard.Resolve(ctx, tok)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("legacy token without issuer", func(t *testing.T) {
		claims := jwtx.NewSessionClaims(i.ID, i.Email, "USER", "", time.Hour, time.Now())
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(f.sessions.Secret)
		require.NoError(t, err)
		p, err := f.guard.Resolve(ctx, tok)
		require.NoError(t, err)
		require.Equal(t, i.ID, p.IdentityID)
	})

	t.Run("federated caller without identity", func(t *testing.T) {
		_, err := f.guard.Resolve(ctx, federatedToken(t, "uid-unknown", "A B", "x@example.com", ""))
		require.ErrorIs(t, err, ErrIdentityNotFound)
	})

	t.Run("federated token while provider disabled", func(t *testing.T) {
		g := &AccessGuard{Credentials: &CredentialVerifier{Store: f.store}, Sessions: f.sessions, Store: f.store}
		_, err := g.Resolve(ctx, federatedToken(t, "uid-1", "A B", "x@example.com", ""))
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("authenticate leaves context untouched on failure", func(t *testing.T) {
		got, err := f.guard.Authenticate(ctx, "garbage")
		require.ErrorIs(t, err, ErrInvalidToken)
		_, ok := domain.PrincipalFromContext(got)
		require.False(t, ok)
	})
}

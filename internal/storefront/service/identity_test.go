package service

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/pkg/jwtx"
)

func TestVerifyPassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	want := f.createPasswordIdentity(t, "ada@example.com", "correct horse", domain.RoleUser)

	got, err := f.creds.VerifyPassword(ctx, "ada@example.com", "correct horse")
	require.NoError(t, err)
	require.Equal(t, want.ID, got.ID)

	_, err = f.creds.VerifyPassword(ctx, "ada@example.com", "wrong horse")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.creds.VerifyPassword(ctx, "nobody@example.com", "correct horse")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	reg, err := f.identity.Register(ctx, RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "  Ada@Example.com ",
		Password:  "secret1",
	})
	require.NoError(t, err)
	require.Equal(t, domain.RoleUser, reg.Identity.Role)
	require.Equal(t, "ada@example.com", reg.Identity.Email)
	require.Equal(t, domain.DefaultAvatar, reg.Identity.Avatar)
	require.Equal(t, jwtx.SessionTTL, reg.TTL)
	require.NotEmpty(t, reg.Token)

	login, err := f.identity.Login(ctx, "ada@example.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, reg.Identity.ID, login.Identity.ID)

	p, err := f.guard.Resolve(ctx, login.Token)
	require.NoError(t, err)
	require.Equal(t, reg.Identity.ID, p.IdentityID)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := f.identity.Register(ctx, RegisterInput{
			FirstName: "Other", LastName: "Person", Email: "ada@example.com", Password: "secret2",
		})
		require.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := f.identity.Register(ctx, RegisterInput{Email: "not-an-email", Password: "123"})
		require.ErrorIs(t, err, ErrValidation)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		require.Equal(t, "First name is required", ve.Fields["firstName"])
		require.Equal(t, "Last name is required", ve.Fields["lastName"])
		require.Equal(t, "Must be a valid email address", ve.Fields["email"])
		require.Equal(t, "Password must be at least 6 characters long", ve.Fields["password"])
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.identity.Login(ctx, "ada@example.com", "secret2")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("login validation", func(t *testing.T) {
		_, err := f.identity.Login(ctx, "", "")
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestFederatedLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run("creates identity on first login", func(t *testing.T) {
		tok := federatedToken(t, "uid-1", "Grace Brewster Hopper", "grace@example.com", "https://img.test/g.png")
		s, err := f.identity.FederatedLogin(ctx, tok)
		require.NoError(t, err)
		require.Equal(t, tok, s.Token)
		require.Equal(t, time.Hour, s.TTL)
		require.True(t, s.Identity.Federated)
		require.Equal(t, "Grace", s.Identity.FirstName)
		require.Equal(t, "Brewster Hopper", s.Identity.LastName)
		require.Equal(t, "https://img.test/g.png", s.Identity.Avatar)
		require.Equal(t, domain.RoleUser, s.Identity.Role)

		p, err := f.guard.Resolve(ctx, tok)
		require.NoError(t, err)
		require.Equal(t, s.Identity.ID, p.IdentityID)
		require.Equal(t, "uid-1", p.ExternalID)
	})

	t.Run("refreshes profile and keeps values the token lacks", func(t *testing.T) {
		s, err := f.identity.FederatedLogin(ctx, federatedToken(t, "uid-1", "Amazing Grace", "grace@example.com", ""))
		require.NoError(t, err)
		require.Equal(t, "Amazing", s.Identity.FirstName)
		require.Equal(t, "Grace", s.Identity.LastName)
		require.Equal(t, "https://img.test/g.png", s.Identity.Avatar)
	})

	t.Run("defaults for a nameless account", func(t *testing.T) {
		s, err := f.identity.FederatedLogin(ctx, federatedToken(t, "uid-2", "", "anon@example.com", ""))
		require.NoError(t, err)
		require.Equal(t, "User", s.Identity.FirstName)
		require.Equal(t, "Name", s.Identity.LastName)
		require.Equal(t, domain.DefaultAvatar, s.Identity.Avatar)
	})

	t.Run("email of a password account", func(t *testing.T) {
		f.createPasswordIdentity(t, "taken@example.com", "secret1", domain.RoleUser)
		_, err := f.identity.FederatedLogin(ctx, federatedToken(t, "uid-3", "X Y", "taken@example.com", ""))
		require.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := f.identity.FederatedLogin(ctx, "  ")
		require.ErrorIs(t, err, ErrMissingIDToken)
	})

	t.Run("bad token", func(t *testing.T) {
		_, err := f.identity.FederatedLogin(ctx, "garbage")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("disabled provider", func(t *testing.T) {
		creds := &CredentialVerifier{Store: f.store}
		svc := &IdentityService{Store: f.store, Credentials: creds, Sessions: f.sessions, Mail: f.mail}
		_, err := svc.FederatedLogin(ctx, federatedToken(t, "uid-1", "", "grace@example.com", ""))
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestForgotPassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ada := f.createPasswordIdentity(t, "ada@example.com", "secret1", domain.RoleUser)
	_, err := f.identity.FederatedLogin(ctx, federatedToken(t, "uid-9", "Fed User", "fed@example.com", ""))
	require.NoError(t, err)

	require.NoError(t, f.identity.ForgotPassword(ctx, "ada@example.com"))

	sent := f.mail.sent()
	require.Len(t, sent, 1)
	require.Equal(t, []string{"ada@example.com"}, sent[0].To)
	require.Equal(t, "Password Reset Request", sent[0].Subject)

	link := extractLink(t, sent[0].Body)
	require.Equal(t, "/reset-password.html", link.Path)
	require.Equal(t, "shop.test", link.Host)
	require.Equal(t, strconv.FormatInt(ada.ID, 10), link.Query().Get("id"))
	require.NoError(t, f.sessions.VerifyPasswordResetToken(ada, link.Query().Get("token")))

	require.ErrorIs(t, f.identity.ForgotPassword(ctx, "fed@example.com"), ErrIdentityNotFound)
	require.ErrorIs(t, f.identity.ForgotPassword(ctx, "ghost@example.com"), ErrIdentityNotFound)
	require.Len(t, f.mail.sent(), 1)
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ada := f.createPasswordIdentity(t, "ada@example.com", "secret1", domain.RoleUser)

	token, err := f.sessions.IssuePasswordResetToken(ada)
	require.NoError(t, err)

	t.Run("unknown identity", func(t *testing.T) {
		require.ErrorIs(t, f.identity.ResetPassword(ctx, token, 999, "newpass1"), ErrIdentityNotFound)
	})

	t.Run("short password", func(t *testing.T) {
		require.ErrorIs(t, f.identity.ResetPassword(ctx, token, ada.ID, "123"), ErrValidation)
	})

	t.Run("session token is not a reset token", func(t *testing.T) {
		session, _, err := f.sessions.IssueBearerToken(ada)
		require.NoError(t, err)
		require.ErrorIs(t, f.identity.ResetPassword(ctx, session, ada.ID, "newpass1"), ErrInvalidToken)
	})

	t.Run("token is single use", func(t *testing.T) {
		require.NoError(t, f.identity.ResetPassword(ctx, token, ada.ID, "newpass1"))

		_, err := f.identity.Login(ctx, "ada@example.com", "newpass1")
		require.NoError(t, err)
		_, err = f.identity.Login(ctx, "ada@example.com", "secret1")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		require.ErrorIs(t, f.identity.ResetPassword(ctx, token, ada.ID, "another1"), ErrInvalidToken)
	})
}

func TestResetTokenBinding(t *testing.T) {
	f := newFixture(t)
	ada := f.createPasswordIdentity(t, "ada@example.com", "secret1", domain.RoleUser)
	bob := f.createPasswordIdentity(t, "bob@example.com", "secret1", domain.RoleUser)

	token, err := f.sessions.IssuePasswordResetToken(ada)
	require.NoError(t, err)
	require.NoError(t, f.sessions.VerifyPasswordResetToken(ada, token))

	t.Run("other identity", func(t *testing.T) {
		require.ErrorIs(t, f.sessions.VerifyPasswordResetToken(bob, token), ErrInvalidToken)
	})

	t.Run("changed hash", func(t *testing.T) {
		changed := ada
		changed.SecretHash += "x"
		require.ErrorIs(t, f.sessions.VerifyPasswordResetToken(changed, token), ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		later := &SessionIssuer{
			Secret: f.sessions.Secret,
			Issuer: f.sessions.Issuer,
			Now:    func() time.Time { return time.Now().Add(jwtx.ResetTTL + time.Minute) },
		}
		require.ErrorIs(t, later.VerifyPasswordResetToken(ada, token), ErrInvalidToken)
	})

	t.Run("reset token is not a session", func(t *testing.T) {
		_, err := f.sessions.VerifyBearerToken(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func extractLink(t *testing.T, body string) *url.URL {
	t.Helper()
	for _, field := range strings.Fields(body) {
		if strings.HasPrefix(field, "http") {
			u, err := url.Parse(field)
			require.NoError(t, err)
			return u
		}
	}
	t.Fatalf("no link in %q", body)
	return nil
}

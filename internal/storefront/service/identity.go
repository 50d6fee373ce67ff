package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
	"github.com/aussiebroadwan/storefront/pkg/cryptox"
	"github.com/aussiebroadwan/storefront/pkg/mailx"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

// MinPasswordLength applies to registration and password resets.
const MinPasswordLength = 6

// FederatedSessionTTL is how long a federated ID token is kept in the
// session cookie. Provider tokens expire after an hour.
const FederatedSessionTTL = time.Hour

// Session is an authenticated login, ready to be bound to a cookie.
type Session struct {
	Identity domain.Identity
	Token    string
	TTL      time.Duration
}

// RegisterInput is a self-service sign-up request. Avatar is the stored file
// name of an uploaded picture, if any.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Avatar    string
}

type IdentityService struct {
	Store       store.Store
	Credentials *CredentialVerifier
	Sessions    *SessionIssuer
	Mail        Mailer
	FrontendURL string
}

// NormalizeEmail trims and lower-cases an address before any lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var emailRules = []validation.Rule{
	validation.Required.Error("Email is required"),
	is.EmailFormat.Error("Must be a valid email address"),
}

var passwordLength = validation.Length(MinPasswordLength, 0).Error("Password must be at least 6 characters long")

// Register creates a USER password identity and signs a session for it.
func (s *IdentityService) Register(ctx context.Context, in RegisterInput) (Session, error) {
	l := slogx.FromContext(ctx)

	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = NormalizeEmail(in.Email)

	err := checkFields(validation.Errors{
		"firstName": validation.Validate(in.FirstName, validation.Required.Error("First name is required")),
		"lastName":  validation.Validate(in.LastName, validation.Required.Error("Last name is required")),
		"email":     validation.Validate(in.Email, emailRules...),
		"password": validation.Validate(in.Password,
			validation.Required.Error("Password is required"),
			passwordLength,
		),
	})
	if err != nil {
		return Session{}, err
	}

	if _, err := s.Store.Identities().GetByEmail(ctx, in.Email); err == nil {
		return Session{}, ErrEmailExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return Session{}, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		if errors.Is(err, cryptox.ErrPasswordTooLong) {
			return Session{}, &ValidationError{Fields: map[string]string{"password": "Password is too long"}}
		}
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	identity, err := s.Store.Identities().Create(ctx, domain.Identity{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		SecretHash: hash,
		Role:       domain.RoleUser,
		Avatar:     in.Avatar,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return Session{}, ErrEmailExists
		}
		return Session{}, fmt.Errorf("create identity: %w", err)
	}

	l.Info("identity registered", slog.Int64("identity_id", identity.ID))
	return s.issue(identity)
}

// Login verifies email and password and signs a session.
func (s *IdentityService) Login(ctx context.Context, email, password string) (Session, error) {
	email = NormalizeEmail(email)

	err := checkFields(validation.Errors{
		"email":    validation.Validate(email, emailRules...),
		"password": validation.Validate(password, validation.Required.Error("Password is required")),
	})
	if err != nil {
		return Session{}, err
	}

	identity, err := s.Credentials.VerifyPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			slogx.FromContext(ctx).Info("login failed", slog.String("email", email))
		}
		return Session{}, err
	}
	return s.issue(identity)
}

// FederatedLogin verifies a provider ID token, then finds or creates the
// matching identity. The session token is the ID token itself.
func (s *IdentityService) FederatedLogin(ctx context.Context, idToken string) (Session, error) {
	l := slogx.FromContext(ctx)

	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return Session{}, ErrMissingIDToken
	}

	claims, err := s.Credentials.VerifyFederatedToken(ctx, idToken)
	if err != nil {
		return Session{}, err
	}

	first, last := splitDisplayName(claims.Name)
	avatar := claims.Picture

	identity, err := s.Store.Identities().GetByExternalID(ctx, claims.Subject)
	switch {
	case err == nil:
		if first == "" {
			first = identity.FirstName
		}
		if last == "" {
			last = identity.LastName
		}
		if avatar == "" {
			avatar = identity.Avatar
		}
		if err := s.Store.Identities().UpdateProfile(ctx, identity.ID, first, last, avatar); err != nil {
			return Session{}, fmt.Errorf("refresh federated profile: %w", err)
		}
		identity.FirstName, identity.LastName, identity.Avatar = first, last, avatar

	case errors.Is(err, store.ErrNotFound):
		if first == "" {
			first = "User"
		}
		if last == "" {
			last = "Name"
		}
		identity, err = s.Store.Identities().Create(ctx, domain.Identity{
			ExternalID: claims.Subject,
			FirstName:  first,
			LastName:   last,
			Email:      NormalizeEmail(claims.Email),
			Role:       domain.RoleUser,
			Avatar:     avatar,
			Federated:  true,
		})
		if err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				l.Warn("federated email collides with existing account", slog.String("subject", claims.Subject))
				return Session{}, ErrEmailExists
			}
			return Session{}, fmt.Errorf("create federated identity: %w", err)
		}
		l.Info("federated identity created", slog.Int64("identity_id", identity.ID))

	default:
		return Session{}, fmt.Errorf("lookup federated identity: %w", err)
	}

	return Session{Identity: identity, Token: idToken, TTL: FederatedSessionTTL}, nil
}

// ForgotPassword mails a reset link to a password identity.
func (s *IdentityService) ForgotPassword(ctx context.Context, email string) error {
	l := slogx.FromContext(ctx)

	identity, err := s.Store.Identities().GetPasswordIdentityByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrIdentityNotFound
		}
		return fmt.Errorf("lookup identity: %w", err)
	}

	token, err := s.Sessions.IssuePasswordResetToken(identity)
	if err != nil {
		return err
	}

	link := s.resetLink(token, identity.ID)
	err = s.Mail.Enqueue(mailx.Message{
		To:      []string{identity.Email},
		Subject: "Password Reset Request",
		Body: "You requested a password reset.\n\n" +
			"Open the link below to choose a new password. It expires in 15 minutes.\n\n" +
			link + "\n\n" +
			"If you did not request this, you can ignore this email.\n",
	})
	if err != nil {
		return fmt.Errorf("queue reset mail: %w", err)
	}

	l.Info("password reset requested", slog.Int64("identity_id", identity.ID))
	return nil
}

// ResetPassword replaces the password of identity id, given a reset token
// issued against its current password.
func (s *IdentityService) ResetPassword(ctx context.Context, token string, id int64, password string) error {
	identity, err := s.Store.Identities().GetPasswordIdentityByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrIdentityNotFound
		}
		return fmt.Errorf("lookup identity: %w", err)
	}

	err = checkFields(validation.Errors{
		"password": validation.Validate(password,
			validation.Required.Error("Password is required"),
			passwordLength,
		),
	})
	if err != nil {
		return err
	}

	if err := s.Sessions.VerifyPasswordResetToken(identity, token); err != nil {
		return err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		if errors.Is(err, cryptox.ErrPasswordTooLong) {
			return &ValidationError{Fields: map[string]string{"password": "Password is too long"}}
		}
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.Store.Identities().UpdateSecretHash(ctx, identity.ID, hash); err != nil {
		return fmt.Errorf("store password: %w", err)
	}

	slogx.FromContext(ctx).Info("password reset", slog.Int64("identity_id", identity.ID))
	return nil
}

func (s *IdentityService) issue(identity domain.Identity) (Session, error) {
	token, _, err := s.Sessions.IssueBearerToken(identity)
	if err != nil {
		return Session{}, err
	}
	return Session{Identity: identity, Token: token, TTL: s.Sessions.sessionTTL()}, nil
}

func (s *IdentityService) resetLink(token string, id int64) string {
	q := url.Values{}
	q.Set("token", token)
	q.Set("id", strconv.FormatInt(id, 10))
	return strings.TrimRight(s.FrontendURL, "/") + "/reset-password.html?" + q.Encode()
}

// splitDisplayName splits "Ada King Lovelace" into "Ada" and "King Lovelace".
func splitDisplayName(name string) (string, string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}

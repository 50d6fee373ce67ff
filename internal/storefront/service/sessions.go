package service

import (
	"fmt"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/pkg/jwtx"
)

// SessionIssuer mints and checks the tokens this service signs itself:
// bearer session tokens and password reset tokens.
type SessionIssuer struct {
	Secret     []byte
	Issuer     string
	SessionTTL time.Duration
	ResetTTL   time.Duration

	// Now overrides the clock, for tests.
	Now func() time.Time
}

func (s *SessionIssuer) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *SessionIssuer) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return jwtx.SessionTTL
}

func (s *SessionIssuer) resetTTL() time.Duration {
	if s.ResetTTL > 0 {
		return s.ResetTTL
	}
	return jwtx.ResetTTL
}

// IssueBearerToken signs a session token for identity.
func (s *SessionIssuer) IssueBearerToken(identity domain.Identity) (string, time.Time, error) {
	signer, err := jwtx.NewSignerHS256(s.Secret)
	if err != nil {
		return "", time.Time{}, err
	}

	claims := jwtx.NewSessionClaims(identity.ID, identity.Email, string(identity.Role), s.Issuer, s.sessionTTL(), s.now())
	token, err := signer.Sign(claims)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return token, claims.ExpiresAt.Time, nil
}

// VerifyBearerToken checks signature and expiry of a session token. Tokens
// without an issuer are accepted; tokens naming another issuer are not.
func (s *SessionIssuer) VerifyBearerToken(token string) (jwtx.Claims, error) {
	v := jwtx.NewVerifierHS256(s.Secret, jwtx.VerifyOptions{Now: s.Now})
	claims, err := v.Verify(token)
	if err != nil {
		return jwtx.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Issuer != "" && claims.Issuer != s.Issuer {
		return jwtx.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, jwtx.ErrIssuer)
	}
	if claims.UserID <= 0 {
		return jwtx.Claims{}, fmt.Errorf("%w: missing userId", ErrInvalidToken)
	}
	return claims, nil
}

// IssuePasswordResetToken signs a short-lived reset token with a key bound to
// the identity's current password hash, so changing the password revokes it.
func (s *SessionIssuer) IssuePasswordResetToken(identity domain.Identity) (string, error) {
	signer, err := jwtx.NewSignerHS256(s.resetKey(identity))
	if err != nil {
		return "", err
	}

	claims := jwtx.NewResetClaims(identity.ID, identity.Email, s.Issuer, s.resetTTL(), s.now())
	token, err := signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("sign reset token: %w", err)
	}
	return token, nil
}

// VerifyPasswordResetToken checks token against identity's current hash.
func (s *SessionIssuer) VerifyPasswordResetToken(identity domain.Identity, token string) error {
	v := jwtx.NewVerifierHS256(s.resetKey(identity), jwtx.VerifyOptions{
		Issuer:   s.Issuer,
		Audience: jwtx.ResetAudience,
		Now:      s.Now,
	})
	claims, err := v.Verify(token)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.UserID != identity.ID {
		return fmt.Errorf("%w: token issued for another identity", ErrInvalidToken)
	}
	return nil
}

func (s *SessionIssuer) resetKey(identity domain.Identity) []byte {
	key := make([]byte, 0, len(s.Secret)+len(identity.SecretHash))
	key = append(key, s.Secret...)
	return append(key, identity.SecretHash...)
}

package jwtx

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aussiebroadwan/storefront/pkg/idx"
)

// Token lifetimes for the two kinds of locally signed tokens.
const (
	// SessionTTL is the lifetime of a password-login bearer token.
	SessionTTL = 30 * 24 * time.Hour

	// ResetTTL is the lifetime of a password reset token.
	ResetTTL = 15 * time.Minute
)

// ResetAudience marks password reset tokens so they are never mistaken for
// session tokens even if keys were ever shared.
const ResetAudience = "password_reset"

// Claims are the claims carried by locally signed tokens. Field names match
// what existing browser clients already decode.
type Claims struct {
	jwt.RegisteredClaims

	Email  string `json:"email"`
	UserID int64  `json:"userId"`
	Role   string `json:"role,omitempty"`
}

// NewSessionClaims builds bearer token claims for an identity.
func NewSessionClaims(userID int64, email, role, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: newRegistered(userID, issuer, nil, ttl, now),
		Email:            email,
		UserID:           userID,
		Role:             role,
	}
}

// NewResetClaims builds password reset claims. Role is deliberately absent.
func NewResetClaims(userID int64, email, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: newRegistered(userID, issuer, []string{ResetAudience}, ttl, now),
		Email:            email,
		UserID:           userID,
	}
}

func newRegistered(userID int64, issuer string, audience []string, ttl time.Duration, now time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   formatSubject(userID),
		Audience:  jwt.ClaimStrings(audience),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        idx.NewAt(now).String(),
	}
}

func formatSubject(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

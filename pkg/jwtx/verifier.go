package jwtx

import (
	"errors"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// VerifyOptions captures common expectations used by verifiers.
type VerifyOptions struct {
	// Issuer the token must have (claims.iss). Empty means "don't care".
	Issuer string

	// Audience the token must contain. Empty means the token must NOT carry
	// the reset audience, so reset tokens never pass as sessions.
	Audience string

	// Leeway allows small clock skew when validating exp/nbf/iat.
	Leeway time.Duration

	// Now overrides the clock, for tests.
	Now func() time.Time
}

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrAudience     = errors.New("jwtx: audience mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// HS256Verifier checks HMAC-SHA256 tokens against a shared secret.
type HS256Verifier struct {
	key  []byte
	opts VerifyOptions
}

// NewVerifierHS256 returns a verifier for tokens signed with key.
func NewVerifierHS256(key []byte, opts VerifyOptions) *HS256Verifier {
	return &HS256Verifier{key: append([]byte(nil), key...), opts: opts}
}

func (v *HS256Verifier) Verify(token string) (Claims, error) {
	if len(v.key) == 0 {
		return Claims{}, ErrEmptyKey
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(v.opts.Leeway),
	}
	if v.opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(v.opts.Issuer))
	}
	if v.opts.Audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(v.opts.Audience))
	}
	if v.opts.Now != nil {
		parserOpts = append(parserOpts, jwt.WithTimeFunc(v.opts.Now))
	}

	var c Claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return v.key, nil
	}, parserOpts...)
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	if v.opts.Audience == "" && slices.Contains(c.Audience, ResetAudience) {
		return Claims{}, ErrAudience
	}

	return c, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrIssuer
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return ErrAudience
	default:
		return ErrInvalidClaim
	}
}

// TokenInfo is what can be read from a token without verifying it.
type TokenInfo struct {
	Alg    string
	Issuer string
}

// Inspect decodes the header and issuer of token WITHOUT checking the
// signature. Only use the result to choose a verifier.
func Inspect(token string) (TokenInfo, error) {
	var rc jwt.RegisteredClaims
	parsed, _, err := jwt.NewParser().ParseUnverified(token, &rc)
	if err != nil {
		return TokenInfo{}, ErrMalformed
	}

	alg, _ := parsed.Header["alg"].(string)
	return TokenInfo{Alg: alg, Issuer: rc.Issuer}, nil
}

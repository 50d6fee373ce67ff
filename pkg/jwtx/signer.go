package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrEmptyKey = errors.New("jwtx: empty signing key")

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// HS256Signer signs with a shared secret.
type HS256Signer struct {
	key []byte
}

// NewSignerHS256 creates an HMAC-SHA256 signer. The key is copied.
func NewSignerHS256(key []byte) (*HS256Signer, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	return &HS256Signer{key: append([]byte(nil), key...)}, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

func (s *HS256Signer) Sign(c Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.key)
}

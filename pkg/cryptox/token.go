package cryptox

import (
	"crypto/rand"
	"encoding/base64"
)

// SecretSize is the number of random bytes in a generated signing secret.
const SecretSize = 32

// RandomSecret returns SecretSize random bytes, base64url encoded. Used when
// a development run starts without JWT_SECRET_KEY.
func RandomSecret() string {
	buf := make([]byte, SecretSize)
	// crypto/rand.Read never fails since Go 1.24; it crashes the process instead.
	_, _ = rand.Read(buf)
	return base64.RawURLEncoding.EncodeToString(buf)
}

package cryptox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomSecret(t *testing.T) {
	a := RandomSecret()
	raw, err := base64.RawURLEncoding.DecodeString(a)
	require.NoError(t, err)
	require.Len(t, raw, SecretSize)

	require.NotEqual(t, a, RandomSecret())
}

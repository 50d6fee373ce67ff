package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "secret1"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"bcrypt limit", strings.Repeat("a", MaxPasswordBytes)},
		{"unicode password", "пароль🔒密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(hash, "$2a$"), "expected bcrypt hash, got %q", hash)

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			require.Equal(t, PasswordCost, cost)

			require.NoError(t, VerifyPassword(tt.password, hash))
		})
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", MaxPasswordBytes+1))
	require.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	hash1, err := HashPassword("samepassword")
	require.NoError(t, err)
	hash2, err := HashPassword("samepassword")
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2)
	require.NoError(t, VerifyPassword("samepassword", hash1))
	require.NoError(t, VerifyPassword("samepassword", hash2))
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	for _, wrong := range []string{"wrong-password", "Correct-Password", "correct-password ", "", "correct-passwor"} {
		t.Run(wrong, func(t *testing.T) {
			require.ErrorIs(t, VerifyPassword(wrong, hash), ErrPasswordMismatch)
		})
	}
}

func TestVerifyPassword_InvalidHash(t *testing.T) {
	for _, bad := range []string{"", "plaintext", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"} {
		err := VerifyPassword("anything", bad)
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrPasswordMismatch)
	}
}

func TestBurnPasswordCheck(t *testing.T) {
	// Must not panic and must be callable concurrently.
	done := make(chan struct{})
	for range 4 {
		go func() {
			BurnPasswordCheck("whatever")
			done <- struct{}{}
		}()
	}
	for range 4 {
		<-done
	}
}

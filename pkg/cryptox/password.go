package cryptox

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor used for every stored secret.
const PasswordCost = 10

// MaxPasswordBytes is the longest input bcrypt will accept.
const MaxPasswordBytes = 72

var (
	ErrPasswordMismatch = errors.New("password does not match")
	ErrPasswordTooLong  = errors.New("password exceeds 72 bytes")
)

var (
	dummyOnce sync.Once
	dummyHash []byte
)

// HashPassword returns a salted bcrypt hash of password at PasswordCost.
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares password against a bcrypt hash. A mismatch always
// yields ErrPasswordMismatch; malformed hashes return the bcrypt error.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}

// BurnPasswordCheck performs a comparison against a throwaway hash so that
// a lookup miss costs the same as a wrong password.
func BurnPasswordCheck(password string) {
	dummyOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("storefront-dummy-secret"), PasswordCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

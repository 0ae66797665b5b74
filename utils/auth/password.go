package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password accepted anywhere in the API
const MinPasswordLength = 8

// hashCost is the bcrypt work factor, tuned for interactive login latency
const hashCost = 12

var (
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordMismatch = errors.New("password does not match")
)

// HashPassword generates a bcrypt hash. Passwords below the minimum length
// are rejected here so no caller can hash one by accident.
func HashPassword(password string) (string, error) {
	if !IsPasswordValid(password) {
		return "", ErrPasswordTooShort
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// VerifyPassword checks the password against a stored hash
func VerifyPassword(hashedPassword, password string) error {
	switch err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return err
	}
}

// IsPasswordValid reports whether the password meets the minimum length
func IsPasswordValid(password string) bool {
	return len(password) >= MinPasswordLength
}

package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const passwordCost = 10

// bcrypt reads at most 72 bytes of input.
const maxPasswordBytes = 72

var ErrPasswordTooLong = fmt.Errorf("password must be at most %d bytes", maxPasswordBytes)

func HashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// ComparePasswords reports ErrInvalidCredentials for any mismatch.
func ComparePasswords(hashedPassword, plainPassword string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// GenerateSecureToken returns n random bytes from crypto/rand, hex encoded.
func GenerateSecureToken(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid token length")
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

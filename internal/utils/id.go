package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
)

// GenerateSecureToken returns length random bytes, URL-safe base64 encoded.
// Session ids and OAuth state nonces come from here.
func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("token length must be positive")
	}
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

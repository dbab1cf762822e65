package utils

import (
	"crypto/rand"
	"encoding/base64"
)

const sessionTokenBytes = 32

// GenerateSessionToken returns an opaque, high-entropy credential string drawn
// from a cryptographically secure random source.
func GenerateSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateNonce returns an unguessable single-use token binding a login
// initiation to its provider callback
func GenerateNonce() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

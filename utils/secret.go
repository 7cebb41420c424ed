package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateSecret creates a random URL-safe secret of roughly the requested
// length, used for webhook signing secrets.
func GenerateSecret(length int) string {
	if length < 16 {
		length = 16
	}

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the process is in serious trouble;
		// an empty secret just leaves the webhook unsigned.
		return ""
	}

	secret := base64.RawURLEncoding.EncodeToString(b)
	if len(secret) > length {
		secret = secret[:length]
	}
	return secret
}

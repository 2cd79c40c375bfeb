package accesskey

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/koustreak/miniokit/internal/errs"
)

// Credential lengths follow the AWS-style convention MinIO uses:
// 20-character key IDs, 40-character secrets.
const (
	accessKeyIDLength = 20
	secretKeyLength   = 40
)

// generateAccessKeyID returns a random URL-safe key identifier.
func generateAccessKeyID() (string, error) {
	return randomToken(accessKeyIDLength)
}

// generateSecretKey returns a random URL-safe secret.
func generateSecretKey() (string, error) {
	return randomToken(secretKeyLength)
}

// randomToken draws from crypto/rand and base64url-encodes, so every
// character carries full entropy with no modulo bias. n must be a
// multiple of 4 for the encoding to land exactly on length n.
func randomToken(n int) (string, error) {
	raw := make([]byte, n/4*3)
	if _, err := rand.Read(raw); err != nil {
		return "", errs.Wrap(errs.ErrKindUnknown, "reading secure random source", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

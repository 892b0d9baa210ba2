package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// tokenRandomBytes gives enough entropy to make guessing infeasible.
const tokenRandomBytes = 32

// Generator produces URL-safe opaque token values for Telegram deep links.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns a fresh token drawn from crypto/rand. The value is
// base64url without padding so it survives a t.me start parameter unescaped.
func (g *Generator) Generate() (string, error) {
	randomBytes := make([]byte, tokenRandomBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(randomBytes), nil
}

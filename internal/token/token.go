// Package token issues the single-use confirm tokens embedded in double
// opt-in links.
package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// 32 bytes of randomness, 256 bits of entropy. Collisions between live
// tokens are left to probability, there is no uniqueness lookup.
const byteLen = 32

// New returns a fresh confirm token, URL-safe without further escaping.
func New() (string, error) {
	buf := make([]byte, byteLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate confirm token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

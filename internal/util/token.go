package util

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const tokenBytes = 16 // 128 bits of entropy

// NewToken mints an opaque bearer token. The value carries no claims;
// it is only meaningful as a key into the auth service's token store.
func NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

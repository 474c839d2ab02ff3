package idgen

import (
	"crypto/rand"
	"encoding/hex"
)

// RequestPrefix tags ids sent in the X-Request-ID header.
const RequestPrefix = "req-"

func New(prefix string) string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	return prefix + hex.EncodeToString(bytes)
}

// Package id is the canonical source for identifier generation across the
// mocksmith codebase.
//
// Three formats are provided for different uses:
//
//   - UUID: standard UUID v4 for mock and endpoint identifiers
//   - Base36: short lowercase alphanumeric ids used for generated resource ids
//   - Short: 16-character hex ids for user-facing contexts where brevity matters
package id

import (
	"crypto/rand"
	"encoding/hex"
	mathrand "math/rand/v2"

	"github.com/google/uuid"
)

// UUID generates a UUID v4 string.
func UUID() string {
	return uuid.NewString()
}

// base36Alphabet holds the digits of a base-36 id, lowercase.
const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Base36 generates a random base-36 string of length n.
// Resource ids use this format when the client does not supply one.
func Base36(n int) string {
	if n <= 0 {
		n = 12
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = base36Alphabet[mathrand.IntN(len(base36Alphabet))]
	}
	return string(b)
}

// Short generates a short random hex ID (16 characters).
func Short() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

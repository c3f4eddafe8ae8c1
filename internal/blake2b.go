// Package internal provides helpers built on golang.org/x/crypto.
package internal

import (
	"golang.org/x/crypto/blake2b"
)

// SaltSize is the length of a BLAKE-512 salt in bytes.
const SaltSize = 32

// DeriveSalt maps an arbitrary-length domain label to a 32-byte salt
// using unkeyed BLAKE2b-256.
//
// Distinct labels give independent salts, so callers can separate hash
// domains ("commitments", "integrity/v2", ...) without managing raw
// 32-byte values.
func DeriveSalt(label []byte) [SaltSize]byte {
	return blake2b.Sum256(label)
}

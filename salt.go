package blake512

import (
	"github.com/opd-ai/go-blake512/internal"
)

// SaltFromLabel derives a 32-byte salt from a human-readable domain label,
// for use with NewSalted or SetSalt. The derivation is BLAKE2b-256 of the
// label, so the same label always yields the same salt.
func SaltFromLabel(label string) []byte {
	s := internal.DeriveSalt([]byte(label))
	return s[:]
}

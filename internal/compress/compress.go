// Package compress implements the BLAKE-512 compression function.
//
// The compression function maps a 512-bit chaining value, a 1024-bit
// message block, a 256-bit salt, and the message bit counter to a new
// chaining value. It is shared by the 512-bit and 384-bit variants; the
// two differ only in their initial values and padding, which are handled
// by the caller.
package compress

import "encoding/binary"

// Compress mixes one 128-byte block into the chaining value h and returns
// the new chaining value.
//
// Parameters:
//   - h: the current chaining value
//   - block: the message block, decoded as sixteen big-endian words
//   - salt: the four salt words (all zero when unsalted)
//   - counter: number of message bits hashed so far, including this block
//   - skipCounter: if true, the counter is not injected into the state
//
// Algorithm:
//  1. v[0..7] = h, v[8..11] = salt XOR u[0..3]
//  2. v[12..15] = counter words XOR u[4..7], or u[4..7] if skipCounter
//  3. Apply 16 rounds of column + diagonal G mixing
//  4. h'[i] = h[i] XOR salt[i mod 4] XOR v[i] XOR v[i+8]
//
// The counter is 128 bits wide in BLAKE-512; its high word is always
// zero here, so v[14] and v[15] carry only the constants.
func Compress(h [8]uint64, block *[BlockSize]byte, salt [4]uint64, counter uint64, skipCounter bool) [8]uint64 {
	var m [16]uint64
	for i := range m {
		m[i] = binary.BigEndian.Uint64(block[i*8:])
	}

	var v [16]uint64
	copy(v[:8], h[:])
	v[8] = salt[0] ^ u512[0]
	v[9] = salt[1] ^ u512[1]
	v[10] = salt[2] ^ u512[2]
	v[11] = salt[3] ^ u512[3]
	v[12] = u512[4]
	v[13] = u512[5]
	v[14] = u512[6]
	v[15] = u512[7]
	if !skipCounter {
		v[12] ^= counter
		v[13] ^= counter
	}

	for r := 0; r < Rounds; r++ {
		round(&v, &m, r)
	}

	for i := range h {
		h[i] ^= salt[i&3] ^ v[i] ^ v[i+8]
	}
	return h
}

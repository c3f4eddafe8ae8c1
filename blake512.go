// Package blake512 provides a pure-Go implementation of the BLAKE-512 and
// BLAKE-384 hash functions (SHA-3 finalists).
//
// A Digest is an incremental hasher: data is pushed with Write, and Sum
// returns the digest of everything written so far without disturbing the
// running state, so a caller can peek at intermediate digests and keep
// writing. An optional 32-byte salt gives domain-separated digests for
// the same message.
//
// Example usage:
//
//	h := blake512.New512()
//	h.Write([]byte("block data"))
//	digest := h.Sum(nil) // 64 bytes
//
// Salted hashing:
//
//	h, err := blake512.NewSalted(salt) // salt must be 32 bytes
//	if err != nil {
//	    log.Fatal(err)
//	}
package blake512

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash"

	"github.com/opd-ai/go-blake512/internal/compress"
)

const (
	// BlockSize is the block size of the hash algorithm in bytes.
	BlockSize = compress.BlockSize

	// Size is the size of a BLAKE-512 digest in bytes.
	Size = 64

	// Size384 is the size of a BLAKE-384 digest in bytes.
	Size384 = 48

	// SaltSize is the required salt length in bytes.
	SaltSize = 32
)

// Padding layout: the length field occupies the last 16 bytes of the
// final block and the terminator byte sits right before it.
const (
	lengthSize   = 16
	terminatorAt = BlockSize - lengthSize - 1 // 111
)

var (
	// ErrInvalidSaltLength is returned when a salt is not exactly SaltSize bytes.
	ErrInvalidSaltLength = errors.New("blake512: salt length must be 32 bytes")

	// ErrSaltAfterWrite is returned when SetSalt is called after data has
	// been written. Reset the digest first to change its salt.
	ErrSaltAfterWrite = errors.New("blake512: salt must be set before writing data")

	// ErrUnsupportedHashSize is returned for output sizes other than 384 and 512 bits.
	ErrUnsupportedHashSize = errors.New("blake512: unsupported hash size")
)

var (
	iv512 = [8]uint64{
		0x6A09E667F3BCC908, 0xBB67AE8584CAA73B,
		0x3C6EF372FE94F82B, 0xA54FF53A5F1D36F1,
		0x510E527FADE682D1, 0x9B05688C2B3E6C1F,
		0x1F83D9ABFB41BD6B, 0x5BE0CD19137E2179,
	}

	iv384 = [8]uint64{
		0xCBBB9D5DC1059ED8, 0x629A292A367CD507,
		0x9159015A3070DD17, 0x152FECD8F70E5939,
		0x67332667FFC00B31, 0x8EB44A8768581511,
		0xDB0C2E0D64F98FA7, 0x47B5481DBEFA4FA4,
	}

	pad = [BlockSize]byte{0x80}
)

// Config specifies the configuration for a Digest.
type Config struct {
	// HashSize is the output size in bits: 384 or 512.
	// Zero selects 512.
	HashSize int

	// Salt is an optional 32-byte salt. Nil or empty means no salt.
	Salt []byte
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.HashSize {
	case 0, 384, 512:
	default:
		return fmt.Errorf("%w: %d bits", ErrUnsupportedHashSize, c.HashSize)
	}

	if len(c.Salt) != 0 && len(c.Salt) != SaltSize {
		return ErrInvalidSaltLength
	}

	return nil
}

// Digest computes BLAKE-512 or BLAKE-384 hashes incrementally.
// It implements hash.Hash.
//
// A Digest is not safe for concurrent use. Hash independent data with
// independent instances.
type Digest struct {
	hashSize int             // output size in bits (384 or 512)
	h        [8]uint64       // current chain value
	s        [4]uint64       // salt (zero by default)
	t        uint64          // message bits compressed so far
	nullt    bool            // finalization: leave the counter out of the next block
	x        [BlockSize]byte // data not yet compressed
	nx       int             // number of bytes in x
}

var _ hash.Hash = (*Digest)(nil)

// New returns a new hash.Hash computing BLAKE-512.
func New() hash.Hash { return New512() }

// New512 returns a new Digest computing BLAKE-512.
func New512() *Digest {
	d := &Digest{hashSize: 512}
	d.Reset()
	return d
}

// New384 returns a new Digest computing BLAKE-384.
func New384() *Digest {
	d := &Digest{hashSize: 384}
	d.Reset()
	return d
}

// NewSalted returns a new BLAKE-512 Digest using the given 32-byte salt.
func NewSalted(salt []byte) (*Digest, error) {
	return NewWithConfig(Config{HashSize: 512, Salt: salt})
}

// NewSalted384 returns a new BLAKE-384 Digest using the given 32-byte salt.
func NewSalted384(salt []byte) (*Digest, error) {
	return NewWithConfig(Config{HashSize: 384, Salt: salt})
}

// NewWithConfig creates a Digest from the given configuration.
func NewWithConfig(config Config) (*Digest, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	d := &Digest{hashSize: config.HashSize}
	if d.hashSize == 0 {
		d.hashSize = 512
	}
	d.Reset()

	if len(config.Salt) > 0 {
		if err := d.SetSalt(config.Salt); err != nil {
			return nil, fmt.Errorf("blake512: configure salt: %w", err)
		}
	}

	return d, nil
}

// Reset restores the initial state. The hash size and salt are kept.
func (d *Digest) Reset() {
	if d.hashSize == 384 {
		d.h = iv384
	} else {
		d.h = iv512
	}
	d.t = 0
	d.nx = 0
	d.nullt = false
}

// Size returns the number of bytes Sum will append.
func (d *Digest) Size() int { return d.hashSize >> 3 }

// BlockSize returns the hash's underlying block size.
func (d *Digest) BlockSize() int { return BlockSize }

// HashSize returns the output size in bits (384 or 512).
func (d *Digest) HashSize() int { return d.hashSize }

// SetSalt installs a 32-byte salt, decoded as four big-endian words.
//
// The salt must be set before any data is written; once bytes have been
// written SetSalt returns ErrSaltAfterWrite until the next Reset. On error
// the Digest is left unchanged.
func (d *Digest) SetSalt(salt []byte) error {
	if len(salt) != SaltSize {
		return ErrInvalidSaltLength
	}
	if d.t != 0 || d.nx != 0 {
		return ErrSaltAfterWrite
	}

	for i := range d.s {
		d.s[i] = binary.BigEndian.Uint64(salt[i*8:])
	}
	traceSalt(d.s)
	return nil
}

// Clone returns an independent copy of the current state.
func (d *Digest) Clone() *Digest {
	c := *d
	return &c
}

// Write absorbs p into the hash state. It never returns an error.
func (d *Digest) Write(p []byte) (nn int, err error) {
	nn = len(p)
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == BlockSize {
			d.block(&d.x)
			d.nx = 0
		}
		p = p[n:]
	}
	for len(p) >= BlockSize {
		d.block((*[BlockSize]byte)(p))
		p = p[BlockSize:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return
}

// block advances the bit counter and compresses one block.
func (d *Digest) block(b *[BlockSize]byte) {
	d.t += BlockSize << 3
	traceBlock(d.t, d.nullt)
	d.h = compress.Compress(d.h, b, d.s, d.t, d.nullt)
}

// Sum appends the current hash to in and returns the resulting slice.
// It does not change the underlying hash state, so the caller can keep
// writing and summing.
func (d *Digest) Sum(in []byte) []byte {
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:d0.Size()]...)
}

// checkSum runs the finalization padding on d and returns the serialized
// chain value. It consumes d; callers pass a copy.
//
// The final blocks carry the true message length in their last 16 bytes.
// Every padding byte goes through Write, which counts it as message data,
// so the counter is wound back beforehand by the number of padding bits
// each step will add. The counter of a block that holds no message bits
// is suppressed with nullt.
func (d *Digest) checkSum() [Size]byte {
	nx := uint64(d.nx)
	l := d.t + nx<<3

	// The top 64 bits of the length are zero: the counter has only 64 bits.
	var length [lengthSize]byte
	binary.BigEndian.PutUint64(length[8:], l)

	// BLAKE-384 clears the low bit of the terminator.
	final := byte(0x01)
	if d.hashSize == 384 {
		final = 0x00
	}

	switch {
	case nx == terminatorAt:
		// One padding byte holds both the 1 bit and the terminator.
		traceFinal(d.nx, l, "single-byte")
		d.t -= 8
		d.Write([]byte{0x80 | final})
	case nx < terminatorAt:
		// Enough space to fill the block.
		traceFinal(d.nx, l, "one-block")
		if nx == 0 {
			d.nullt = true
		}
		d.t -= (terminatorAt << 3) - nx<<3
		d.Write(pad[:terminatorAt-nx])
		d.Write([]byte{final})
		d.t -= 8
	default:
		// Need 2 compressions.
		traceFinal(d.nx, l, "two-block")
		d.t -= (BlockSize << 3) - nx<<3
		d.Write(pad[:BlockSize-nx])
		d.t -= terminatorAt << 3
		d.Write(pad[1 : terminatorAt+1])
		d.nullt = true
		d.Write([]byte{final})
		d.t -= 8
	}
	d.t -= lengthSize << 3
	d.Write(length[:])

	var out [Size]byte
	for i, s := range d.h[:d.hashSize>>6] {
		binary.BigEndian.PutUint64(out[i*8:], s)
	}
	return out
}

// Sum512 returns the BLAKE-512 digest of data.
func Sum512(data []byte) [Size]byte {
	var d Digest
	d.hashSize = 512
	d.Reset()
	d.Write(data)
	return d.checkSum()
}

// Sum384 returns the BLAKE-384 digest of data.
func Sum384(data []byte) [Size384]byte {
	var d Digest
	d.hashSize = 384
	d.Reset()
	d.Write(data)
	sum := d.checkSum()

	var out [Size384]byte
	copy(out[:], sum[:Size384])
	return out
}

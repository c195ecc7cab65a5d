package aesgo

import (
	"crypto/rand"
	"fmt"

	"github.com/tobygrice/aesgo/internal/aerr"
)

// Key is an immutable AES key of 128, 192, or 256 bits. The zero
// value is not a valid Key; construct one with NewKey, RandomKey128,
// RandomKey192, or RandomKey256.
type Key struct {
	bytes []byte
}

// NewKey copies raw into a new Key, rejecting any length other than
// 16, 24, or 32 bytes.
func NewKey(raw []byte) (*Key, error) {
	switch len(raw) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: got %d bytes, want 16, 24, or 32", aerr.ErrInvalidKeySize, len(raw))
	}
	k := &Key{bytes: make([]byte, len(raw))}
	copy(k.bytes, raw)
	return k, nil
}

// RandomKey128 generates a fresh random AES-128 key from the system
// random source.
func RandomKey128() (*Key, error) { return randomKey(16) }

// RandomKey192 generates a fresh random AES-192 key from the system
// random source.
func RandomKey192() (*Key, error) { return randomKey(24) }

// RandomKey256 generates a fresh random AES-256 key from the system
// random source.
func RandomKey256() (*Key, error) { return randomKey(32) }

func randomKey(size int) (*Key, error) {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("%w: %v", aerr.ErrRandomSource, err)
	}
	return &Key{bytes: buf}, nil
}

// Bytes returns a copy of the key's raw bytes. The caller owns the
// returned slice; mutating it does not affect the Key.
func (k *Key) Bytes() []byte {
	out := make([]byte, len(k.bytes))
	copy(out, k.bytes)
	return out
}

// Bits reports the key size in bits: 128, 192, or 256.
func (k *Key) Bits() int {
	return len(k.bytes) * 8
}

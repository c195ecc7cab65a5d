package aesgo

import (
	"crypto/rand"
	"fmt"

	"github.com/tobygrice/aesgo/internal/aerr"
	"github.com/tobygrice/aesgo/internal/core"
	"github.com/tobygrice/aesgo/internal/modes"
)

// Cipher is an AES instance bound to a single expanded key schedule.
// It is immutable and safe for concurrent use by multiple goroutines:
// every mode method reads only the schedule and its arguments (plus
// the system random source, for EncryptCTR's and EncryptGCM's
// nonces), with no shared mutable state.
type Cipher struct {
	roundKeys core.RoundKeys
}

// New expands key's bytes into a round-key schedule and returns a
// ready-to-use Cipher.
func New(key *Key) *Cipher {
	return &Cipher{roundKeys: core.ExpandKey(key.Bytes())}
}

// RoundKeys returns a copy of the cipher's expanded key schedule, one
// 16-byte round key per element. This is exposed for inspection and
// testing against FIPS-197's published key-schedule vectors; it plays
// no role in the encrypt/decrypt paths beyond what New already did.
func (c *Cipher) RoundKeys() [][16]byte {
	out := make([][16]byte, len(c.roundKeys))
	copy(out, c.roundKeys)
	return out
}

// EncryptECB PKCS#7-pads plaintext to a block-size multiple (always
// appending a full padding block when the input is already aligned)
// and encrypts every block independently. The output is exactly the
// ciphertext, with no embedded nonce or framing: `ciphertext(16*k)`.
func (c *Cipher) EncryptECB(plaintext []byte) []byte {
	return modes.EncryptECB(c.roundKeys, plaintext)
}

// DecryptECB decrypts and un-pads a ciphertext produced by
// EncryptECB. It fails with ErrInvalidCiphertext if the input is
// empty or not a multiple of the block size, and ErrInvalidPadding if
// the PKCS#7 trailer is malformed.
func (c *Cipher) DecryptECB(ciphertext []byte) ([]byte, error) {
	return modes.DecryptECB(c.roundKeys, ciphertext)
}

// EncryptCTR samples a fresh random 12-byte nonce, encrypts plaintext
// under a keystream counter starting at 1, and returns the
// self-contained blob `nonce(12) || ciphertext(|P|)`.
func (c *Cipher) EncryptCTR(plaintext []byte) ([]byte, error) {
	var nonce [modes.NonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", aerr.ErrRandomSource, err)
	}

	ciphertext, err := modes.CTR(c.roundKeys, &nonce, 1, plaintext)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, modes.NonceSize+len(ciphertext))
	out = append(out, nonce[:]...)
	out = append(out, ciphertext...)
	return out, nil
}

// DecryptCTR reads the leading 12-byte nonce from blob, regenerates
// the matching keystream starting at counter 1, and XORs it with the
// remaining bytes. It fails with ErrInvalidCiphertext if blob is
// shorter than the 12-byte nonce.
func (c *Cipher) DecryptCTR(blob []byte) ([]byte, error) {
	if len(blob) < modes.NonceSize {
		return nil, fmt.Errorf("%w: CTR blob of %d bytes is shorter than the %d-byte nonce", aerr.ErrInvalidCiphertext, len(blob), modes.NonceSize)
	}
	var nonce [modes.NonceSize]byte
	copy(nonce[:], blob[:modes.NonceSize])
	return modes.CTR(c.roundKeys, &nonce, 1, blob[modes.NonceSize:])
}

// EncryptGCM samples a fresh random 12-byte nonce, authenticates and
// encrypts plaintext (with optional associated data aad), and returns
// the self-contained blob
// `nonce(12) || tag(16) || aad_len(u32 be) || aad(aad_len) || ciphertext(|P|)`.
func (c *Cipher) EncryptGCM(plaintext, aad []byte) ([]byte, error) {
	var nonce [modes.NonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", aerr.ErrRandomSource, err)
	}
	return modes.EncryptGCM(c.roundKeys, &nonce, plaintext, aad)
}

// DecryptGCM parses a blob produced by EncryptGCM, verifies its
// authentication tag in constant time, and returns (plaintext, aad)
// only once that check passes. aad is nil when the blob carried no
// associated data. On any tag mismatch it returns ErrInvalidTag and
// releases no plaintext.
func (c *Cipher) DecryptGCM(blob []byte) (plaintext, aad []byte, err error) {
	return modes.DecryptGCM(c.roundKeys, blob)
}

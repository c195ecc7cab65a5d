// Package aerr holds the sentinel error values shared by the modes
// and public Cipher layers. It exists only so that internal/modes and
// the root aesgo package can both refer to the same error identities
// without an import cycle (the root package imports internal/modes).
package aerr

import "errors"

var (
	// ErrInvalidKeySize is returned when a key's byte length is not
	// 16, 24, or 32.
	ErrInvalidKeySize = errors.New("aesgo: invalid key size")

	// ErrInvalidCiphertext is returned when a ciphertext blob is
	// shorter than its mode's minimum framing, or (ECB) not a
	// multiple of the block size.
	ErrInvalidCiphertext = errors.New("aesgo: invalid ciphertext")

	// ErrInvalidPadding is returned by ECB decryption when the
	// PKCS#7 trailer is malformed.
	ErrInvalidPadding = errors.New("aesgo: invalid PKCS#7 padding")

	// ErrInvalidTag is returned by GCM decryption when the computed
	// authentication tag does not match the received tag. No
	// plaintext is released when this error is returned.
	ErrInvalidTag = errors.New("aesgo: GCM authentication failed (invalid tag)")

	// ErrCounterOverflow is returned when an input would require
	// more than 2^32-1 keystream blocks under a single nonce.
	ErrCounterOverflow = errors.New("aesgo: counter overflow")

	// ErrRandomSource is returned when the random collaborator
	// failed to produce a nonce or key.
	ErrRandomSource = errors.New("aesgo: random source failed")
)

package aesgo

import "github.com/tobygrice/aesgo/internal/aerr"

// Package-level sentinel errors. Callers compare against these with
// errors.Is; the internal/aerr identities are re-exported here rather
// than duplicated so that error checks work the same whether the
// error surfaces from Key construction, Cipher construction, or any
// of the mode methods.
var (
	// ErrInvalidKeySize is returned when a key's byte length is not
	// 16, 24, or 32.
	ErrInvalidKeySize = aerr.ErrInvalidKeySize

	// ErrInvalidCiphertext is returned when a ciphertext blob is
	// shorter than its mode's minimum framing, or (ECB) not a
	// multiple of the block size.
	ErrInvalidCiphertext = aerr.ErrInvalidCiphertext

	// ErrInvalidPadding is returned by DecryptECB when the PKCS#7
	// trailer is malformed.
	ErrInvalidPadding = aerr.ErrInvalidPadding

	// ErrInvalidTag is returned by DecryptGCM when the computed
	// authentication tag does not match the received tag. No
	// plaintext is released when this error is returned.
	ErrInvalidTag = aerr.ErrInvalidTag

	// ErrCounterOverflow is returned when an input would require more
	// keystream blocks than fit in the 32-bit CTR/GCM counter space
	// under a single nonce.
	ErrCounterOverflow = aerr.ErrCounterOverflow

	// ErrRandomSource is returned when reading from the system random
	// source failed while generating a key or nonce.
	ErrRandomSource = aerr.ErrRandomSource
)

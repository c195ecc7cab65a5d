// Package modes implements the ECB, CTR, and GCM modes of operation
// on top of internal/core's single-block AES transform, dispatched
// through internal/parallel's fork-join driver.
package modes

import (
	"fmt"

	"github.com/tobygrice/aesgo/internal/aerr"
	"github.com/tobygrice/aesgo/internal/core"
	"github.com/tobygrice/aesgo/internal/parallel"
)

// EncryptECB PKCS#7-pads plaintext out to a multiple of the block
// size (always appending at least one padding block, even when the
// input is already block-aligned) and encrypts every block
// independently, in parallel once the padded input exceeds
// parallel.Threshold.
func EncryptECB(rk core.RoundKeys, plaintext []byte) []byte {
	padLen := core.BlockSize - len(plaintext)%core.BlockSize
	padded := make([]byte, len(plaintext)+padLen)
	copy(padded, plaintext)
	for i := len(plaintext); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}

	out := make([]byte, len(padded))
	nblocks := len(padded) / core.BlockSize

	parallel.Run(nblocks, len(padded), func(i int) {
		var src, dst [core.BlockSize]byte
		copy(src[:], padded[i*core.BlockSize:(i+1)*core.BlockSize])
		core.EncryptBlock(&dst, &src, rk)
		copy(out[i*core.BlockSize:(i+1)*core.BlockSize], dst[:])
	})

	return out
}

// DecryptECB decrypts every block independently and in parallel, then
// validates and strips the PKCS#7 trailer.
func DecryptECB(rk core.RoundKeys, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%core.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ECB ciphertext length %d is not a nonzero multiple of %d", aerr.ErrInvalidCiphertext, len(ciphertext), core.BlockSize)
	}

	out := make([]byte, len(ciphertext))
	nblocks := len(ciphertext) / core.BlockSize

	parallel.Run(nblocks, len(ciphertext), func(i int) {
		var src, dst [core.BlockSize]byte
		copy(src[:], ciphertext[i*core.BlockSize:(i+1)*core.BlockSize])
		core.DecryptBlock(&dst, &src, rk)
		copy(out[i*core.BlockSize:(i+1)*core.BlockSize], dst[:])
	})

	pad := int(out[len(out)-1])
	if pad == 0 || pad > core.BlockSize || pad > len(out) {
		return nil, fmt.Errorf("%w: padding byte %d out of range", aerr.ErrInvalidPadding, pad)
	}
	start := len(out) - pad
	for _, b := range out[start:] {
		if int(b) != pad {
			return nil, fmt.Errorf("%w: trailing bytes do not all equal %d", aerr.ErrInvalidPadding, pad)
		}
	}

	return out[:start], nil
}

package modes

import (
	"encoding/binary"

	"github.com/tobygrice/aesgo/internal/core"
)

// NonceSize is the CTR/GCM nonce length in bytes (96 bits).
const NonceSize = 12

// counterBlock builds the 16-byte counter block nonce(12) || ctr(4,
// big-endian) for counter value ctr. This is a pure function of
// (nonce, ctr), which is what lets the parallel driver compute any
// block index's keystream independently of every other index.
func counterBlock(nonce *[NonceSize]byte, ctr uint32) [core.BlockSize]byte {
	var block [core.BlockSize]byte
	copy(block[:NonceSize], nonce[:])
	binary.BigEndian.PutUint32(block[NonceSize:], ctr)
	return block
}

// xorInto XORs src into dst in place, over the shorter of the two
// lengths (used for the final, possibly partial, keystream block).
func xorInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

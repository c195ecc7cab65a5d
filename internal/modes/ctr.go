package modes

import (
	"fmt"
	"math"

	"github.com/tobygrice/aesgo/internal/aerr"
	"github.com/tobygrice/aesgo/internal/core"
	"github.com/tobygrice/aesgo/internal/parallel"
)

// CTR runs the counter-mode keystream over input, starting the
// 32-bit counter at ctrStart, and XORs it with input into a freshly
// allocated output buffer; input itself is not modified. It is
// symmetric: the same call both encrypts and decrypts. ctrStart is 1
// for standalone CTR mode and 2 for GCM's keystream phase (GCM
// reserves counter 1 for the authentication tag's J0 block).
func CTR(rk core.RoundKeys, nonce *[NonceSize]byte, ctrStart uint32, input []byte) ([]byte, error) {
	if len(input) == 0 {
		return []byte{}, nil
	}

	nblocks := (len(input) + core.BlockSize - 1) / core.BlockSize
	if nblocks > math.MaxUint32 || uint64(ctrStart)+uint64(nblocks)-1 > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d blocks starting at counter %d exceeds the 32-bit counter space", aerr.ErrCounterOverflow, nblocks, ctrStart)
	}

	output := make([]byte, len(input))

	parallel.Run(nblocks, len(input), func(i int) {
		ctr := ctrStart + uint32(i)
		block := counterBlock(nonce, ctr)

		var keystream [core.BlockSize]byte
		core.EncryptBlock(&keystream, &block, rk)

		lo := i * core.BlockSize
		hi := lo + core.BlockSize
		if hi > len(input) {
			hi = len(input)
		}
		copy(output[lo:hi], input[lo:hi])
		xorInto(output[lo:hi], keystream[:hi-lo])
	})

	return output, nil
}

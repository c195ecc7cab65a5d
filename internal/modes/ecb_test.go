package modes

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tobygrice/aesgo/internal/aerr"
	"github.com/tobygrice/aesgo/internal/core"
)

func key128(t *testing.T) core.RoundKeys {
	t.Helper()
	raw := make([]byte, 16)
	for i := range raw {
		raw[i] = byte(i)
	}
	return core.ExpandKey(raw)
}

func TestECBRoundTripWithPadding(t *testing.T) {
	rk := key128(t)
	plaintext := []byte("Hello, World!") // E3: 13 bytes, not block-aligned

	ciphertext := EncryptECB(rk, plaintext)
	require.Len(t, ciphertext, core.BlockSize, "13 bytes pads up to exactly one block")

	decrypted, err := DecryptECB(rk, ciphertext)
	require.NoError(t, err)
	require.Equal(t, plaintext, decrypted)
}

func TestECBAlwaysAppendsAFullPaddingBlockWhenAligned(t *testing.T) {
	rk := key128(t)
	plaintext := make([]byte, 32) // exactly two blocks already

	ciphertext := EncryptECB(rk, plaintext)
	require.Len(t, ciphertext, 48, "block-aligned input still gets a full extra padding block")

	decrypted, err := DecryptECB(rk, ciphertext)
	require.NoError(t, err)
	require.Equal(t, plaintext, decrypted)
}

func TestECBDecryptRejectsEmptyOrMisalignedCiphertext(t *testing.T) {
	rk := key128(t)

	_, err := DecryptECB(rk, nil)
	require.ErrorIs(t, err, aerr.ErrInvalidCiphertext)

	_, err = DecryptECB(rk, make([]byte, 17))
	require.ErrorIs(t, err, aerr.ErrInvalidCiphertext)
}

func TestECBDecryptRejectsMalformedPadding(t *testing.T) {
	rk := key128(t)
	plaintext := []byte("exactly16!!bytes")
	require.Len(t, plaintext, 16)

	ciphertext := EncryptECB(rk, plaintext)

	// Corrupt the padding block's plaintext before re-encrypting it so
	// that decryption observes a bad trailer.
	var badBlock, badBlockEnc [core.BlockSize]byte
	for i := range badBlock {
		badBlock[i] = byte(i + 1) // not a valid PKCS#7 trailer
	}
	core.EncryptBlock(&badBlockEnc, &badBlock, rk)
	corrupted := append(append([]byte{}, ciphertext[:core.BlockSize]...), badBlockEnc[:]...)

	_, err := DecryptECB(rk, corrupted)
	require.ErrorIs(t, err, aerr.ErrInvalidPadding)
}

func TestECBParallelMatchesManyBlocks(t *testing.T) {
	rk := key128(t)
	plaintext := make([]byte, 10000) // well above Threshold, forces the parallel path
	for i := range plaintext {
		plaintext[i] = byte(i)
	}

	ciphertext := EncryptECB(rk, plaintext)
	decrypted, err := DecryptECB(rk, ciphertext)
	require.NoError(t, err)
	require.Equal(t, plaintext, decrypted)
}

package aesgo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewKeyAcceptsValidSizes(t *testing.T) {
	for _, size := range []int{16, 24, 32} {
		raw := make([]byte, size)
		key, err := NewKey(raw)
		require.NoError(t, err)
		require.Equal(t, size*8, key.Bits())
		require.Equal(t, raw, key.Bytes())
	}
}

func TestNewKeyRejectsInvalidSizes(t *testing.T) {
	for _, size := range []int{0, 1, 15, 17, 23, 25, 31, 33} {
		_, err := NewKey(make([]byte, size))
		require.ErrorIs(t, err, ErrInvalidKeySize)
	}
}

func TestNewKeyCopiesInput(t *testing.T) {
	raw := make([]byte, 16)
	key, err := NewKey(raw)
	require.NoError(t, err)

	raw[0] = 0xff
	require.NotEqual(t, raw, key.Bytes(), "Key must not alias the caller's slice")
}

func TestRandomKeysHaveTheRightLengthAndDiffer(t *testing.T) {
	k128a, err := RandomKey128()
	require.NoError(t, err)
	require.Equal(t, 128, k128a.Bits())

	k128b, err := RandomKey128()
	require.NoError(t, err)
	require.NotEqual(t, k128a.Bytes(), k128b.Bytes())

	k192, err := RandomKey192()
	require.NoError(t, err)
	require.Equal(t, 192, k192.Bits())

	k256, err := RandomKey256()
	require.NoError(t, err)
	require.Equal(t, 256, k256.Bits())
}

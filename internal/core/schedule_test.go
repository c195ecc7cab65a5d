package core

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestExpandKeyAES128FirstAndLastRoundKeys(t *testing.T) {
	key := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	rk := ExpandKey(key)
	require.Len(t, rk, 11)
	require.Equal(t, key, rk[0][:])
	require.Equal(t, mustHex(t, "13111d7fe3944a17f307a78b4d2b30c5"), rk[10][:])
}

func TestExpandKeyAES192FirstAndLastRoundKeys(t *testing.T) {
	key := mustHex(t, "000102030405060708090a0b0c0d0e0f1011121314151617")
	rk := ExpandKey(key)
	require.Len(t, rk, 13)
	require.Equal(t, key[:16], rk[0][:])
	require.Equal(t, mustHex(t, "e98ba06f448c773c8ecc720401002202"), rk[12][:])
}

func TestExpandKeyAES256FirstAndLastRoundKeys(t *testing.T) {
	key := mustHex(t, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	rk := ExpandKey(key)
	require.Len(t, rk, 15)
	require.Equal(t, key[:16], rk[0][:])
	require.Equal(t, key[16:], rk[1][:])
	require.Equal(t, mustHex(t, "fe4890d1e6188d0b046df344706c631e"), rk[14][:])
}

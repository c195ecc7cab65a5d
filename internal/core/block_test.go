package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncryptBlockAES128(t *testing.T) {
	rk := ExpandKey(mustHex(t, "000102030405060708090a0b0c0d0e0f"))
	var src, dst [BlockSize]byte
	copy(src[:], mustHex(t, "00112233445566778899aabbccddeeff"))

	EncryptBlock(&dst, &src, rk)
	require.Equal(t, mustHex(t, "69c4e0d86a7b0430d8cdb78070b4c55a"), dst[:])
}

func TestEncryptBlockAES256(t *testing.T) {
	// E2: AES-256 NIST SP 800-38A example vector.
	rk := ExpandKey(mustHex(t, "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4"))
	var src, dst [BlockSize]byte
	copy(src[:], mustHex(t, "6bc1bee22e409f96e93d7e117393172a"))

	EncryptBlock(&dst, &src, rk)
	require.Equal(t, mustHex(t, "f3eed1bdb5d2a03c064b5a7e3db181f8"), dst[:])
}

func TestDecryptBlockIsInverseOfEncrypt(t *testing.T) {
	sizes := []int{16, 24, 32}
	for _, size := range sizes {
		key := make([]byte, size)
		for i := range key {
			key[i] = byte(i * 7)
		}
		rk := ExpandKey(key)

		var plaintext [BlockSize]byte
		for i := range plaintext {
			plaintext[i] = byte(255 - i)
		}

		var ciphertext, recovered [BlockSize]byte
		EncryptBlock(&ciphertext, &plaintext, rk)
		DecryptBlock(&recovered, &ciphertext, rk)

		require.Equal(t, plaintext, recovered)
	}
}

func TestEncryptBlockAllZeroAES128(t *testing.T) {
	// FIPS-197 Appendix B worked example.
	rk := ExpandKey(mustHex(t, "000102030405060708090a0b0c0d0e0f"))
	var src, dst [BlockSize]byte
	copy(src[:], mustHex(t, "00112233445566778899aabbccddeeff"))
	EncryptBlock(&dst, &src, rk)

	var recovered [BlockSize]byte
	DecryptBlock(&recovered, &dst, rk)
	require.Equal(t, src, recovered)
}

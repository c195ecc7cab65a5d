package modes

import (
	"encoding/binary"
	"fmt"

	"github.com/tobygrice/aesgo/internal/aerr"
	"github.com/tobygrice/aesgo/internal/core"
)

// TagSize is the GCM authentication tag length in bytes. Only
// 128-bit tags are produced or accepted.
const TagSize = 16

// aadLenFieldSize is the width of the big-endian AAD-length field in
// the GCM wire framing.
const aadLenFieldSize = 4

// gcmMinFraming is the smallest a well-formed GCM blob can be:
// nonce + tag + the 4-byte AAD length field, with zero-length
// ciphertext and AAD.
const gcmMinFraming = NonceSize + TagSize + aadLenFieldSize

// EncryptGCM encrypts plaintext under nonce, authenticating both the
// ciphertext and the optional associated data aad, and returns the
// self-contained framed blob:
//
//	nonce(12) || tag(16) || aad_len(u32 be) || aad(aad_len) || ciphertext(|P|)
func EncryptGCM(rk core.RoundKeys, nonce *[NonceSize]byte, plaintext, aad []byte) ([]byte, error) {
	ciphertext, err := CTR(rk, nonce, 2, plaintext)
	if err != nil {
		return nil, err
	}

	tag := computeTag(rk, nonce, ciphertext, aad)

	out := make([]byte, 0, NonceSize+TagSize+aadLenFieldSize+len(aad)+len(ciphertext))
	out = append(out, nonce[:]...)
	out = append(out, tag[:]...)
	out = appendUint32(out, uint32(len(aad)))
	out = append(out, aad...)
	out = append(out, ciphertext...)
	return out, nil
}

// DecryptGCM parses a blob produced by EncryptGCM, verifies its tag in
// constant time, and only then decrypts and returns the plaintext
// along with the associated data (nil if none was present). No
// plaintext is ever computed, let alone returned, before the tag
// check passes.
func DecryptGCM(rk core.RoundKeys, blob []byte) (plaintext, aad []byte, err error) {
	if len(blob) < gcmMinFraming {
		return nil, nil, fmt.Errorf("%w: GCM blob of %d bytes is shorter than the %d-byte minimum framing", aerr.ErrInvalidCiphertext, len(blob), gcmMinFraming)
	}

	var nonce [NonceSize]byte
	copy(nonce[:], blob[:NonceSize])
	rest := blob[NonceSize:]

	receivedTag := rest[:TagSize]
	rest = rest[TagSize:]

	aadLen := binary.BigEndian.Uint32(rest[:aadLenFieldSize])
	rest = rest[aadLenFieldSize:]

	if uint64(len(rest)) < uint64(aadLen) {
		return nil, nil, fmt.Errorf("%w: AAD length %d exceeds remaining blob size %d", aerr.ErrInvalidCiphertext, aadLen, len(rest))
	}
	aad = rest[:aadLen]
	ciphertext := rest[aadLen:]

	computed := computeTag(rk, &nonce, ciphertext, aad)

	if !constantTimeEqual(receivedTag, computed[:]) {
		return nil, nil, aerr.ErrInvalidTag
	}

	plaintext, err = CTR(rk, &nonce, 2, ciphertext)
	if err != nil {
		return nil, nil, err
	}

	if len(aad) == 0 {
		return plaintext, nil, nil
	}
	return plaintext, aad, nil
}

// computeTag computes the GCM authentication tag
// T = AES_Encrypt(J0) xor GHASH(H, A || 0* || C || 0* || len(A) || len(C)).
func computeTag(rk core.RoundKeys, nonce *[NonceSize]byte, ciphertext, aad []byte) [TagSize]byte {
	var tag [TagSize]byte

	j0 := counterBlock(nonce, 1)
	var j0Enc [core.BlockSize]byte
	core.EncryptBlock(&j0Enc, &j0, rk)

	var zero, h [core.BlockSize]byte
	core.EncryptBlock(&h, &zero, rk)
	g := newGHASH(h)

	buf := make([]byte, 0, padded16(len(aad))+padded16(len(ciphertext))+16)
	buf = append(buf, aad...)
	buf = zeroPadTo16(buf, len(aad))
	buf = append(buf, ciphertext...)
	buf = zeroPadTo16(buf, len(buf)-padded16(len(aad)))

	var lenBlock [16]byte
	binary.BigEndian.PutUint64(lenBlock[:8], uint64(len(aad))*8)
	binary.BigEndian.PutUint64(lenBlock[8:], uint64(len(ciphertext))*8)
	buf = append(buf, lenBlock[:]...)

	s := g.sum(buf)
	for i := 0; i < TagSize; i++ {
		tag[i] = j0Enc[i] ^ s[i]
	}
	return tag
}

// padded16 returns n rounded up to the next multiple of 16.
func padded16(n int) int {
	rem := n % 16
	if rem == 0 {
		return n
	}
	return n + (16 - rem)
}

// zeroPadTo16 appends zero bytes to buf so that the most recently
// appended segment (of original length segLen) lands on a 16-byte
// boundary.
func zeroPadTo16(buf []byte, segLen int) []byte {
	rem := segLen % 16
	if rem == 0 {
		return buf
	}
	return append(buf, make([]byte, 16-rem)...)
}

// constantTimeEqual compares two equal-length byte slices without
// branching on the position of the first difference: every byte pair
// is XORed and OR-accumulated into a single byte, which is tested
// only once, at the end.
func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var v byte
	for i := range a {
		v |= a[i] ^ b[i]
	}
	return v == 0
}

func appendUint32(buf []byte, v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return append(buf, b[:]...)
}

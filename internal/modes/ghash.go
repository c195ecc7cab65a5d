package modes

import "encoding/binary"

// ghashR is the reduction constant for GF(2^128) with reduction
// polynomial x^128+x^7+x^2+x+1, applied when a bit shifted out of the
// low end of the field element during the shift-XOR multiplication
// below (NIST SP 800-38D's bit ordering is MSB-first within each byte).
const ghashR = 0xe100000000000000

// ghash holds the hash subkey H (split into big-endian high/low
// 64-bit halves) used to evaluate GCM's universal hash via Horner's
// method: Y <- (Y xor A_j) * H for each 16-byte block A_j.
type ghash struct {
	h0, h1 uint64 // high and low 64 bits of H
}

// newGHASH derives a ghash evaluator from the 16-byte hash subkey H
// (the block-cipher encryption of 16 zero bytes under the session key).
func newGHASH(h [16]byte) *ghash {
	return &ghash{
		h0: binary.BigEndian.Uint64(h[:8]),
		h1: binary.BigEndian.Uint64(h[8:]),
	}
}

// mul computes the 128-bit operand (x0,x1) times H over GF(2^128), as
// a shift-XOR product reduced modulo x^128+x^7+x^2+x+1. This is the
// only GF(2^128) multiplication GHASH needs: every Horner step
// multiplies the running accumulator by the same fixed H. Per sum's
// y0/y1 split, x1 holds the high-order 64 bits of the operand and x0
// the low-order 64 bits; all 128 bits are scanned MSB-first, x1
// before x0.
func (g *ghash) mul(x0, x1 uint64) (z0, z1 uint64) {
	// v1 holds the high-order and v0 the low-order 64 bits of V, so that
	// z0/z1 come out in the same low/high order as x0/x1.
	v0, v1 := g.h1, g.h0

	for i := 0; i < 128; i++ {
		var bit uint64
		if i < 64 {
			bit = (x1 >> (63 - i)) & 1
		} else {
			bit = (x0 >> (127 - i)) & 1
		}
		if bit == 1 {
			z0 ^= v0
			z1 ^= v1
		}

		lsb := v0 & 1
		v0 >>= 1
		if v1&1 == 1 {
			v0 |= 0x8000000000000000
		}
		v1 >>= 1
		if lsb == 1 {
			v1 ^= ghashR
		}
	}

	return z0, z1
}

// sum evaluates GHASH over data (zero-padded to a 16-byte multiple if
// needed) and returns the resulting 128-bit accumulator as 16 bytes.
func (g *ghash) sum(data []byte) [16]byte {
	var y0, y1 uint64

	for i := 0; i < len(data); i += 16 {
		var b0, b1 uint64
		end := i + 16
		if end <= len(data) {
			b1 = binary.BigEndian.Uint64(data[i:])
			b0 = binary.BigEndian.Uint64(data[i+8:])
		} else {
			// Final partial block: zero-pad to 16 bytes before
			// splitting into the two big-endian halves.
			var block [16]byte
			copy(block[:], data[i:])
			b1 = binary.BigEndian.Uint64(block[:8])
			b0 = binary.BigEndian.Uint64(block[8:])
		}

		y0 ^= b0
		y1 ^= b1
		y0, y1 = g.mul(y0, y1)
	}

	var out [16]byte
	binary.BigEndian.PutUint64(out[:8], y1)
	binary.BigEndian.PutUint64(out[8:], y0)
	return out
}

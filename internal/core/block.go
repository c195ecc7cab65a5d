package core

// EncryptBlock encrypts exactly one 16-byte block using the supplied
// round-key schedule. Total function: no allocation, no error path,
// constant-time with respect to the data (every secret-dependent step
// is a lookup into a full 256-entry table).
func EncryptBlock(dst *[BlockSize]byte, src *[BlockSize]byte, rk RoundKeys) {
	state := *src
	last := len(rk) - 1

	addRoundKey(&state, &rk[0])
	for r := 1; r < last; r++ {
		subBytes(&state)
		shiftRows(&state)
		mixColumns(&state)
		addRoundKey(&state, &rk[r])
	}
	subBytes(&state)
	shiftRows(&state)
	addRoundKey(&state, &rk[last])

	*dst = state
}

// DecryptBlock decrypts exactly one 16-byte block using the supplied
// round-key schedule, consumed in reverse order.
func DecryptBlock(dst *[BlockSize]byte, src *[BlockSize]byte, rk RoundKeys) {
	state := *src
	last := len(rk) - 1

	addRoundKey(&state, &rk[last])
	for r := last - 1; r > 0; r-- {
		invShiftRows(&state)
		invSubBytes(&state)
		addRoundKey(&state, &rk[r])
		invMixColumns(&state)
	}
	invShiftRows(&state)
	invSubBytes(&state)
	addRoundKey(&state, &rk[0])

	*dst = state
}

// addRoundKey XORs the state with a 16-byte round key.
func addRoundKey(state *[BlockSize]byte, rk *[BlockSize]byte) {
	for i := 0; i < BlockSize; i++ {
		state[i] ^= rk[i]
	}
}

// subBytes applies the S-box to every byte of the state.
func subBytes(state *[BlockSize]byte) {
	for i := range state {
		state[i] = sbox[state[i]]
	}
}

// invSubBytes applies the inverse S-box to every byte of the state.
func invSubBytes(state *[BlockSize]byte) {
	for i := range state {
		state[i] = invSbox[state[i]]
	}
}

// shiftRows cyclically left-rotates row r by r positions. The state is
// column-major: byte (row, col) lives at index 4*col+row.
func shiftRows(state *[BlockSize]byte) {
	s := *state
	// row 0 is unchanged.
	state[1], state[5], state[9], state[13] = s[5], s[9], s[13], s[1]
	state[2], state[6], state[10], state[14] = s[10], s[14], s[2], s[6]
	state[3], state[7], state[11], state[15] = s[15], s[3], s[7], s[11]
}

// invShiftRows cyclically right-rotates row r by r positions.
func invShiftRows(state *[BlockSize]byte) {
	s := *state
	state[1], state[5], state[9], state[13] = s[13], s[1], s[5], s[9]
	state[2], state[6], state[10], state[14] = s[10], s[14], s[2], s[6]
	state[3], state[7], state[11], state[15] = s[7], s[11], s[15], s[3]
}

// mixColumns replaces each column (a0,a1,a2,a3) with
// (2a0+3a1+a2+a3, a0+2a1+3a2+a3, a0+a1+2a2+3a3, 3a0+a1+a2+2a3) over
// GF(2^8), via the precomputed mul2/mul3 tables.
func mixColumns(state *[BlockSize]byte) {
	for c := 0; c < 4; c++ {
		i := c * 4
		a, b, cc, d := state[i], state[i+1], state[i+2], state[i+3]
		state[i+0] = mul2[a] ^ mul3[b] ^ cc ^ d
		state[i+1] = a ^ mul2[b] ^ mul3[cc] ^ d
		state[i+2] = a ^ b ^ mul2[cc] ^ mul3[d]
		state[i+3] = mul3[a] ^ b ^ cc ^ mul2[d]
	}
}

// invMixColumns replaces each column (d0,d1,d2,d3) with
// (14d0+11d1+13d2+9d3, 9d0+14d1+11d2+13d3, 13d0+9d1+14d2+11d3,
// 11d0+13d1+9d2+14d3) over GF(2^8), via the precomputed mul9/mul11/
// mul13/mul14 tables.
func invMixColumns(state *[BlockSize]byte) {
	for c := 0; c < 4; c++ {
		i := c * 4
		a, b, cc, d := state[i], state[i+1], state[i+2], state[i+3]
		state[i+0] = mul14[a] ^ mul11[b] ^ mul13[cc] ^ mul9[d]
		state[i+1] = mul9[a] ^ mul14[b] ^ mul11[cc] ^ mul13[d]
		state[i+2] = mul13[a] ^ mul9[b] ^ mul14[cc] ^ mul11[d]
		state[i+3] = mul11[a] ^ mul13[b] ^ mul9[cc] ^ mul14[d]
	}
}

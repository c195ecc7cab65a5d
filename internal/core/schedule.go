package core

// RoundKeys is the expanded key schedule: Nr+1 consecutive 16-byte
// round keys, where Nr is 10, 12, or 14 for AES-128, AES-192, and
// AES-256 respectively. Index 0 is the unmodified original key.
type RoundKeys [][BlockSize]byte

// ExpandKey runs the FIPS-197 §5.2 key expansion over a raw 16/24/32
// byte key and returns the resulting round-key schedule. The caller
// (internal/core's Key abstraction lives one layer up, in the aesgo
// package) is responsible for rejecting any other key length before
// calling this — ExpandKey itself has no error path.
func ExpandKey(key []byte) RoundKeys {
	nk := len(key) / 4 // words in the original key
	nr := nk + 6       // number of rounds
	nw := (nr + 1) * 4 // total words produced

	w := make([][4]byte, nw)
	for i := 0; i < len(key); i++ {
		w[i/4][i%4] = key[i]
	}

	temp := w[nk-1]
	for i := nk; i < nw; i++ {
		switch {
		case i%nk == 0:
			// RotWord, SubWord, then XOR with the round constant.
			temp = [4]byte{
				sbox[temp[1]] ^ rcon[i/nk],
				sbox[temp[2]],
				sbox[temp[3]],
				sbox[temp[0]],
			}
		case nk == 8 && i%nk == 4:
			// AES-256 only: an extra SubWord every 4 words.
			temp = [4]byte{sbox[temp[0]], sbox[temp[1]], sbox[temp[2]], sbox[temp[3]]}
		}

		var next [4]byte
		prev := w[i-nk]
		for j := 0; j < 4; j++ {
			next[j] = temp[j] ^ prev[j]
		}
		w[i] = next
		temp = next
	}

	roundKeys := make(RoundKeys, nr+1)
	for round := 0; round <= nr; round++ {
		base := round * 4
		for col := 0; col < 4; col++ {
			word := w[base+col]
			for row := 0; row < 4; row++ {
				roundKeys[round][col*4+row] = word[row]
			}
		}
	}
	return roundKeys
}

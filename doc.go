// Package aesgo is a from-scratch implementation of the AES block
// cipher (FIPS-197) and three modes of operation built on top of it:
// ECB (with PKCS#7 padding), CTR, and GCM. It exists to be read,
// not to compete with crypto/aes: single-block transforms, round-key
// expansion, GHASH, and counter-mode keystream generation are all
// written out in Go rather than delegated to hardware intrinsics or
// the standard library, and large inputs are encrypted/decrypted
// across multiple goroutines via a block-parallel fork-join driver.
//
// None of this package's code runs in constant time at the
// instruction level beyond the explicit measures called out in the
// GCM tag comparison; it does not defend against cache-timing or
// power-analysis side channels and must not be used where that
// matters. See Key, Cipher, and the package-level error values for
// the public surface.
package aesgo

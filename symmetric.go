// symmetric.go - Symmetric primitive adapter.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "golang.org/x/crypto/sha3"

// shake128Rate is the SHAKE-128 block size in bytes (its sponge rate). It is
// not exposed as a method on sha3.ShakeHash, so it is pinned here.
const shake128Rate = 168

// xofState is the extendable-output function used to expand a public seed
// into the uniformly-random entries of matrix A.
type xofState = sha3.ShakeHash

// newXOF returns a fresh SHAKE-128 instance bound to the Kyber matrix-entry
// domain: seed || x || y, per gen_matrix's absorb step.
func newXOF(seed []byte, x, y byte) xofState {
	xof := sha3.NewShake128()
	xof.Write(seed)
	xof.Write([]byte{x, y})
	return xof
}

// prf is SHAKE-256 used as a pseudorandom function: H(key || nonce),
// squeezed to outLen bytes. Used to derive noise polynomials from a
// 32-byte seed and a one-byte nonce.
func prf(outLen int, key []byte, nonce byte) []byte {
	h := sha3.NewShake256()
	h.Write(key)
	h.Write([]byte{nonce})
	out := make([]byte, outLen)
	h.Read(out)
	return out
}

// kdf is SHAKE-256 used as a key-derivation function, squeezed to outLen
// bytes.
func kdf(outLen int, in []byte) []byte {
	out := make([]byte, outLen)
	sha3.ShakeSum256(out, in)
	return out
}

// hashH is SHA3-256, used throughout the FO transform to bind public keys
// and ciphertexts into the shared-secret derivation.
func hashH(in []byte) [32]byte {
	return sha3.Sum256(in)
}

// hashG is SHA3-512, used to derive (rho, sigma) from a keygen seed and
// (Kbar, r) from a message and public-key hash.
func hashG(in []byte) [64]byte {
	return sha3.Sum512(in)
}

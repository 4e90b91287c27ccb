// ctutil.go - Constant-time comparison and selection primitives.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// verify reports whether a and b are byte-for-byte equal, in time
// independent of where they first differ. Unlike the Python reference
// implementation's verify (which short-circuits on the first differing
// byte and says so in a comment), this accumulates the bitwise OR of every
// byte difference before testing the accumulator, so its running time does
// not leak the position of a mismatch.
func verify(a, b []byte) bool {
	return notEqual(a, b) == 0
}

// notEqual returns 1 if a and b differ, 0 if they are byte-for-byte equal,
// in time independent of where they first differ and without branching on
// the comparison result. Mismatched lengths are treated as a difference.
func notEqual(a, b []byte) byte {
	if len(a) != len(b) {
		return 1
	}

	var r byte
	for i := range a {
		r |= a[i] ^ b[i]
	}
	// Spread any set bit in r into bit 0: r|-r has its lowest set bit (and
	// every bit above it) on iff r != 0, so shifting that down by 7 yields
	// 1 iff r != 0.
	return (r | -r) >> 7
}

// cmov overwrites r with x, in time independent of b, iff b == 1. b must
// be 0 or 1; any other value is undefined.
func cmov(r, x []byte, b byte) {
	mask := -b // 0x00 if b==0, 0xff if b==1
	for i := range r {
		r[i] ^= mask & (x[i] ^ r[i])
	}
}

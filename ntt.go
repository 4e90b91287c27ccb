// ntt.go - Number-Theoretic Transform.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// zetas holds precomputed powers of the primitive 256th root of unity
// zeta=17 mod q, in Montgomery domain and bit-reversed order. zetas[64:128]
// double as the basemul twiddle factors for multiplication in
// Z_q[X]/(X^2-zeta).
var zetas = [128]int16{
	-1044, -758, -359, -1517, 1493, 1422, 287, 202,
	-171, 622, 1577, 182, 962, -1202, -1474, 1468,
	573, -1325, 264, 383, -829, 1458, -1602, -130,
	-681, 1017, 732, 608, -1542, 411, -205, -1571,
	1223, 652, -552, 1015, -1293, 1491, -282, -1544,
	516, -8, -320, -666, -1618, -1162, 126, 1469,
	-853, -90, -271, 830, 107, -1421, -247, -951,
	-398, 961, -1508, -725, 448, -1065, 677, -1275,
	-1103, 430, 555, 843, -1251, 871, 1550, 105,
	422, 587, 177, -235, -291, -460, 1574, 1653,
	-246, 778, 1159, -147, -777, 1483, -602, 1119,
	-1590, 644, -872, 349, 418, 329, -156, -75,
	817, 1097, 603, 610, 1322, -1285, -1465, 384,
	-1215, -136, 1218, -1335, -874, 220, -1187, -1659,
	-1185, -1530, -1278, 794, -1510, -854, -870, 478,
	-108, -308, 996, 991, 958, -1460, 1522, 1628,
}

// invNTTMontFactor is f=1441=2^32*2^-7 mod q; multiplying every coefficient
// of the inverse-NTT output by this constant with fqmul (a net factor of
// 2^16*2^-7) removes the 2^7 the inverse butterflies accumulate and lands
// the result in Montgomery form scaled by 2^16.
const invNTTMontFactor = 1441

// nttRef computes the negacyclic number-theoretic transform (NTT) of the
// 256 coefficients in r in place. Input is assumed to be in normal order,
// output is produced in bit-reversed order. Coefficients grow across
// layers; the caller is responsible for reducing.
func nttRef(r *[kyberN]int16) {
	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < kyberN; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := fqmul(zeta, r[j+length])
				r[j+length] = r[j] - t
				r[j] = r[j] + t
			}
		}
	}
}

// invnttRef computes the inverse NTT of r in place, additionally scaling
// the result by the Montgomery factor 2^16 (invNTTMontFactor folds this in
// to the last pass). Input is assumed to be in bit-reversed order, output
// is produced in normal order.
func invnttRef(r *[kyberN]int16) {
	k := 127
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < kyberN; start += 2 * length {
			zeta := zetas[k]
			k--
			for j := start; j < start+length; j++ {
				t := r[j]
				r[j] = barrettReduce(t + r[j+length])
				r[j+length] = r[j+length] - t
				r[j+length] = fqmul(zeta, r[j+length])
			}
		}
	}

	for j := range r {
		r[j] = fqmul(r[j], invNTTMontFactor)
	}
}

// basemul multiplies two degree-1 polynomials a, b in Z_q[X]/(X^2-zeta),
// both already in Montgomery form, writing the degree-1 product into r.
// This implements the pointwise product in NTT domain: r[0] = a[0]b[0] +
// zeta*a[1]b[1], r[1] = a[0]b[1] + a[1]b[0].
func basemul(r, a, b *[2]int16, zeta int16) {
	r[0] = fqmul(a[1], b[1])
	r[0] = fqmul(r[0], zeta)
	r[0] += fqmul(a[0], b[0])

	r[1] = fqmul(a[0], b[1])
	r[1] += fqmul(a[1], b[0])
}

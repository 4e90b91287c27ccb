// polyvec.go - Vectors of Kyber polynomials.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// polyVec is a vector of K polynomials over R_q, i.e. an element of
// R_q^K. Like poly, its domain (Normal or NTT) is tracked at compile time
// via the type parameter D.
type polyVec[D any] struct {
	vec []poly[D]
}

// newPolyVec allocates a zeroed vector of k polynomials.
func newPolyVec[D any](k int) *polyVec[D] {
	return &polyVec[D]{vec: make([]poly[D], k)}
}

// toBytes serializes pv into r, which must be len(pv.vec)*polySize bytes.
func (pv *polyVec[D]) toBytes(r []byte) {
	for i := range pv.vec {
		pv.vec[i].toBytes(r[i*polySize : (i+1)*polySize])
	}
}

// fromBytes deserializes a into pv, which must already be sized to the
// intended K.
func (pv *polyVec[D]) fromBytes(a []byte) {
	for i := range pv.vec {
		pv.vec[i].fromBytes(a[i*polySize : (i+1)*polySize])
	}
}

// compress performs dU-bit lossy compression and serialization of pv into
// r, per the parameter set pr.
func (pv *polyVec[D]) compress(pr *ParameterSet, r []byte) {
	switch pr.dU {
	case 10:
		var t [4]uint16
		off := 0
		for i := range pv.vec {
			c := &pv.vec[i].coeffs
			for j := 0; j < kyberN/4; j++ {
				for k := 0; k < 4; k++ {
					u := c[4*j+k]
					u += (u >> 15) & kyberQ
					t[k] = uint16((uint32(u)<<10 + kyberQ/2) / kyberQ & 0x3ff)
				}
				r[off+0] = byte(t[0])
				r[off+1] = byte((t[0] >> 8) | (t[1] << 2))
				r[off+2] = byte((t[1] >> 6) | (t[2] << 4))
				r[off+3] = byte((t[2] >> 4) | (t[3] << 6))
				r[off+4] = byte(t[3] >> 2)
				off += 5
			}
		}
	case 11:
		var t [8]uint16
		off := 0
		for i := range pv.vec {
			c := &pv.vec[i].coeffs
			for j := 0; j < kyberN/8; j++ {
				for k := 0; k < 8; k++ {
					u := c[8*j+k]
					u += (u >> 15) & kyberQ
					t[k] = uint16((uint32(u)<<11 + kyberQ/2) / kyberQ & 0x7ff)
				}
				r[off+0] = byte(t[0])
				r[off+1] = byte((t[0] >> 8) | (t[1] << 3))
				r[off+2] = byte((t[1] >> 5) | (t[2] << 6))
				r[off+3] = byte(t[2] >> 2)
				r[off+4] = byte((t[2] >> 10) | (t[3] << 1))
				r[off+5] = byte((t[3] >> 7) | (t[4] << 4))
				r[off+6] = byte((t[4] >> 4) | (t[5] << 7))
				r[off+7] = byte(t[5] >> 1)
				r[off+8] = byte((t[5] >> 9) | (t[6] << 2))
				r[off+9] = byte((t[6] >> 6) | (t[7] << 5))
				r[off+10] = byte(t[7] >> 3)
				off += 11
			}
		}
	default:
		panic("kyber: unsupported polyvec compression width")
	}
}

// decompress de-serializes and decompresses a into pv, per the parameter
// set pr.
func (pv *polyVec[D]) decompress(pr *ParameterSet, a []byte) {
	switch pr.dU {
	case 10:
		off := 0
		for i := range pv.vec {
			c := &pv.vec[i].coeffs
			for j := 0; j < kyberN/4; j++ {
				t0 := uint32(a[off+0]) | uint32(a[off+1])<<8
				t1 := uint32(a[off+1])>>2 | uint32(a[off+2])<<6
				t2 := uint32(a[off+2])>>4 | uint32(a[off+3])<<4
				t3 := uint32(a[off+3])>>6 | uint32(a[off+4])<<2
				c[4*j+0] = int16(((t0 & 0x3ff) * kyberQ + 512) >> 10)
				c[4*j+1] = int16(((t1 & 0x3ff) * kyberQ + 512) >> 10)
				c[4*j+2] = int16(((t2 & 0x3ff) * kyberQ + 512) >> 10)
				c[4*j+3] = int16(((t3 & 0x3ff) * kyberQ + 512) >> 10)
				off += 5
			}
		}
	case 11:
		off := 0
		for i := range pv.vec {
			c := &pv.vec[i].coeffs
			for j := 0; j < kyberN/8; j++ {
				t0 := uint32(a[off+0]) | uint32(a[off+1])<<8
				t1 := uint32(a[off+1])>>3 | uint32(a[off+2])<<5
				t2 := uint32(a[off+2])>>6 | uint32(a[off+3])<<2 | uint32(a[off+4])<<10
				t3 := uint32(a[off+4])>>1 | uint32(a[off+5])<<7
				t4 := uint32(a[off+5])>>4 | uint32(a[off+6])<<4
				t5 := uint32(a[off+6])>>7 | uint32(a[off+7])<<1 | uint32(a[off+8])<<9
				t6 := uint32(a[off+8])>>2 | uint32(a[off+9])<<6
				t7 := uint32(a[off+9])>>5 | uint32(a[off+10])<<3
				c[8*j+0] = int16(((t0 & 0x7ff) * kyberQ + 1024) >> 11)
				c[8*j+1] = int16(((t1 & 0x7ff) * kyberQ + 1024) >> 11)
				c[8*j+2] = int16(((t2 & 0x7ff) * kyberQ + 1024) >> 11)
				c[8*j+3] = int16(((t3 & 0x7ff) * kyberQ + 1024) >> 11)
				c[8*j+4] = int16(((t4 & 0x7ff) * kyberQ + 1024) >> 11)
				c[8*j+5] = int16(((t5 & 0x7ff) * kyberQ + 1024) >> 11)
				c[8*j+6] = int16(((t6 & 0x7ff) * kyberQ + 1024) >> 11)
				c[8*j+7] = int16(((t7 & 0x7ff) * kyberQ + 1024) >> 11)
				off += 11
			}
		}
	default:
		panic("kyber: unsupported polyvec compression width")
	}
}

// add computes pv = a + b, without reduction.
func (pv *polyVec[D]) add(a, b *polyVec[D]) {
	for i := range pv.vec {
		pv.vec[i].add(&a.vec[i], &b.vec[i])
	}
}

// reduce applies Barrett reduction to every coefficient of every poly in
// pv.
func (pv *polyVec[D]) reduce() {
	for i := range pv.vec {
		pv.vec[i].reduce()
	}
}

// polyVecNTT computes the forward NTT of every polynomial in pv, returning
// a fresh NTT-domain vector.
func polyVecNTT(pv *polyVec[Normal]) *polyVec[NTT] {
	out := newPolyVec[NTT](len(pv.vec))
	for i := range pv.vec {
		out.vec[i] = *polyNTT(&pv.vec[i])
	}
	return out
}

// polyVecInvNTT computes the inverse NTT of every polynomial in pv,
// returning a fresh normal-domain vector.
func polyVecInvNTT(pv *polyVec[NTT]) *polyVec[Normal] {
	out := newPolyVec[Normal](len(pv.vec))
	for i := range pv.vec {
		out.vec[i] = *polyInvNTT(&pv.vec[i])
	}
	return out
}

// polyVecBasemulAccMontgomery computes the inner product of a and b in NTT
// domain, i.e. sum_i a[i]*b[i], writing the 256-coefficient result into r.
func polyVecBasemulAccMontgomery(r *poly[NTT], a, b *polyVec[NTT]) {
	var t poly[NTT]

	polyBasemulMontgomery(r, &a.vec[0], &b.vec[0])
	for i := 1; i < len(a.vec); i++ {
		polyBasemulMontgomery(&t, &a.vec[i], &b.vec[i])
		r.add(r, &t)
	}
	r.reduce()
}

// compressedSize returns the serialized size in bytes of a K-element
// polyVec compressed under pr.
func compressedSize(pr *ParameterSet) int {
	return pr.polyVecCompressedSize
}

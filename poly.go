// poly.go - Kyber polynomial.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// Normal tags a poly/polyVec as living in the standard-basis domain.
type Normal struct{}

// NTT tags a poly/polyVec as living in the bit-reversed NTT-basis domain.
//
// The reference algorithm does not distinguish these domains in its type
// system; callers are expected to track which domain a buffer is in by
// convention. Here the domain is a compile-time type parameter instead: a
// poly[Normal] and a poly[NTT] are different types, and the only functions
// that cross between them are polyNTT and polyInvNTT. Passing a
// normal-domain polynomial to polyBasemulMontgomery, for instance, is a
// compile error rather than a silent correctness bug.
type NTT struct{}

// poly is an element of R_q = Z_q[X]/(X^n+1), i.e. coeffs[0] +
// X*coeffs[1] + ... + X^255*coeffs[255]. The domain parameter D is never
// read at runtime; it exists purely to make domain confusion a type error.
type poly[D any] struct {
	coeffs [kyberN]int16
}

// toBytes packs two 12-bit coefficients per three bytes, little-endian.
// Coefficients are lifted into the canonical range [0, q) before packing.
func (p *poly[D]) toBytes(r []byte) {
	for i := 0; i < kyberN/2; i++ {
		t0 := p.coeffs[2*i]
		t0 += (t0 >> 15) & kyberQ
		t1 := p.coeffs[2*i+1]
		t1 += (t1 >> 15) & kyberQ

		r[3*i+0] = byte(t0)
		r[3*i+1] = byte((t0 >> 8) | (t1 << 4))
		r[3*i+2] = byte(t1 >> 4)
	}
}

// fromBytes is the inverse of toBytes; recovered coefficients lie in
// [0, q).
func (p *poly[D]) fromBytes(a []byte) {
	for i := 0; i < kyberN/2; i++ {
		p.coeffs[2*i] = int16(a[3*i+0]) | (int16(a[3*i+1]&0x0f) << 8)
		p.coeffs[2*i+1] = int16(a[3*i+1]>>4) | (int16(a[3*i+2]) << 4)
	}
}

// compress performs d-bit lossy compression and serialization of p, where
// d is determined by pr's parameter set (4 bits for K in {2,3}, 5 bits for
// K=4).
func (p *poly[D]) compress(pr *ParameterSet, r []byte) {
	var t [8]uint32

	switch pr.dV {
	case 4:
		for i, off := 0, 0; i < kyberN/8; i, off = i+1, off+4 {
			for j := 0; j < 8; j++ {
				u := p.coeffs[8*i+j]
				u += (u >> 15) & kyberQ
				t[j] = (uint32(u)<<4 + kyberQ/2) / kyberQ & 0xf
			}
			r[off+0] = byte((t[0] | (t[1] << 4)) & 0xff)
			r[off+1] = byte((t[2] | (t[3] << 4)) & 0xff)
			r[off+2] = byte((t[4] | (t[5] << 4)) & 0xff)
			r[off+3] = byte((t[6] | (t[7] << 4)) & 0xff)
		}
	case 5:
		for i, off := 0, 0; i < kyberN/8; i, off = i+1, off+5 {
			for j := 0; j < 8; j++ {
				u := p.coeffs[8*i+j]
				u += (u >> 15) & kyberQ
				t[j] = (uint32(u)<<5 + kyberQ/2) / kyberQ & 0x1f
			}
			r[off+0] = byte((t[0] | (t[1] << 5)) & 0xff)
			r[off+1] = byte((t[1]>>3 | (t[2] << 2) | (t[3] << 7)) & 0xff)
			r[off+2] = byte((t[3]>>1 | (t[4] << 4)) & 0xff)
			r[off+3] = byte((t[4]>>4 | (t[5] << 1) | (t[6] << 6)) & 0xff)
			r[off+4] = byte((t[6]>>2 | (t[7] << 3)) & 0xff)
		}
	default:
		panic("kyber: unsupported poly compression width")
	}
}

// decompress de-serializes and decompresses a; approximate inverse of
// compress (decompression of a lossily compressed value is exact only up
// to the quantization error compress introduced).
func (p *poly[D]) decompress(pr *ParameterSet, a []byte) {
	switch pr.dV {
	case 4:
		for i, off := 0, 0; i < kyberN/2; i, off = i+1, off+1 {
			p.coeffs[2*i+0] = int16((uint32(a[off]&0xf)*kyberQ + 8) >> 4)
			p.coeffs[2*i+1] = int16((uint32(a[off]>>4)*kyberQ + 8) >> 4)
		}
	case 5:
		var t [8]uint32
		for i, off := 0, 0; i < kyberN/8; i, off = i+1, off+5 {
			t[0] = uint32(a[off+0]) >> 0
			t[1] = uint32(a[off+0])>>5 | uint32(a[off+1])<<3
			t[2] = uint32(a[off+1]) >> 2
			t[3] = uint32(a[off+1])>>7 | uint32(a[off+2])<<1
			t[4] = uint32(a[off+2])>>4 | uint32(a[off+3])<<4
			t[5] = uint32(a[off+3]) >> 1
			t[6] = uint32(a[off+3])>>6 | uint32(a[off+4])<<2
			t[7] = uint32(a[off+4]) >> 3

			for j := 0; j < 8; j++ {
				p.coeffs[8*i+j] = int16(((t[j] & 0x1f) * kyberQ + 16) >> 5)
			}
		}
	default:
		panic("kyber: unsupported poly compression width")
	}
}

// add computes p = a + b, without reduction.
func (p *poly[D]) add(a, b *poly[D]) {
	for i := range p.coeffs {
		p.coeffs[i] = a.coeffs[i] + b.coeffs[i]
	}
}

// sub computes p = a - b, without reduction.
func (p *poly[D]) sub(a, b *poly[D]) {
	for i := range p.coeffs {
		p.coeffs[i] = a.coeffs[i] - b.coeffs[i]
	}
}

// reduce applies Barrett reduction to every coefficient of p.
func (p *poly[D]) reduce() {
	for i := range p.coeffs {
		p.coeffs[i] = barrettReduce(p.coeffs[i])
	}
}

// tomont converts every coefficient of p from normal representation to
// Montgomery representation in place.
func (p *poly[D]) tomont() {
	const f = int16((uint64(1) << 32) % kyberQ)
	for i := range p.coeffs {
		p.coeffs[i] = fqmul(p.coeffs[i], f)
	}
}

// polyFromMsg converts a 32-byte message to a polynomial: bit i of msg
// becomes coefficient i, valued (q+1)/2 if set, 0 otherwise. The mask
// computation is constant-time in the bit being tested.
func polyFromMsg(msg []byte) *poly[Normal] {
	p := new(poly[Normal])
	for i, v := range msg[:SymSize] {
		for j := 0; j < 8; j++ {
			mask := -int16((v >> uint(j)) & 1)
			p.coeffs[8*i+j] = mask & ((kyberQ + 1) / 2)
		}
	}
	return p
}

// toMsg converts p back to a 32-byte message; the inverse of
// polyFromMsg up to the rounding polyFromMsg's {0, (q+1)/2} encoding
// survives.
func (p *poly[D]) toMsg(msg []byte) {
	for i := 0; i < SymSize; i++ {
		msg[i] = 0
		for j := 0; j < 8; j++ {
			t := p.coeffs[8*i+j]
			t += (t >> 15) & kyberQ
			bit := byte((uint32(t)<<1+kyberQ/2)/kyberQ) & 1
			msg[i] |= bit << uint(j)
		}
	}
}

// getNoiseEta1 samples a normal-domain polynomial from seed and nonce, close
// to the centered binomial distribution with parameter eta1.
func getNoiseEta1(pr *ParameterSet, seed []byte, nonce byte) *poly[Normal] {
	p := new(poly[Normal])
	buf := prf(pr.eta1*kyberN/4, seed, nonce)
	pr.cbdEta1(&p.coeffs, buf)
	return p
}

// getNoiseEta2 samples a normal-domain polynomial from seed and nonce,
// close to the centered binomial distribution with parameter eta2.
func getNoiseEta2(seed []byte, nonce byte) *poly[Normal] {
	p := new(poly[Normal])
	buf := prf(kyberEta2*kyberN/4, seed, nonce)
	cbdEta2(&p.coeffs, buf)
	return p
}

// polyNTT computes the forward NTT of a normal-domain polynomial, returning
// a fresh NTT-domain polynomial; this is the only way to obtain a
// poly[NTT] other than direct rejection sampling (see sample.go).
func polyNTT(p *poly[Normal]) *poly[NTT] {
	out := &poly[NTT]{coeffs: p.coeffs}
	nttFn(&out.coeffs)
	out.reduce()
	return out
}

// polyInvNTT computes the inverse NTT of an NTT-domain polynomial,
// returning a fresh normal-domain polynomial multiplied by 2^16 via
// invNTTMontFactor. That factor cancels the 2^-16 polyBasemulMontgomery
// leaves in its products; applied directly to polyNTT(p) it yields
// p*2^16 mod q.
func polyInvNTT(p *poly[NTT]) *poly[Normal] {
	out := &poly[Normal]{coeffs: p.coeffs}
	invnttFn(&out.coeffs)
	return out
}

// polyBasemulMontgomery multiplies two NTT-domain polynomials using the
// degree-1 basemul building block, writing the result into r.
func polyBasemulMontgomery(r, a, b *poly[NTT]) {
	for i := 0; i < kyberN/4; i++ {
		var ta, tb, tr [2]int16

		ta[0], ta[1] = a.coeffs[4*i], a.coeffs[4*i+1]
		tb[0], tb[1] = b.coeffs[4*i], b.coeffs[4*i+1]
		basemul(&tr, &ta, &tb, zetas[64+i])
		r.coeffs[4*i+0], r.coeffs[4*i+1] = tr[0], tr[1]

		ta[0], ta[1] = a.coeffs[4*i+2], a.coeffs[4*i+3]
		tb[0], tb[1] = b.coeffs[4*i+2], b.coeffs[4*i+3]
		basemul(&tr, &ta, &tb, -zetas[64+i])
		r.coeffs[4*i+2], r.coeffs[4*i+3] = tr[0], tr[1]
	}
}

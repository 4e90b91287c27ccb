// cbd.go - Centered binomial distribution sampling.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// loadLittleEndian32 loads 4 bytes of x into a uint32, little-endian.
func loadLittleEndian32(x []byte) uint32 {
	return uint32(x[0]) | uint32(x[1])<<8 | uint32(x[2])<<16 | uint32(x[3])<<24
}

// loadLittleEndian24 loads 3 bytes of x into a uint32, little-endian. Only
// needed for eta=3 (Kyber-512's eta1).
func loadLittleEndian24(x []byte) uint32 {
	return uint32(x[0]) | uint32(x[1])<<8 | uint32(x[2])<<16
}

// cbd2 samples kyberN coefficients from the centered binomial distribution
// with parameter eta=2 into coeffs, consuming 4 bytes of buf per 8
// coefficients.
func cbd2(coeffs *[kyberN]int16, buf []byte) {
	for i := 0; i < kyberN/8; i++ {
		t := loadLittleEndian32(buf[4*i : 4*i+4])
		d := t & 0x55555555
		d += (t >> 1) & 0x55555555

		for j := 0; j < 8; j++ {
			a := int16((d >> uint(4*j+0)) & 0x3)
			b := int16((d >> uint(4*j+2)) & 0x3)
			coeffs[8*i+j] = a - b
		}
	}
}

// cbd3 samples kyberN coefficients from the centered binomial distribution
// with parameter eta=3 into coeffs, consuming 3 bytes of buf per 4
// coefficients. Only used for Kyber-512 (eta1=3).
func cbd3(coeffs *[kyberN]int16, buf []byte) {
	for i := 0; i < kyberN/4; i++ {
		t := loadLittleEndian24(buf[3*i : 3*i+3])
		d := t & 0x00249249
		d += (t >> 1) & 0x00249249
		d += (t >> 2) & 0x00249249

		for j := 0; j < 4; j++ {
			a := int16((d >> uint(6*j+0)) & 0x7)
			b := int16((d >> uint(6*j+3)) & 0x7)
			coeffs[4*i+j] = a - b
		}
	}
}

// cbdEta1 samples coeffs according to the parameter set's eta1, which the
// spec constrains to {2,3}.
func (pr *ParameterSet) cbdEta1(coeffs *[kyberN]int16, buf []byte) {
	switch pr.eta1 {
	case 2:
		cbd2(coeffs, buf)
	case 3:
		cbd3(coeffs, buf)
	default:
		panic("kyber: eta1 must be in {2,3}")
	}
}

// cbdEta2 samples coeffs according to eta2, which is fixed at 2 for every
// parameter set.
func cbdEta2(coeffs *[kyberN]int16, buf []byte) {
	cbd2(coeffs, buf)
}

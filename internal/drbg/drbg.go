// Package drbg implements the deterministic random bit generator used by
// NIST's PQC known-answer-test vector generator (PQCgenKAT_kem.c): a
// CTR_DRBG instantiated with AES-256 and no derivation function. It exists
// solely so kyber's KAT tests can reproduce vectors keyed by the 48-byte
// seeds published alongside PQCkemKAT_*.rsp; it has no role in the KEM
// itself and is not a general-purpose CSPRNG.
package drbg

import "crypto/aes"

const (
	keyLen   = 32
	blockLen = aes.BlockSize // 16
	seedLen  = 48            // keyLen + blockLen
)

// DRBG is a CTR_DRBG(AES-256, no df) instance, as specified in NIST SP
// 800-90A section 10.2.1 with the "no additional input" variant that
// PQCgenKAT_kem.c drives.
type DRBG struct {
	key [keyLen]byte
	v   [blockLen]byte
}

// New instantiates a DRBG from a 48-byte seed (entropy input, no
// personalization string).
func New(seed []byte) *DRBG {
	if len(seed) != seedLen {
		panic("drbg: seed must be 48 bytes")
	}

	d := new(DRBG)
	d.update(seed)
	return d
}

// Generate fills out with pseudorandom bytes and advances the internal
// state, per the CTR_DRBG generate algorithm (no additional input,
// reseed-counter tracking omitted since this package never reseeds).
func (d *DRBG) Generate(out []byte) {
	block, err := aes.NewCipher(d.key[:])
	if err != nil {
		panic(err)
	}

	n := 0
	for n < len(out) {
		d.incrementV()

		var buf [blockLen]byte
		block.Encrypt(buf[:], d.v[:])
		n += copy(out[n:], buf[:])
	}

	d.update(nil)
}

// update implements CTR_DRBG_Update: encrypts successive counter values
// under the current key to produce keyLen+blockLen bytes of output, XORs
// providedData into it (treating a nil providedData as all-zero, i.e. a
// no-op XOR), and splits the result into the new key and V.
func (d *DRBG) update(providedData []byte) {
	block, err := aes.NewCipher(d.key[:])
	if err != nil {
		panic(err)
	}

	var temp [keyLen + blockLen]byte
	off := 0
	for off < len(temp) {
		d.incrementV()
		block.Encrypt(temp[off:off+blockLen], d.v[:])
		off += blockLen
	}

	if providedData != nil {
		for i := range temp {
			temp[i] ^= providedData[i]
		}
	}

	copy(d.key[:], temp[:keyLen])
	copy(d.v[:], temp[keyLen:])
}

// incrementV increments the 128-bit counter V as a big-endian integer.
func (d *DRBG) incrementV() {
	for i := blockLen - 1; i >= 0; i-- {
		d.v[i]++
		if d.v[i] != 0 {
			break
		}
	}
}

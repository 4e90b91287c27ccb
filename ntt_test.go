// ntt_test.go - NTT round-trip invariants.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNTTRoundTrip(t *testing.T) {
	require := require.New(t)

	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 100; trial++ {
		var orig [kyberN]int16
		for i := range orig {
			orig[i] = int16(rng.Intn(kyberQ))
		}

		p := &poly[Normal]{coeffs: orig}
		back := polyInvNTT(polyNTT(p))
		back.reduce()

		// polyInvNTT leaves its output multiplied by 2^16 (see invnttRef), so
		// the round trip yields orig*2^16 mod q rather than orig itself.
		for i := range orig {
			require.Equal(mod(int(orig[i])*mont, kyberQ), mod(int(back.coeffs[i]), kyberQ), "coefficient %d", i)
		}
	}
}

// reduce_test.go - Reduction invariants.
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

func TestBarrettReduce(t *testing.T) {
	require := require.New(t)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		a := int16(rng.Intn(2*kyberQ) - kyberQ)
		r := barrettReduce(a)

		require.GreaterOrEqual(int(r), -(kyberQ-1)/2, "lower bound")
		require.LessOrEqual(int(r), (kyberQ-1)/2, "upper bound")
		require.Equal(0, mod(int(a)-int(r), kyberQ), "congruence")
	}
}

func TestMontgomeryReduce(t *testing.T) {
	require := require.New(t)

	// R^-1 mod q, used to check the congruence montgomery_reduce(a) = a*R^-1 mod q.
	const rInv = 169 // computed by hand: 2^16 * 169 mod 3329 == 1.
	require.Equal(1, mod(65536*rInv, kyberQ))

	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 10000; i++ {
		a := int32(rng.Intn(2*kyberQ*(1<<15))) - kyberQ*(1<<15)
		r := montgomeryReduce(a)

		require.Greater(int(r), -kyberQ, "lower bound")
		require.Less(int(r), kyberQ, "upper bound")
		require.Equal(mod(int(a)*rInv, kyberQ), mod(int(r), kyberQ), "congruence")
	}
}

// mod returns the non-negative representative of a mod m.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

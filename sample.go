// sample.go - Uniform rejection sampling and matrix generation.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// genMatrixNBlocks is the number of SHAKE-128 blocks needed so that
// rejection sampling a full polynomial succeeds with high probability on
// the first XOF squeeze, almost always avoiding a second squeeze. Computed
// the same way the reference does, rather than hardcoded, so it tracks
// exactly if any of its inputs ever change.
const genMatrixNBlocks = (12*kyberN/8*(1<<12)/kyberQ + shake128Rate) / shake128Rate

// rejUniform samples len(r) field elements uniformly from [0, q) out of
// buf, three bytes at a time yielding two 12-bit candidates each, rejecting
// candidates >= q. It returns the number of coefficients of r it filled,
// which may be less than len(r) if buf is exhausted first.
func rejUniform(r []int16, buf []byte) int {
	ctr, pos := 0, 0
	for ctr < len(r) && pos+3 <= len(buf) {
		d1 := uint16(buf[pos]) | (uint16(buf[pos+1]&0x0f) << 8)
		d2 := (uint16(buf[pos+1]) >> 4) | (uint16(buf[pos+2]) << 4)
		pos += 3

		if d1 < kyberQ {
			r[ctr] = int16(d1)
			ctr++
		}
		if ctr < len(r) && d2 < kyberQ {
			r[ctr] = int16(d2)
			ctr++
		}
	}
	return ctr
}

// genMatrix deterministically expands a public 32-byte seed into the KxK
// matrix A used by the IND-CPA scheme, with every entry directly sampled
// as an NTT-domain polynomial (uniform noise is invariant under the NTT,
// so there is no need to separately transform after sampling). If
// transposed is true, row i column j is generated from the XOF domain
// seed||i||j instead of seed||j||i, producing A^T instead of A.
func genMatrix(pr *ParameterSet, seed []byte, transposed bool) []*polyVec[NTT] {
	k := pr.k
	a := make([]*polyVec[NTT], k)

	buf := make([]byte, genMatrixNBlocks*shake128Rate)
	for i := 0; i < k; i++ {
		a[i] = newPolyVec[NTT](k)
		for j := 0; j < k; j++ {
			var xof xofState
			if transposed {
				xof = newXOF(seed, byte(i), byte(j))
			} else {
				xof = newXOF(seed, byte(j), byte(i))
			}

			xof.Read(buf)
			ctr := rejUniform(a[i].vec[j].coeffs[:], buf)
			for ctr < kyberN {
				// Uncommon with genMatrixNBlocks blocks (under one entry in
				// a hundred), but the rejection sampler must not leave
				// coefficients unset.
				var extra [shake128Rate]byte
				xof.Read(extra[:])
				ctr += rejUniform(a[i].vec[j].coeffs[ctr:], extra[:])
			}
		}
	}
	return a
}

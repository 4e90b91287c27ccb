// indcpa.go - IND-CPA secure public-key encryption scheme.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// indcpaPublicKey is an unpacked IND-CPA public key: (t, rho) where t is
// the NTT-domain vector A*s+e and rho is the 32-byte seed used to
// regenerate A.
type indcpaPublicKey struct {
	pr  *ParameterSet
	t   *polyVec[NTT]
	rho []byte
}

// indcpaSecretKey is an unpacked IND-CPA secret key: the NTT-domain vector
// s.
type indcpaSecretKey struct {
	pr *ParameterSet
	s  *polyVec[NTT]
}

// packPublicKey serializes pk.
func packPublicKey(pk *indcpaPublicKey) []byte {
	pr := pk.pr
	r := make([]byte, pr.indcpaPublicKeySize)
	pk.t.toBytes(r[:pr.polyVecSize])
	copy(r[pr.polyVecSize:], pk.rho)
	return r
}

// unpackPublicKey deserializes a packed IND-CPA public key.
func unpackPublicKey(pr *ParameterSet, buf []byte) *indcpaPublicKey {
	pk := &indcpaPublicKey{pr: pr, t: newPolyVec[NTT](pr.k)}
	pk.t.fromBytes(buf[:pr.polyVecSize])
	pk.rho = append([]byte(nil), buf[pr.polyVecSize:pr.indcpaPublicKeySize]...)
	return pk
}

// packSecretKey serializes sk.
func packSecretKey(sk *indcpaSecretKey) []byte {
	r := make([]byte, sk.pr.indcpaSecretKeySize)
	sk.s.toBytes(r)
	return r
}

// unpackSecretKey deserializes a packed IND-CPA secret key.
func unpackSecretKey(pr *ParameterSet, buf []byte) *indcpaSecretKey {
	sk := &indcpaSecretKey{pr: pr, s: newPolyVec[NTT](pr.k)}
	sk.s.fromBytes(buf[:pr.indcpaSecretKeySize])
	return sk
}

// packCiphertext serializes a ciphertext (b, v) into a new
// pr.indcpaSize-byte slice.
func packCiphertext(pr *ParameterSet, b *polyVec[Normal], v *poly[Normal]) []byte {
	r := make([]byte, pr.indcpaSize)
	b.compress(pr, r[:pr.polyVecCompressedSize])
	v.compress(pr, r[pr.polyVecCompressedSize:])
	return r
}

// unpackCiphertext deserializes a packed ciphertext into (b, v).
func unpackCiphertext(pr *ParameterSet, buf []byte) (*polyVec[Normal], *poly[Normal]) {
	b := newPolyVec[Normal](pr.k)
	b.decompress(pr, buf[:pr.polyVecCompressedSize])

	v := new(poly[Normal])
	v.decompress(pr, buf[pr.polyVecCompressedSize:pr.indcpaSize])

	return b, v
}

// indcpaKeyGen derives an IND-CPA key pair from a 32-byte seed d, per the
// CRYSTALS-Kyber keygen algorithm (rejection-sample A from rho, sample
// (s, e) from sigma via CBD(eta1), compute t = A*s+e in NTT domain).
func indcpaKeyGen(pr *ParameterSet, d []byte) (*indcpaPublicKey, *indcpaSecretKey) {
	seed := hashG(d)
	rho, sigma := seed[:SymSize], seed[SymSize:]

	a := genMatrix(pr, rho, false)

	s := newPolyVec[Normal](pr.k)
	e := newPolyVec[Normal](pr.k)
	var nonce byte
	for i := 0; i < pr.k; i++ {
		s.vec[i] = *getNoiseEta1(pr, sigma, nonce)
		nonce++
	}
	for i := 0; i < pr.k; i++ {
		e.vec[i] = *getNoiseEta1(pr, sigma, nonce)
		nonce++
	}

	sHat := polyVecNTT(s)
	eHat := polyVecNTT(e)

	tHat := newPolyVec[NTT](pr.k)
	for i := 0; i < pr.k; i++ {
		polyVecBasemulAccMontgomery(&tHat.vec[i], a[i], sHat)
		tHat.vec[i].tomont()
	}
	tHat.add(tHat, eHat)
	tHat.reduce()

	pk := &indcpaPublicKey{pr: pr, t: tHat, rho: append([]byte(nil), rho...)}
	sk := &indcpaSecretKey{pr: pr, s: sHat}
	return pk, sk
}

// indcpaEncrypt encrypts a 32-byte message msg under pk using coins as the
// encryption randomness, producing a ciphertext of pr.indcpaSize bytes.
func indcpaEncrypt(pr *ParameterSet, pk *indcpaPublicKey, msg, coins []byte) []byte {
	at := genMatrix(pr, pk.rho, true)

	r := newPolyVec[Normal](pr.k)
	e1 := newPolyVec[Normal](pr.k)
	var nonce byte
	for i := 0; i < pr.k; i++ {
		r.vec[i] = *getNoiseEta1(pr, coins, nonce)
		nonce++
	}
	for i := 0; i < pr.k; i++ {
		e1.vec[i] = *getNoiseEta2(coins, nonce)
		nonce++
	}
	e2 := getNoiseEta2(coins, nonce)

	rHat := polyVecNTT(r)

	bHat := newPolyVec[NTT](pr.k)
	for i := 0; i < pr.k; i++ {
		polyVecBasemulAccMontgomery(&bHat.vec[i], at[i], rHat)
	}
	b := polyVecInvNTT(bHat)
	b.add(b, e1)

	var vHat poly[NTT]
	polyVecBasemulAccMontgomery(&vHat, pk.t, rHat)
	v := polyInvNTT(&vHat)
	v.add(v, e2)
	v.add(v, polyFromMsg(msg))

	b.reduce()
	v.reduce()

	return packCiphertext(pr, b, v)
}

// indcpaDecrypt decrypts a ciphertext under sk, recovering the 32-byte
// message.
func indcpaDecrypt(pr *ParameterSet, sk *indcpaSecretKey, ct []byte) []byte {
	b, v := unpackCiphertext(pr, ct)

	bHat := polyVecNTT(b)

	var mpHat poly[NTT]
	polyVecBasemulAccMontgomery(&mpHat, sk.s, bHat)
	mp := polyInvNTT(&mpHat)

	mp.sub(v, mp)
	mp.reduce()

	msg := make([]byte, SymSize)
	mp.toMsg(msg)
	return msg
}

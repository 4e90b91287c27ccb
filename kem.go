// kem.go - IND-CCA2 secure key encapsulation mechanism.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"crypto/rand"
	"errors"
	"io"
)

var (
	// ErrInvalidKeySize is the error returned when a serialized key is the
	// wrong length for the ParameterSet it is being parsed against.
	ErrInvalidKeySize = errors.New("kyber: invalid key size")

	// ErrInvalidCipherTextSize is the error returned when a ciphertext is
	// the wrong length for the ParameterSet it is being decapsulated
	// against.
	ErrInvalidCipherTextSize = errors.New("kyber: invalid ciphertext size")

	// ErrInvalidPrivateKey is the error returned when a deserialized
	// private key fails its internal consistency checks.
	ErrInvalidPrivateKey = errors.New("kyber: invalid private key")
)

// PublicKey is a Kyber KEM public key.
type PublicKey struct {
	pr *ParameterSet
	pk *indcpaPublicKey

	hPK [32]byte // H(pk), cached for encapsulation and decapsulation.
}

// Bytes returns the serialized form of k.
func (k *PublicKey) Bytes() []byte {
	return packPublicKey(k.pk)
}

// ParameterSet returns the ParameterSet k was generated under.
func (k *PublicKey) ParameterSet() *ParameterSet {
	return k.pr
}

// PublicKeyFromBytes deserializes a PublicKey from b, which must be
// pr.PublicKeySize() bytes long.
func PublicKeyFromBytes(pr *ParameterSet, b []byte) (*PublicKey, error) {
	if len(b) != pr.publicKeySize {
		return nil, ErrInvalidKeySize
	}

	k := &PublicKey{pr: pr, pk: unpackPublicKey(pr, b)}
	k.hPK = hashH(b)
	return k, nil
}

// PrivateKey is a Kyber KEM private key.
type PrivateKey struct {
	pr *ParameterSet
	sk *indcpaSecretKey

	pub *PublicKey
	z   []byte // Random value used for implicit rejection.
}

// Public returns the PublicKey corresponding to k.
func (k *PrivateKey) Public() *PublicKey {
	return k.pub
}

// Bytes returns the serialized form of k: sk || pk || H(pk) || z.
func (k *PrivateKey) Bytes() []byte {
	r := make([]byte, 0, k.pr.secretKeySize)
	r = append(r, packSecretKey(k.sk)...)
	pkBytes := k.pub.Bytes()
	r = append(r, pkBytes...)
	r = append(r, k.pub.hPK[:]...)
	r = append(r, k.z...)
	return r
}

// PrivateKeyFromBytes deserializes a PrivateKey from b, which must be
// pr.PrivateKeySize() bytes long.
func PrivateKeyFromBytes(pr *ParameterSet, b []byte) (*PrivateKey, error) {
	if len(b) != pr.secretKeySize {
		return nil, ErrInvalidKeySize
	}

	off := 0
	skBytes := b[off : off+pr.indcpaSecretKeySize]
	off += pr.indcpaSecretKeySize
	pkBytes := b[off : off+pr.indcpaPublicKeySize]
	off += pr.indcpaPublicKeySize
	hPK := b[off : off+SymSize]
	off += SymSize
	z := b[off : off+SymSize]

	pub, err := PublicKeyFromBytes(pr, pkBytes)
	if err != nil {
		return nil, err
	}
	if !verify(hPK, pub.hPK[:]) {
		return nil, ErrInvalidPrivateKey
	}

	k := &PrivateKey{
		pr:  pr,
		sk:  unpackSecretKey(pr, skBytes),
		pub: pub,
		z:   append([]byte(nil), z...),
	}
	return k, nil
}

// GenerateKeyPair generates a fresh Kyber key pair for the given
// ParameterSet, using rng as the source of entropy. If rng is nil,
// crypto/rand.Reader is used.
func GenerateKeyPair(pr *ParameterSet, rng io.Reader) (*PrivateKey, error) {
	if rng == nil {
		rng = rand.Reader
	}

	var d [SymSize]byte
	if _, err := io.ReadFull(rng, d[:]); err != nil {
		return nil, err
	}
	var z [SymSize]byte
	if _, err := io.ReadFull(rng, z[:]); err != nil {
		return nil, err
	}

	return generateKeyPairFromSeed(pr, d[:], z[:]), nil
}

// generateKeyPairFromSeed builds a key pair deterministically from the
// keygen seed d and the implicit-rejection value z, bypassing the host
// random source. This is the hook known-answer tests use to reproduce a
// fixed key pair; it is deliberately unexported; per the KEM's randomness
// contract, injected seeds must never be reachable from the public API.
func generateKeyPairFromSeed(pr *ParameterSet, d, z []byte) *PrivateKey {
	pk, sk := indcpaKeyGen(pr, d)

	pub := &PublicKey{pr: pr, pk: pk}
	pub.hPK = hashH(pub.Bytes())

	return &PrivateKey{
		pr:  pr,
		sk:  sk,
		pub: pub,
		z:   append([]byte(nil), z...),
	}
}

// KEMEncrypt generates a fresh shared secret and its encapsulation under
// pub, using rng as the source of entropy for the encapsulated message. If
// rng is nil, crypto/rand.Reader is used. It returns (ciphertext,
// sharedSecret).
func KEMEncrypt(rng io.Reader, pub *PublicKey) (ciphertext, sharedSecret []byte, err error) {
	if rng == nil {
		rng = rand.Reader
	}

	var m [SymSize]byte
	if _, err := io.ReadFull(rng, m[:]); err != nil {
		return nil, nil, err
	}
	return kemEncryptFromSeed(pub, m[:])
}

// kemEncryptFromSeed encapsulates deterministically from the injected
// message seed m, bypassing the host random source. Unexported for the
// same reason as generateKeyPairFromSeed.
func kemEncryptFromSeed(pub *PublicKey, m []byte) (ciphertext, sharedSecret []byte, err error) {
	mHash := hashH(m)
	return kemEncryptDeterministic(pub, mHash[:])
}

// kemEncryptDeterministic performs the encapsulation side of the
// Fujisaki-Okamoto transform for a caller-supplied message hash,
// factored out so that known-answer tests can drive it with a fixed
// message instead of fresh randomness.
func kemEncryptDeterministic(pub *PublicKey, m []byte) (ciphertext, sharedSecret []byte, err error) {
	buf := make([]byte, 0, SymSize+len(pub.hPK))
	buf = append(buf, m...)
	buf = append(buf, pub.hPK[:]...)
	kr := hashG(buf)
	kBar, coins := kr[:SymSize], kr[SymSize:]

	ct := indcpaEncrypt(pub.pr, pub.pk, m, coins)

	hCT := hashH(ct)
	ss := kdf(SymSize, append(append([]byte(nil), kBar...), hCT[:]...))

	return ct, ss, nil
}

// KEMDecrypt decapsulates ciphertext using priv, recovering the shared
// secret established by the corresponding KEMEncrypt call. KEMDecrypt
// never fails on malformed ciphertexts of the correct length: per the
// Fujisaki-Okamoto transform with implicit rejection, an invalid
// ciphertext instead yields a shared secret pseudorandomly derived from
// priv's rejection value z, indistinguishable from a valid one to a
// computationally bounded adversary without priv.
func KEMDecrypt(priv *PrivateKey, ciphertext []byte) ([]byte, error) {
	pr := priv.pr
	if len(ciphertext) != pr.cipherTextSize {
		return nil, ErrInvalidCipherTextSize
	}

	mp := indcpaDecrypt(pr, priv.sk, ciphertext)

	buf := make([]byte, 0, SymSize+len(priv.pub.hPK))
	buf = append(buf, mp...)
	buf = append(buf, priv.pub.hPK[:]...)
	kr := hashG(buf)
	kBar, coins := kr[:SymSize], kr[SymSize:]

	ct2 := indcpaEncrypt(pr, priv.pub.pk, mp, coins)

	hCT := hashH(ciphertext)

	// Implicit rejection: compute the fallback key material unconditionally,
	// then select between it and kBar without branching on the comparison
	// result, so that the timing of this function does not depend on
	// ciphertext validity.
	rejectKey := kdf(SymSize, append(append([]byte(nil), priv.z...), hCT[:]...))
	realKey := kdf(SymSize, append(append([]byte(nil), kBar...), hCT[:]...))

	sel := notEqual(ct2, ciphertext)
	ss := append([]byte(nil), realKey...)
	cmov(ss, rejectKey, sel)

	return ss, nil
}

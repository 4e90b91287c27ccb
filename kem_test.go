// kem_test.go - Kyber KEM tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const nTests = 100

var allParams = []*ParameterSet{
	Kyber512,
	Kyber768,
	Kyber1024,
}

func TestKEM(t *testing.T) {
	for _, p := range allParams {
		p := p
		t.Run(p.Name()+"_Keys", func(t *testing.T) { doTestKEMKeys(t, p) })
		t.Run(p.Name()+"_Invalid_SecretKey", func(t *testing.T) { doTestKEMInvalidSk(t, p) })
		t.Run(p.Name()+"_Invalid_CipherText", func(t *testing.T) { doTestKEMInvalidCipherText(t, p) })
	}
}

func doTestKEMKeys(t *testing.T, p *ParameterSet) {
	require := require.New(t)

	t.Logf("PrivateKeySize(): %v", p.PrivateKeySize())
	t.Logf("PublicKeySize(): %v", p.PublicKeySize())
	t.Logf("CipherTextSize(): %v", p.CipherTextSize())

	for i := 0; i < nTests; i++ {
		sk, err := GenerateKeyPair(p, rand.Reader)
		require.NoError(err, "GenerateKeyPair()")
		pk := sk.Public()

		// Test serialization.
		b := sk.Bytes()
		require.Len(b, p.PrivateKeySize(), "sk.Bytes(): Length")
		sk2, err := PrivateKeyFromBytes(p, b)
		require.NoError(err, "PrivateKeyFromBytes(b)")
		require.Equal(sk.Bytes(), sk2.Bytes(), "sk round-trip")

		b = pk.Bytes()
		require.Len(b, p.PublicKeySize(), "pk.Bytes(): Length")
		pk2, err := PublicKeyFromBytes(p, b)
		require.NoError(err, "PublicKeyFromBytes(b)")
		require.Equal(pk.Bytes(), pk2.Bytes(), "pk round-trip")

		// Test encrypt/decrypt.
		ct, ss, err := KEMEncrypt(rand.Reader, pk)
		require.NoError(err, "KEMEncrypt()")
		require.Len(ct, p.CipherTextSize(), "KEMEncrypt(): ct Length")
		require.Len(ss, SymSize, "KEMEncrypt(): ss Length")

		ss2, err := KEMDecrypt(sk, ct)
		require.NoError(err, "KEMDecrypt()")
		require.Equal(ss, ss2, "KEMDecrypt(): ss")
	}
}

func doTestKEMInvalidSk(t *testing.T, p *ParameterSet) {
	require := require.New(t)

	for i := 0; i < nTests; i++ {
		// Alice generates a key pair.
		skA, err := GenerateKeyPair(p, rand.Reader)
		require.NoError(err, "GenerateKeyPair()")

		// Bob encapsulates to Alice's public key.
		sendB, keyB, err := KEMEncrypt(rand.Reader, skA.Public())
		require.NoError(err, "KEMEncrypt()")

		// Corrupt Alice's secret polynomial vector and re-parse.
		mutated := skA.Bytes()
		var junk [1]byte
		_, err = rand.Read(junk[:])
		require.NoError(err, "rand.Read()")
		mutated[0] ^= junk[0] | 1

		skA2, err := PrivateKeyFromBytes(p, mutated)
		require.NoError(err, "PrivateKeyFromBytes(): consistency check only covers pk/H(pk), not sk")

		keyA, err := KEMDecrypt(skA2, sendB)
		require.NoError(err, "KEMDecrypt()")
		require.NotEqual(keyA, keyB, "KEMDecrypt(): ss should differ after sk corruption")
	}
}

func doTestKEMInvalidCipherText(t *testing.T, p *ParameterSet) {
	require := require.New(t)
	var rawPos [2]byte

	ciphertextSize := p.CipherTextSize()

	for i := 0; i < nTests; i++ {
		_, err := rand.Read(rawPos[:])
		require.NoError(err, "rand.Read()")
		pos := (int(rawPos[0]) << 8) | int(rawPos[1])

		// Alice generates a key pair.
		skA, err := GenerateKeyPair(p, rand.Reader)
		require.NoError(err, "GenerateKeyPair()")

		// Bob encapsulates to Alice's public key.
		sendB, keyB, err := KEMEncrypt(rand.Reader, skA.Public())
		require.NoError(err, "KEMEncrypt()")

		// Flip some bits (XOR 23) of one byte somewhere in the ciphertext.
		sendB[pos%ciphertextSize] ^= 23

		keyA, err := KEMDecrypt(skA, sendB)
		require.NoError(err, "KEMDecrypt()")
		require.NotEqual(keyA, keyB, "KEMDecrypt(): ss should differ for tampered ct")
	}
}

func BenchmarkKEM(b *testing.B) {
	for _, p := range allParams {
		p := p
		b.Run(p.Name()+"_GenerateKeyPair", func(b *testing.B) { doBenchKEMGenerateKeyPair(b, p) })
		b.Run(p.Name()+"_KEMEncrypt", func(b *testing.B) { doBenchKEMEncDec(b, p, true) })
		b.Run(p.Name()+"_KEMDecrypt", func(b *testing.B) { doBenchKEMEncDec(b, p, false) })
	}
}

func doBenchKEMGenerateKeyPair(b *testing.B, p *ParameterSet) {
	for i := 0; i < b.N; i++ {
		if _, err := GenerateKeyPair(p, rand.Reader); err != nil {
			b.Fatalf("GenerateKeyPair(): %v", err)
		}
	}
}

func doBenchKEMEncDec(b *testing.B, p *ParameterSet, isEnc bool) {
	b.StopTimer()
	for i := 0; i < b.N; i++ {
		sk, err := GenerateKeyPair(p, rand.Reader)
		if err != nil {
			b.Fatalf("GenerateKeyPair(): %v", err)
		}

		if isEnc {
			b.StartTimer()
		}

		sendB, keyB, err := KEMEncrypt(rand.Reader, sk.Public())
		if err != nil {
			b.Fatalf("KEMEncrypt(): %v", err)
		}
		if isEnc {
			b.StopTimer()
		} else {
			b.StartTimer()
		}

		keyA, err := KEMDecrypt(sk, sendB)
		if !isEnc {
			b.StopTimer()
		}
		if err != nil {
			b.Fatalf("KEMDecrypt(): %v", err)
		}

		if !bytes.Equal(keyA, keyB) {
			b.Fatalf("KEMDecrypt(): key mismatch")
		}
	}
}

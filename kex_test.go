// kex_test.go - Kyber key exchange tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAKE(t *testing.T) {
	for _, p := range allParams {
		p := p
		t.Run(p.Name()+"_UAKE", func(t *testing.T) { doTestUAKE(t, p) })
		t.Run(p.Name()+"_AKE", func(t *testing.T) { doTestAKE(t, p) })
	}
}

func doTestUAKE(t *testing.T, p *ParameterSet) {
	require := require.New(t)

	t.Logf("UAKEInitiatorMessageSize(): %v", p.UAKEInitiatorMessageSize())
	t.Logf("UAKEResponderMessageSize(): %v", p.UAKEResponderMessageSize())

	for i := 0; i < nTests; i++ {
		// Generate the responder key pair.
		skB, err := GenerateKeyPair(p, rand.Reader)
		require.NoError(err, "GenerateKeyPair()")

		// Create the initiator state.
		stateA, err := NewUAKEInitiatorState(rand.Reader, skB.Public())
		require.NoError(err, "NewUAKEInitiatorState()")
		require.Len(stateA.Message, p.UAKEInitiatorMessageSize(), "stateA.Message: Length")

		// Create the responder message and shared secret.
		msgB, ssB := UAKEResponderShared(rand.Reader, skB, stateA.Message)
		require.Len(msgB, p.UAKEResponderMessageSize(), "UAKEResponderShared(): msgB Length")
		require.Len(ssB, SymSize, "UAKEResponderShared(): ssB Length")

		// Create the initiator shared secret.
		ssA := stateA.Shared(msgB)
		require.Equal(ssA, ssB, "Shared secret mismatch")
	}
}

func doTestAKE(t *testing.T, p *ParameterSet) {
	require := require.New(t)

	t.Logf("AKEInitiatorMessageSize(): %v", p.AKEInitiatorMessageSize())
	t.Logf("AKEResponderMessageSize(): %v", p.AKEResponderMessageSize())

	for i := 0; i < nTests; i++ {
		// Generate the initiator and responder key pairs.
		skB, err := GenerateKeyPair(p, rand.Reader)
		require.NoError(err, "GenerateKeyPair(): Responder")

		skA, err := GenerateKeyPair(p, rand.Reader)
		require.NoError(err, "GenerateKeyPair(): Initiator")

		// Create the initiator state.
		stateA, err := NewAKEInitiatorState(rand.Reader, skB.Public())
		require.NoError(err, "NewAKEInitiatorState()")
		require.Len(stateA.Message, p.AKEInitiatorMessageSize(), "stateA.Message: Length")

		// Create the responder message and shared secret.
		msgB, ssB := AKEResponderShared(rand.Reader, skB, stateA.Message, skA.Public())
		require.Len(msgB, p.AKEResponderMessageSize(), "AKEResponderShared(): msgB Length")
		require.Len(ssB, SymSize, "AKEResponderShared(): ssB Length")

		// Create the initiator shared secret.
		ssA := stateA.Shared(msgB, skA)
		require.Equal(ssA, ssB, "Shared secret mismatch")
	}
}

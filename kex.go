// kex.go - Kyber key exchange.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"errors"
	"io"

	"golang.org/x/crypto/sha3"
)

var (
	// ErrInvalidMessageSize is the error thrown via a panic when an
	// initiator or responder message is an invalid size.
	ErrInvalidMessageSize = errors.New("kyber: invalid message size")

	// ErrParameterSetMismatch is the error thrown via a panic when there
	// is a mismatch between parameter sets.
	ErrParameterSetMismatch = errors.New("kyber: parameter set mismatch")
)

// UAKEInitiatorMessageSize returns the size of the initiator UAKE message
// in bytes.
func (pr *ParameterSet) UAKEInitiatorMessageSize() int {
	return pr.PublicKeySize() + pr.CipherTextSize()
}

// UAKEResponderMessageSize returns the size of the responder UAKE message
// in bytes.
func (pr *ParameterSet) UAKEResponderMessageSize() int {
	return pr.CipherTextSize()
}

// UAKEInitiatorState is an initiator unilaterally-authenticated key
// exchange instance. Each instance MUST only be used for one key exchange
// and never reused.
type UAKEInitiatorState struct {
	// Message is the UAKE message to send to the responder.
	Message []byte

	eSk *PrivateKey
	tk  []byte
}

// Shared generates a shared secret for the given UAKE instance and
// responder message.
//
// Providing a message that is obviously malformed (wrong length) results
// in a panic.
func (s *UAKEInitiatorState) Shared(recv []byte) (sharedSecret []byte) {
	pr := s.eSk.pr
	if len(recv) != pr.CipherTextSize() {
		panic(ErrInvalidMessageSize)
	}

	tk, err := KEMDecrypt(s.eSk, recv)
	if err != nil {
		panic(err)
	}

	xof := sha3.NewShake256()
	xof.Write(tk)
	xof.Write(s.tk)
	sharedSecret = make([]byte, SymSize)
	xof.Read(sharedSecret)

	return
}

// NewUAKEInitiatorState creates a new initiator UAKE instance addressed to
// pub.
func NewUAKEInitiatorState(rng io.Reader, pub *PublicKey) (*UAKEInitiatorState, error) {
	s := new(UAKEInitiatorState)
	s.Message = make([]byte, 0, pub.pr.UAKEInitiatorMessageSize())

	var err error
	s.eSk, err = GenerateKeyPair(pub.pr, rng)
	if err != nil {
		return nil, err
	}
	s.Message = append(s.Message, s.eSk.Public().Bytes()...)

	var ct []byte
	ct, s.tk, err = KEMEncrypt(rng, pub)
	if err != nil {
		return nil, err
	}
	s.Message = append(s.Message, ct...)

	return s, nil
}

// UAKEResponderShared generates a responder message and shared secret
// given an initiator UAKE message.
//
// Providing a message that is obviously malformed (wrong length) results
// in a panic.
func UAKEResponderShared(rng io.Reader, sk *PrivateKey, recv []byte) (message, sharedSecret []byte) {
	pr := sk.pr
	pkLen := pr.PublicKeySize()

	if len(recv) != pr.UAKEInitiatorMessageSize() {
		panic(ErrInvalidMessageSize)
	}
	rawPk, ct := recv[:pkLen], recv[pkLen:]
	pk, err := PublicKeyFromBytes(pr, rawPk)
	if err != nil {
		panic(err)
	}

	xof := sha3.NewShake256()

	message, tk, err := KEMEncrypt(rng, pk)
	if err != nil {
		panic(err)
	}
	xof.Write(tk)

	tk, err = KEMDecrypt(sk, ct)
	if err != nil {
		panic(err)
	}
	xof.Write(tk)

	sharedSecret = make([]byte, SymSize)
	xof.Read(sharedSecret)

	return
}

// AKEInitiatorMessageSize returns the size of the initiator AKE message in
// bytes.
func (pr *ParameterSet) AKEInitiatorMessageSize() int {
	return pr.PublicKeySize() + pr.CipherTextSize()
}

// AKEResponderMessageSize returns the size of the responder AKE message in
// bytes.
func (pr *ParameterSet) AKEResponderMessageSize() int {
	return 2 * pr.CipherTextSize()
}

// AKEInitiatorState is an initiator mutually-authenticated key exchange
// instance. Each instance MUST only be used for one key exchange and
// never reused.
type AKEInitiatorState struct {
	// Message is the AKE message to send to the responder.
	Message []byte

	eSk *PrivateKey
	tk  []byte
}

// Shared generates a shared secret for the given AKE instance, responder
// message, and long term initiator private key.
//
// Providing a malformed responder message, or a private key using a
// different ParameterSet than the AKEInitiatorState, results in a panic.
func (s *AKEInitiatorState) Shared(recv []byte, initiatorPrivateKey *PrivateKey) (sharedSecret []byte) {
	pr := s.eSk.pr

	if initiatorPrivateKey.pr != pr {
		panic(ErrParameterSetMismatch)
	}
	if len(recv) != pr.AKEResponderMessageSize() {
		panic(ErrInvalidMessageSize)
	}
	ctLen := pr.CipherTextSize()

	xof := sha3.NewShake256()

	tk, err := KEMDecrypt(s.eSk, recv[:ctLen])
	if err != nil {
		panic(err)
	}
	xof.Write(tk)

	tk, err = KEMDecrypt(initiatorPrivateKey, recv[ctLen:])
	if err != nil {
		panic(err)
	}
	xof.Write(tk)

	xof.Write(s.tk)
	sharedSecret = make([]byte, SymSize)
	xof.Read(sharedSecret)

	return
}

// NewAKEInitiatorState creates a new initiator AKE instance addressed to
// pub.
func NewAKEInitiatorState(rng io.Reader, pub *PublicKey) (*AKEInitiatorState, error) {
	s := new(AKEInitiatorState)

	// Identical to the UAKE case up to this point, so just reuse it.
	us, err := NewUAKEInitiatorState(rng, pub)
	if err != nil {
		return nil, err
	}

	s.Message = us.Message
	s.eSk = us.eSk
	s.tk = us.tk

	return s, nil
}

// AKEResponderShared generates a responder message and shared secret given
// an initiator AKE message and long term initiator public key.
//
// Providing a malformed initiator message, or a peer public key using a
// different ParameterSet than sk, results in a panic.
func AKEResponderShared(rng io.Reader, sk *PrivateKey, recv []byte, peerPublicKey *PublicKey) (message, sharedSecret []byte) {
	pr := sk.pr
	pkLen := pr.PublicKeySize()

	if peerPublicKey.pr != pr {
		panic(ErrParameterSetMismatch)
	}
	if len(recv) != pr.AKEInitiatorMessageSize() {
		panic(ErrInvalidMessageSize)
	}
	rawPk, ct := recv[:pkLen], recv[pkLen:]
	pk, err := PublicKeyFromBytes(pr, rawPk)
	if err != nil {
		panic(err)
	}

	message = make([]byte, 0, pr.AKEResponderMessageSize())

	xof := sha3.NewShake256()
	var tmp, tk []byte

	tmp, tk, err = KEMEncrypt(rng, pk)
	if err != nil {
		panic(err)
	}
	xof.Write(tk)
	message = append(message, tmp...)

	tmp, tk, err = KEMEncrypt(rng, peerPublicKey)
	if err != nil {
		panic(err)
	}
	xof.Write(tk)
	message = append(message, tmp...)

	tk, err = KEMDecrypt(sk, ct)
	if err != nil {
		panic(err)
	}
	xof.Write(tk)

	sharedSecret = make([]byte, SymSize)
	xof.Read(sharedSecret)

	return
}

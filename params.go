// params.go - Kyber parameterization.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

const (
	// SymSize is the size of the shared key (and certain internal parameters
	// such as hashes and seeds) in bytes.
	SymSize = 32

	kyberN = 256
	kyberQ = 3329

	// kyberEta2 is fixed across all parameter sets; only eta1 varies with K.
	kyberEta2 = 2

	polySize = 384
)

var (
	// Kyber512 is the Kyber-512 parameter set, which aims to provide security
	// equivalent to AES-128.
	Kyber512 = newParameterSet("Kyber-512", 2)

	// Kyber768 is the Kyber-768 parameter set, which aims to provide security
	// equivalent to AES-192.
	Kyber768 = newParameterSet("Kyber-768", 3)

	// Kyber1024 is the Kyber-1024 parameter set, which aims to provide
	// security equivalent to AES-256.
	Kyber1024 = newParameterSet("Kyber-1024", 4)
)

// ParameterSet is a Kyber parameter set. It is the only stateful object in
// the core; all derived byte sizes and sampling widths are computed once at
// construction and are immutable thereafter, so a *ParameterSet may safely
// be shared across goroutines.
type ParameterSet struct {
	name string

	k    int
	eta1 int
	eta2 int
	dU   int // polyvec compression width, bits/coefficient
	dV   int // poly compression width, bits/coefficient

	polyVecSize           int
	polyVecCompressedSize int
	polyCompressedSize    int

	indcpaMsgSize       int
	indcpaPublicKeySize int
	indcpaSecretKeySize int
	indcpaSize          int

	publicKeySize  int
	secretKeySize  int
	cipherTextSize int
}

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string {
	return p.name
}

// K returns the module rank of a given ParameterSet.
func (p *ParameterSet) K() int {
	return p.k
}

// PublicKeySize returns the size of a public key in bytes.
func (p *ParameterSet) PublicKeySize() int {
	return p.publicKeySize
}

// PrivateKeySize returns the size of a private key in bytes.
func (p *ParameterSet) PrivateKeySize() int {
	return p.secretKeySize
}

// CipherTextSize returns the size of a cipher text in bytes.
func (p *ParameterSet) CipherTextSize() int {
	return p.cipherTextSize
}

func newParameterSet(name string, k int) *ParameterSet {
	var p ParameterSet

	p.name = name
	p.k = k
	p.eta2 = kyberEta2
	switch k {
	case 2:
		p.eta1 = 3
		p.dV = 4
		p.polyCompressedSize = 128
		p.dU = 10
		p.polyVecCompressedSize = k * 320
	case 3:
		p.eta1 = 2
		p.dV = 4
		p.polyCompressedSize = 128
		p.dU = 10
		p.polyVecCompressedSize = k * 320
	case 4:
		p.eta1 = 2
		p.dV = 5
		p.polyCompressedSize = 160
		p.dU = 11
		p.polyVecCompressedSize = k * 352
	default:
		panic("kyber: k must be in {2,3,4}")
	}

	p.polyVecSize = k * polySize

	p.indcpaMsgSize = SymSize
	p.indcpaPublicKeySize = p.polyVecSize + SymSize
	p.indcpaSecretKeySize = p.polyVecSize
	p.indcpaSize = p.polyVecCompressedSize + p.polyCompressedSize

	p.publicKeySize = p.indcpaPublicKeySize
	p.secretKeySize = p.indcpaSecretKeySize + p.indcpaPublicKeySize + 2*SymSize // H(pk) and z
	p.cipherTextSize = p.indcpaSize

	return &p
}

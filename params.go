// params.go - AKCN-MLWE parameterization.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package akcn

const (
	// SymBytes is the size of the shared secret (and certain internal
	// parameters such as hashes and seeds) in bytes.
	SymBytes = 32

	ringN = 256
	ringQ = 7681

	// polyBytes is the size of a canonically packed (13 bits/coefficient)
	// polynomial.
	polyBytes = 416

	// polyVecCompressedBytes is the size of a single 10-bit compressed
	// polynomial within a compressed polynomial vector.
	polyVecCompressedBytes = 320
)

var (
	// AKCN512 targets a security level roughly comparable to AES-128.
	//
	// This parameter set has a 1760 byte private key, 864 byte public key,
	// and a 1056 byte ciphertext.
	AKCN512 = newParameterSet("AKCN-512", 2)

	// AKCN768 targets a security level roughly comparable to AES-192.
	//
	// This parameter set has a 2592 byte private key, 1280 byte public key,
	// and a 1376 byte ciphertext.
	AKCN768 = newParameterSet("AKCN-768", 3)

	// AKCN1024 targets a security level roughly comparable to AES-256.
	//
	// This parameter set has a 3424 byte private key, 1696 byte public key,
	// and a 1696 byte ciphertext.
	AKCN1024 = newParameterSet("AKCN-1024", 4)

	allParams = []*ParameterSet{AKCN512, AKCN768, AKCN1024}
)

// ParameterSet is an AKCN-MLWE parameter set, fixing the module rank k (and
// thus the noise parameter eta) while n and q stay fixed ring-wide constants.
type ParameterSet struct {
	name string

	k   int
	eta int

	polyVecSize           int
	polyVecCompressedSize int

	indcpaMsgSize        int
	indcpaPublicKeySize  int
	indcpaSecretKeySize  int
	indcpaCipherTextSize int

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

// CipherTextSize returns the size of a ciphertext in bytes.
func (p *ParameterSet) CipherTextSize() int {
	return p.cipherTextSize
}

func newParameterSet(name string, k int) *ParameterSet {
	var p ParameterSet

	p.name = name
	p.k = k
	switch k {
	case 2:
		p.eta = 5
	case 3:
		p.eta = 4
	case 4:
		p.eta = 3
	default:
		panic("akcn: k must be in {2,3,4}")
	}

	p.polyVecSize = k * polyBytes
	p.polyVecCompressedSize = k * polyVecCompressedBytes

	p.indcpaMsgSize = SymBytes
	// t is packed, not compressed: spec.md §4.6/§6 define the public key as
	// polyvec_tobytes(t) || ρ, the canonical lossless encoding.
	p.indcpaPublicKeySize = p.polyVecSize + SymBytes
	p.indcpaSecretKeySize = p.polyVecSize
	// v is packed, not compressed, in this variant: the ciphertext is the
	// compressed u vector followed by a canonically packed v polynomial.
	p.indcpaCipherTextSize = p.polyVecCompressedSize + polyBytes

	p.publicKeySize = p.indcpaPublicKeySize
	p.secretKeySize = p.indcpaSecretKeySize + p.indcpaPublicKeySize + 2*SymBytes // +H(pk), +z
	p.cipherTextSize = p.indcpaCipherTextSize

	return &p
}

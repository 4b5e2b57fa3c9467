// indcpa.go - IND-CPA public-key encryption primitive underlying the KEM.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package akcn

import (
	"io"

	"golang.org/x/crypto/sha3"
)

// packPublicKey serializes the public key as the concatenation of the
// canonically packed vector of polynomials t and the public seed used to
// regenerate the matrix A. Unlike u in the ciphertext, t is packed
// rather than compressed: spec.md defines the public key as
// polyvec_tobytes(t) || ρ.
func packPublicKey(r []byte, pk *polyVec, seed []byte) {
	pk.toBytes(r)
	copy(r[len(pk.vec)*polyBytes:], seed[:SymBytes])
}

// unpackPublicKey de-serializes a public key from a byte array; inverse of
// packPublicKey.
func unpackPublicKey(pk *polyVec, seed, packedPk []byte) {
	pk.fromBytes(packedPk)

	off := len(pk.vec) * polyBytes
	copy(seed, packedPk[off:off+SymBytes])
}

// packCiphertext serializes the ciphertext as the concatenation of the
// compressed vector of polynomials u and the canonically packed
// polynomial v. Unlike a Kyber-style scheme, v is packed rather than
// compressed in this variant.
func packCiphertext(r []byte, u *polyVec, v *poly) {
	u.compress(r)
	v.toBytes(r[u.compressedSize():])
}

// unpackCiphertext de-serializes a ciphertext from a byte array;
// approximate inverse of packCiphertext.
func unpackCiphertext(u *polyVec, v *poly, c []byte) {
	u.decompress(c)
	v.fromBytes(c[u.compressedSize():])
}

// packSecretKey canonically serializes the secret key.
func packSecretKey(r []byte, sk *polyVec) {
	sk.toBytes(r)
}

// unpackSecretKey de-serializes the secret key; inverse of packSecretKey.
func unpackSecretKey(sk *polyVec, packedSk []byte) {
	sk.fromBytes(packedSk)
}

// genMatrix deterministically expands the public matrix A (or its
// transpose) from a seed via rejection sampling on SHAKE-128 output.
// Entries that survive rejection look uniformly random mod ringQ.
func genMatrix(a []polyVec, seed []byte, transposed bool) {
	const (
		shake128Rate = 168 // xof.BlockSize() is not a constant.
		maxBlocks    = 4
	)
	var buf [shake128Rate * maxBlocks]byte

	var extSeed [SymBytes + 2]byte
	copy(extSeed[:SymBytes], seed)

	xof := sha3.NewShake128()

	for i, v := range a {
		for j, p := range v.vec {
			if transposed {
				extSeed[SymBytes] = byte(i)
				extSeed[SymBytes+1] = byte(j)
			} else {
				extSeed[SymBytes] = byte(j)
				extSeed[SymBytes+1] = byte(i)
			}

			xof.Write(extSeed[:])
			xof.Read(buf[:])

			for ctr, pos, maxPos := 0, 0, len(buf); ctr < ringN; {
				val := (uint16(buf[pos]) | (uint16(buf[pos+1]) << 8)) & 0x1fff
				if val < ringQ {
					p.coeffs[ctr] = val
					ctr++
				}
				if pos += 2; pos == maxPos {
					// On the unlikely chance 4 blocks is insufficient,
					// incrementally squeeze out 1 block at a time.
					xof.Read(buf[:shake128Rate])
					pos, maxPos = 0, shake128Rate
				}
			}

			xof.Reset()
		}
	}
}

type indcpaPublicKey struct {
	packed []byte
	h      [32]byte
}

func (pk *indcpaPublicKey) toBytes() []byte {
	return pk.packed
}

func (pk *indcpaPublicKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaPublicKeySize {
		return ErrInvalidKeySize
	}

	pk.packed = make([]byte, len(b))
	copy(pk.packed, b)
	pk.h = sha3.Sum256(b)

	return nil
}

type indcpaSecretKey struct {
	packed []byte
}

func (sk *indcpaSecretKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaSecretKeySize {
		return ErrInvalidKeySize
	}

	sk.packed = make([]byte, len(b))
	copy(sk.packed, b)

	return nil
}

// indcpaKeyPair generates a public and private key for the CPA-secure
// public-key encryption primitive underlying the KEM.
func (p *ParameterSet) indcpaKeyPair(rng io.Reader) (*indcpaPublicKey, *indcpaSecretKey, error) {
	buf := make([]byte, SymBytes+SymBytes)
	if _, err := io.ReadFull(rng, buf[:SymBytes]); err != nil {
		return nil, nil, err
	}

	sk := &indcpaSecretKey{
		packed: make([]byte, p.indcpaSecretKeySize),
	}
	pk := &indcpaPublicKey{
		packed: make([]byte, p.indcpaPublicKeySize),
	}

	h := sha3.New512()
	h.Write(buf[:SymBytes])
	buf = buf[:0] // Reuse the backing store.
	buf = h.Sum(buf)
	publicSeed, noiseSeed := buf[:SymBytes], buf[SymBytes:]

	a := p.allocMatrix()
	genMatrix(a, publicSeed, false)

	var nonce byte
	s := p.allocPolyVec()
	for _, pv := range s.vec {
		pv.getNoise(noiseSeed, nonce, p.eta)
		nonce++
	}

	s.ntt()

	e := p.allocPolyVec()
	for _, pv := range e.vec {
		pv.getNoise(noiseSeed, nonce, p.eta)
		nonce++
	}

	// t = A*s + e
	t := p.allocPolyVec()
	for i, pv := range t.vec {
		pv.pointwiseAcc(&s, &a[i])
	}

	t.invntt()
	t.add(&t, &e)

	packSecretKey(sk.packed, &s)
	packPublicKey(pk.packed, &t, publicSeed)
	pk.h = sha3.Sum256(pk.packed)

	zeroizePolyVec(&e)
	zeroizePolyVec(&s)

	return pk, sk, nil
}

// indcpaEncrypt is the encryption function of the CPA-secure public-key
// encryption primitive underlying the KEM.
func (p *ParameterSet) indcpaEncrypt(c, m []byte, pk *indcpaPublicKey, coins []byte) {
	var k, v, epp poly
	var seed [SymBytes]byte

	t := p.allocPolyVec()
	unpackPublicKey(&t, seed[:], pk.packed)

	k.fromMsg(m)

	t.ntt()

	at := p.allocMatrix()
	genMatrix(at, seed[:], true)

	var nonce byte
	r := p.allocPolyVec()
	for _, pv := range r.vec {
		pv.getNoise(coins, nonce, p.eta)
		nonce++
	}

	r.ntt()

	e1 := p.allocPolyVec()
	for _, pv := range e1.vec {
		pv.getNoise(coins, nonce, p.eta)
		nonce++
	}

	// u = A^T*r + e1
	u := p.allocPolyVec()
	for i, pv := range u.vec {
		pv.pointwiseAcc(&r, &at[i])
	}

	u.invntt()
	u.add(&u, &e1)

	// v = t*r + e2 + decode(m)
	v.pointwiseAcc(&t, &r)
	v.invntt()

	epp.getNoise(coins, nonce, p.eta) // Don't need to increment nonce.

	v.add(&v, &epp)
	v.add(&v, &k)

	packCiphertext(c, &u, &v)

	zeroizePolyVec(&r)
	zeroizePolyVec(&e1)
}

// indcpaDecrypt is the decryption function of the CPA-secure public-key
// encryption primitive underlying the KEM.
func (p *ParameterSet) indcpaDecrypt(m, c []byte, sk *indcpaSecretKey) {
	var v, mp poly

	s, u := p.allocPolyVec(), p.allocPolyVec()
	unpackCiphertext(&u, &v, c)
	unpackSecretKey(&s, sk.packed)

	u.ntt()

	mp.pointwiseAcc(&s, &u)
	mp.invntt()

	mp.sub(&mp, &v)

	mp.toMsg(m)
}

func (p *ParameterSet) allocMatrix() []polyVec {
	m := make([]polyVec, 0, p.k)
	for i := 0; i < p.k; i++ {
		m = append(m, p.allocPolyVec())
	}
	return m
}

func (p *ParameterSet) allocPolyVec() polyVec {
	vec := make([]*poly, 0, p.k)
	for i := 0; i < p.k; i++ {
		vec = append(vec, new(poly))
	}

	return polyVec{vec}
}

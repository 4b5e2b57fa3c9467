// kem.go - CCA-secure key encapsulation mechanism via the FO transform.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package akcn

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"io"

	"golang.org/x/crypto/sha3"
)

var (
	// ErrInvalidKeySize is the error returned when a byte serialized key
	// is an invalid size.
	ErrInvalidKeySize = errors.New("akcn: invalid key size")

	// ErrInvalidCipherTextSize is the error returned when a byte
	// serialized ciphertext is an invalid size.
	ErrInvalidCipherTextSize = errors.New("akcn: invalid ciphertext size")

	// ErrInvalidPrivateKey is the error returned when a byte serialized
	// private key is malformed.
	ErrInvalidPrivateKey = errors.New("akcn: invalid private key")
)

// PrivateKey is an AKCN-MLWE private key.
type PrivateKey struct {
	PublicKey
	sk *indcpaSecretKey
	z  []byte
}

// Bytes returns the byte serialization of a PrivateKey.
func (sk *PrivateKey) Bytes() []byte {
	p := sk.PublicKey.p

	b := make([]byte, 0, p.secretKeySize)
	b = append(b, sk.sk.packed...)
	b = append(b, sk.PublicKey.pk.packed...)
	b = append(b, sk.PublicKey.pk.h[:]...)
	b = append(b, sk.z...)

	return b
}

// PrivateKeyFromBytes deserializes a byte serialized PrivateKey.
func (p *ParameterSet) PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != p.secretKeySize {
		return nil, ErrInvalidKeySize
	}

	sk := new(PrivateKey)
	sk.sk = new(indcpaSecretKey)
	sk.z = make([]byte, SymBytes)
	sk.PublicKey.pk = new(indcpaPublicKey)
	sk.PublicKey.p = p

	// De-serialize the public key first.
	off := p.indcpaSecretKeySize
	if err := sk.PublicKey.pk.fromBytes(p, b[off:off+p.publicKeySize]); err != nil {
		return nil, err
	}
	off += p.publicKeySize
	if !bytes.Equal(sk.PublicKey.pk.h[:], b[off:off+SymBytes]) {
		return nil, ErrInvalidPrivateKey
	}
	off += SymBytes
	copy(sk.z, b[off:])

	// Then go back to de-serialize the private key.
	if err := sk.sk.fromBytes(p, b[:p.indcpaSecretKeySize]); err != nil {
		return nil, err
	}

	return sk, nil
}

// PublicKey is an AKCN-MLWE public key.
type PublicKey struct {
	pk *indcpaPublicKey
	p  *ParameterSet
}

// Bytes returns the byte serialization of a PublicKey.
func (pk *PublicKey) Bytes() []byte {
	return pk.pk.toBytes()
}

// PublicKeyFromBytes deserializes a byte serialized PublicKey.
func (p *ParameterSet) PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	pk := &PublicKey{
		pk: new(indcpaPublicKey),
		p:  p,
	}

	if err := pk.pk.fromBytes(p, b); err != nil {
		return nil, err
	}

	return pk, nil
}

// GenerateKeyPair generates a private and public key parameterized with the
// given ParameterSet, drawing randomness from rng.
func (p *ParameterSet) GenerateKeyPair(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	kp := new(PrivateKey)

	var err error
	if kp.PublicKey.pk, kp.sk, err = p.indcpaKeyPair(rng); err != nil {
		return nil, nil, err
	}

	kp.PublicKey.p = p
	kp.z = make([]byte, SymBytes)
	if _, err := io.ReadFull(rng, kp.z); err != nil {
		return nil, nil, err
	}

	return &kp.PublicKey, kp, nil
}

// Encapsulate generates a ciphertext and shared secret for pk via the
// CCA-secure key encapsulation mechanism, drawing randomness from rng.
func (pk *PublicKey) Encapsulate(rng io.Reader) (cipherText []byte, sharedSecret []byte, err error) {
	var buf [SymBytes]byte
	if _, err = io.ReadFull(rng, buf[:]); err != nil {
		return nil, nil, err
	}
	buf = sha3.Sum256(buf[:]) // Don't release system RNG output.

	hKr := sha3.New512()
	hKr.Write(buf[:])
	hKr.Write(pk.pk.h[:]) // Multitarget countermeasure for coins + contributory KEM.
	kr := hKr.Sum(nil)

	cipherText = make([]byte, pk.p.cipherTextSize)
	pk.p.indcpaEncrypt(cipherText, buf[:], pk.pk, kr[SymBytes:]) // coins are in kr[SymBytes:]

	hc := sha3.Sum256(cipherText)
	copy(kr[SymBytes:], hc[:]) // overwrite coins in kr with H(c)
	hSs := sha3.New256()
	hSs.Write(kr)
	sharedSecret = hSs.Sum(nil) // hash concatenation of pre-k and H(c) to k

	zeroize(buf[:])
	zeroize(kr)

	return
}

// Decapsulate recovers the shared secret encapsulated in cipherText under
// sk. ok reports whether cipherText was accepted as a genuine encapsulation
// under sk's public key; on a rejected ciphertext, sharedSecret still holds
// a value (the pseudorandom substitute derived from sk's implicit-rejection
// seed), safe to use in constant time exactly as if it had been accepted.
//
// Providing a ciphertext that is obviously malformed (too large/small)
// returns ErrInvalidCipherTextSize rather than a pseudorandom substitute,
// since the scheme gives no meaning to an input of the wrong length.
func (sk *PrivateKey) Decapsulate(cipherText []byte) (sharedSecret []byte, ok bool, err error) {
	p := sk.PublicKey.p
	if len(cipherText) != p.CipherTextSize() {
		return nil, false, ErrInvalidCipherTextSize
	}

	var buf [2 * SymBytes]byte
	p.indcpaDecrypt(buf[:SymBytes], cipherText, sk.sk)

	copy(buf[SymBytes:], sk.PublicKey.pk.h[:]) // Multitarget countermeasure for coins + contributory KEM.
	kr := sha3.Sum512(buf[:])

	cmp := make([]byte, p.cipherTextSize)
	p.indcpaEncrypt(cmp, buf[:SymBytes], sk.PublicKey.pk, kr[SymBytes:]) // coins are in kr[SymBytes:]

	hc := sha3.Sum256(cipherText)
	copy(kr[SymBytes:], hc[:]) // overwrite coins in kr with H(c)

	accepted := subtle.ConstantTimeCompare(cipherText, cmp)
	fail := subtle.ConstantTimeSelect(accepted, 0, 1)
	subtle.ConstantTimeCopy(fail, kr[:SymBytes], sk.z) // Overwrite pre-k with z on re-encryption failure.

	h := sha3.New256()
	h.Write(kr[:])
	sharedSecret = h.Sum(nil)

	zeroize(buf[:])
	zeroize(kr[:])

	return sharedSecret, accepted == 1, nil
}

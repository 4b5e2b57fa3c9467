// poly.go - Ring element (degree-ringN polynomial) operations.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package akcn

import "golang.org/x/crypto/sha3"

// poly is an element of R_q = Z_q[X]/(X^n + 1), representing the
// polynomial coeffs[0] + X*coeffs[1] + ... + X^(n-1)*coeffs[n-1].
type poly struct {
	coeffs [ringN]uint16
}

// toBytes canonically serializes a polynomial, 13 bits per coefficient.
func (p *poly) toBytes(r []byte) {
	var t [8]uint16

	for i := 0; i < ringN/8; i++ {
		for j := 0; j < 8; j++ {
			t[j] = freeze(p.coeffs[8*i+j])
		}

		r[13*i+0] = byte(t[0] & 0xff)
		r[13*i+1] = byte((t[0] >> 8) | ((t[1] & 0x07) << 5))
		r[13*i+2] = byte((t[1] >> 3) & 0xff)
		r[13*i+3] = byte((t[1] >> 11) | ((t[2] & 0x3f) << 2))
		r[13*i+4] = byte((t[2] >> 6) | ((t[3] & 0x01) << 7))
		r[13*i+5] = byte((t[3] >> 1) & 0xff)
		r[13*i+6] = byte((t[3] >> 9) | ((t[4] & 0x0f) << 4))
		r[13*i+7] = byte((t[4] >> 4) & 0xff)
		r[13*i+8] = byte((t[4] >> 12) | ((t[5] & 0x7f) << 1))
		r[13*i+9] = byte((t[5] >> 7) | ((t[6] & 0x03) << 6))
		r[13*i+10] = byte((t[6] >> 2) & 0xff)
		r[13*i+11] = byte((t[6] >> 10) | ((t[7] & 0x1f) << 3))
		r[13*i+12] = byte(t[7] >> 5)
	}
}

// fromBytes de-serializes a polynomial; inverse of poly.toBytes.
func (p *poly) fromBytes(a []byte) {
	for i := 0; i < ringN/8; i++ {
		p.coeffs[8*i+0] = uint16(a[13*i+0]) | ((uint16(a[13*i+1]) & 0x1f) << 8)
		p.coeffs[8*i+1] = (uint16(a[13*i+1]) >> 5) | (uint16(a[13*i+2]) << 3) | ((uint16(a[13*i+3]) & 0x03) << 11)
		p.coeffs[8*i+2] = (uint16(a[13*i+3]) >> 2) | ((uint16(a[13*i+4]) & 0x7f) << 6)
		p.coeffs[8*i+3] = (uint16(a[13*i+4]) >> 7) | (uint16(a[13*i+5]) << 1) | ((uint16(a[13*i+6]) & 0x0f) << 9)
		p.coeffs[8*i+4] = (uint16(a[13*i+6]) >> 4) | (uint16(a[13*i+7]) << 4) | ((uint16(a[13*i+8]) & 0x01) << 12)
		p.coeffs[8*i+5] = (uint16(a[13*i+8]) >> 1) | ((uint16(a[13*i+9]) & 0x3f) << 7)
		p.coeffs[8*i+6] = (uint16(a[13*i+9]) >> 6) | (uint16(a[13*i+10]) << 2) | ((uint16(a[13*i+11]) & 0x07) << 10)
		p.coeffs[8*i+7] = (uint16(a[13*i+11]) >> 3) | (uint16(a[13*i+12]) << 5)
	}
}

// fromMsg decodes a SymBytes-length message into a polynomial, one bit per
// coefficient: 0 maps to 0, 1 maps to (ringQ+1)/2.
func (p *poly) fromMsg(msg []byte) {
	for i, v := range msg[:SymBytes] {
		for j := 0; j < 8; j++ {
			mask := -((uint16(v) >> uint(j)) & 1)
			p.coeffs[8*i+j] = mask & ((ringQ + 1) / 2)
		}
	}
}

// toMsg encodes a polynomial back to a SymBytes-length message; approximate
// inverse of poly.fromMsg, rounding each coefficient to its nearest bit.
func (p *poly) toMsg(msg []byte) {
	for i := 0; i < SymBytes; i++ {
		msg[i] = 0
		for j := 0; j < 8; j++ {
			t := (((freeze(p.coeffs[8*i+j]) << 1) + ringQ/2) / ringQ) & 1
			msg[i] |= byte(t << uint(j))
		}
	}
}

// getNoise deterministically samples a polynomial from a seed and nonce via
// SHAKE-128, with output close to a centered binomial distribution with
// parameter eta.
func (p *poly) getNoise(seed []byte, nonce byte, eta int) {
	extSeed := make([]byte, 0, SymBytes+1)
	extSeed = append(extSeed, seed...)
	extSeed = append(extSeed, nonce)

	buf := make([]byte, eta*ringN/4)
	sha3.ShakeSum128(buf, extSeed)

	p.cbd(buf, eta)
}

// ntt computes the negacyclic NTT of a polynomial in place; input assumed
// in normal order, output in bitreversed order.
func (p *poly) ntt() {
	ntt(&p.coeffs)
}

// invntt computes the inverse negacyclic NTT of a polynomial in place;
// input assumed in bitreversed order, output in normal order.
func (p *poly) invntt() {
	invntt(&p.coeffs)
}

// add computes the coefficient-wise sum of two polynomials.
func (p *poly) add(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = barrettReduce(a.coeffs[i] + b.coeffs[i])
	}
}

// sub computes the coefficient-wise difference of two polynomials.
func (p *poly) sub(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = barrettReduce(a.coeffs[i] + 3*ringQ - b.coeffs[i])
	}
}

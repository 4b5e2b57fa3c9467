// polyvec.go - Vector of ring elements.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package akcn

type polyVec struct {
	vec []*poly
}

// compress lossily compresses and serializes a vector of polynomials at
// 10 bits per coefficient (polyVecCompressedBytes bytes per polynomial).
func (v *polyVec) compress(r []byte) {
	var off int
	for _, vec := range v.vec {
		for j := 0; j < ringN/8; j++ {
			var t [8]uint16
			for k := 0; k < 8; k++ {
				t[k] = uint16((((uint32(freeze(vec.coeffs[8*j+k])) << 10) + ringQ/2) / ringQ) & 0x3ff)
			}

			r[off+10*j+0] = byte(t[0] & 0xff)
			r[off+10*j+1] = byte((t[0] >> 8) | ((t[1] & 0x3f) << 2))
			r[off+10*j+2] = byte((t[1] >> 6) | ((t[2] & 0x0f) << 4))
			r[off+10*j+3] = byte((t[2] >> 4) | ((t[3] & 0x03) << 6))
			r[off+10*j+4] = byte(t[3] >> 2)
			r[off+10*j+5] = byte(t[4] & 0xff)
			r[off+10*j+6] = byte((t[4] >> 8) | ((t[5] & 0x3f) << 2))
			r[off+10*j+7] = byte((t[5] >> 6) | ((t[6] & 0x0f) << 4))
			r[off+10*j+8] = byte((t[6] >> 4) | ((t[7] & 0x03) << 6))
			r[off+10*j+9] = byte(t[7] >> 2)
		}
		off += polyVecCompressedBytes
	}
}

// decompress de-serializes and decompresses a vector of polynomials;
// approximate inverse of polyVec.compress.
func (v *polyVec) decompress(a []byte) {
	var off int
	for _, vec := range v.vec {
		for j := 0; j < ringN/8; j++ {
			vec.coeffs[8*j+0] = uint16((((uint32(a[off+10*j+0]) | (uint32(a[off+10*j+1]&0x03) << 8)) * ringQ) + 1024) >> 10)
			vec.coeffs[8*j+1] = uint16((((uint32(a[off+10*j+1]>>2) | (uint32(a[off+10*j+2]&0x0f) << 6)) * ringQ) + 1024) >> 10)
			vec.coeffs[8*j+2] = uint16((((uint32(a[off+10*j+2]>>4) | (uint32(a[off+10*j+3]&0x3f) << 4)) * ringQ) + 1024) >> 10)
			vec.coeffs[8*j+3] = uint16((((uint32(a[off+10*j+3]>>6) | (uint32(a[off+10*j+4]) << 2)) * ringQ) + 1024) >> 10)
			vec.coeffs[8*j+4] = uint16((((uint32(a[off+10*j+5]) | (uint32(a[off+10*j+6]&0x03) << 8)) * ringQ) + 1024) >> 10)
			vec.coeffs[8*j+5] = uint16((((uint32(a[off+10*j+6]>>2) | (uint32(a[off+10*j+7]&0x0f) << 6)) * ringQ) + 1024) >> 10)
			vec.coeffs[8*j+6] = uint16((((uint32(a[off+10*j+7]>>4) | (uint32(a[off+10*j+8]&0x3f) << 4)) * ringQ) + 1024) >> 10)
			vec.coeffs[8*j+7] = uint16((((uint32(a[off+10*j+8]>>6) | (uint32(a[off+10*j+9]) << 2)) * ringQ) + 1024) >> 10)
		}
		off += polyVecCompressedBytes
	}
}

// toBytes canonically serializes a vector of polynomials.
func (v *polyVec) toBytes(r []byte) {
	for i, p := range v.vec {
		p.toBytes(r[i*polyBytes:])
	}
}

// fromBytes de-serializes a vector of polynomials; inverse of
// polyVec.toBytes.
func (v *polyVec) fromBytes(a []byte) {
	for i, p := range v.vec {
		p.fromBytes(a[i*polyBytes:])
	}
}

// ntt applies the forward NTT to every element of a vector of polynomials.
func (v *polyVec) ntt() {
	for _, p := range v.vec {
		p.ntt()
	}
}

// invntt applies the inverse NTT to every element of a vector of
// polynomials.
func (v *polyVec) invntt() {
	for _, p := range v.vec {
		p.invntt()
	}
}

// pointwiseAcc multiplies a and b element-wise and accumulates the result
// into p, using the 4613 = R^2 mod q trick to correct for the extra R^-1
// factor a single montgomeryReduce of two Montgomery-domain-free values
// would otherwise leave behind.
func (p *poly) pointwiseAcc(a, b *polyVec) {
	for j := 0; j < ringN; j++ {
		t := montgomeryReduce(4613 * uint32(b.vec[0].coeffs[j])) // 4613 = 2^{2*18} % q
		p.coeffs[j] = montgomeryReduce(uint32(a.vec[0].coeffs[j]) * uint32(t))
		for i := 1; i < len(a.vec); i++ {
			t = montgomeryReduce(4613 * uint32(b.vec[i].coeffs[j]))
			p.coeffs[j] += montgomeryReduce(uint32(a.vec[i].coeffs[j]) * uint32(t))
		}

		p.coeffs[j] = barrettReduce(p.coeffs[j])
	}
}

// add computes the element-wise sum of two vectors of polynomials.
func (v *polyVec) add(a, b *polyVec) {
	for i, p := range v.vec {
		p.add(a.vec[i], b.vec[i])
	}
}

// compressedSize returns the compressed and serialized size, in bytes, of
// the vector of polynomials.
func (v *polyVec) compressedSize() int {
	return len(v.vec) * polyVecCompressedBytes
}

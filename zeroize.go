// zeroize.go - Explicit scrubbing of transient secret material.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package akcn

// zeroize overwrites b with zeroes. Writing through the slice index (as
// opposed to a bulk assignment the compiler could recognize and elide)
// keeps this from being optimized away.
func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// zeroizePolyVec overwrites every coefficient of every polynomial in v
// with zero.
func zeroizePolyVec(v *polyVec) {
	for _, p := range v.vec {
		for i := range p.coeffs {
			p.coeffs[i] = 0
		}
	}
}

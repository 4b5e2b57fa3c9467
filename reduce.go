// reduce.go - Montgomery, Barrett, and full reduction mod q.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package akcn

const (
	qinv = 7679 // -inverse_mod(q, 2^18)
	rlog = 18
)

// montgomeryReduce computes a 16-bit integer congruent to a * R^-1 mod q,
// where R = 2^rlog, given a 32-bit integer a.
func montgomeryReduce(a uint32) uint16 {
	u := a * qinv
	u &= (1 << rlog) - 1
	u *= ringQ
	a += u
	return uint16(a >> rlog)
}

// barrettReduce computes a 16-bit integer congruent to a mod q, in
// {0, ..., 2q-1}, given a 16-bit integer a.
func barrettReduce(a uint16) uint16 {
	u := uint32(a >> 13)
	u *= ringQ
	a -= uint16(u)
	return a
}

// freeze computes the unique representative of x mod q in {0, ..., q-1}.
func freeze(x uint16) uint16 {
	r := barrettReduce(x)

	m := r - ringQ
	c := int16(m)
	c >>= 15
	r = m ^ ((r ^ m) & uint16(c))
	return r
}

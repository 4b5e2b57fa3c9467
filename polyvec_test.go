// polyvec_test.go - Polynomial vector serialization tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package akcn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func newPolyVec(k int) *polyVec {
	v := &polyVec{vec: make([]*poly, k)}
	for i := range v.vec {
		v.vec[i] = new(poly)
	}
	return v
}

func TestPolyVecToBytesRoundTrip(t *testing.T) {
	require := require.New(t)

	rng := rand.New(rand.NewSource(31))
	for _, p := range allParams {
		want := newPolyVec(p.k)
		for _, poly := range want.vec {
			for i := range poly.coeffs {
				poly.coeffs[i] = freeze(uint16(rng.Intn(1 << 16)))
			}
		}

		buf := make([]byte, p.polyVecSize)
		want.toBytes(buf)

		got := newPolyVec(p.k)
		got.fromBytes(buf)

		for i, poly := range want.vec {
			require.Equal(poly.coeffs, got.vec[i].coeffs, "%s: polynomial %d", p.Name(), i)
		}
	}
}

// TestPolyVecCompressBound checks that decompress(compress(v)) recovers
// every coefficient within the rounding error inherent to 10-bit
// compression (q/2^10, rounded up), not that it recovers it exactly.
func TestPolyVecCompressBound(t *testing.T) {
	require := require.New(t)

	const maxErr = (ringQ / (1 << 10)) + 1

	rng := rand.New(rand.NewSource(32))
	for _, p := range allParams {
		want := newPolyVec(p.k)
		for _, poly := range want.vec {
			for i := range poly.coeffs {
				poly.coeffs[i] = uint16(rng.Intn(ringQ))
			}
		}

		buf := make([]byte, p.polyVecCompressedSize)
		want.compress(buf)
		require.Equal(p.polyVecCompressedSize, want.compressedSize(), "%s: compressedSize()", p.Name())

		got := newPolyVec(p.k)
		got.decompress(buf)

		for vi, poly := range want.vec {
			for i, c := range poly.coeffs {
				d := int(freeze(c)) - int(freeze(got.vec[vi].coeffs[i]))
				if d < 0 {
					d = -d
				}
				// Account for negacyclic wraparound: an error near q is
				// actually a small error in the other direction.
				if d > ringQ/2 {
					d = ringQ - d
				}
				require.LessOrEqual(d, maxErr, "%s: poly %d coefficient %d: want %d got %d", p.Name(), vi, i, c, got.vec[vi].coeffs[i])
			}
		}
	}
}

func TestPolyVecAdd(t *testing.T) {
	require := require.New(t)

	rng := rand.New(rand.NewSource(33))
	for _, p := range allParams {
		a, b, sum := newPolyVec(p.k), newPolyVec(p.k), newPolyVec(p.k)
		for i := range a.vec {
			for j := range a.vec[i].coeffs {
				a.vec[i].coeffs[j] = uint16(rng.Intn(ringQ))
				b.vec[i].coeffs[j] = uint16(rng.Intn(ringQ))
			}
		}

		sum.add(a, b)

		for i := range a.vec {
			for j := range a.vec[i].coeffs {
				want := freeze((a.vec[i].coeffs[j] + b.vec[i].coeffs[j]) % ringQ)
				require.Equal(want, freeze(sum.vec[i].coeffs[j]), "%s: vec %d coefficient %d", p.Name(), i, j)
			}
		}
	}
}

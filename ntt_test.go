// ntt_test.go - NTT round-trip and convolution tests.
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

func randomPoly(rng *rand.Rand) [ringN]uint16 {
	var p [ringN]uint16
	for i := range p {
		p[i] = uint16(rng.Intn(ringQ))
	}
	return p
}

func TestNTTRoundTrip(t *testing.T) {
	require := require.New(t)

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		want := randomPoly(rng)

		got := want
		ntt(&got)
		invntt(&got)

		for i := range want {
			require.Equal(freeze(want[i]), freeze(got[i]), "coefficient %d diverged on trial %d", i, trial)
		}
	}
}

// negacyclicConvolve computes the schoolbook product of a and b in
// Z_q[X]/(X^n+1), used as an independent reference for the NTT-domain
// pointwise-multiply-and-accumulate trick.
func negacyclicConvolve(a, b [ringN]uint16) [ringN]uint16 {
	var r [ringN]uint32
	for i := 0; i < ringN; i++ {
		for j := 0; j < ringN; j++ {
			prod := uint32(a[i]) * uint32(b[j])
			k := i + j
			if k < ringN {
				r[k] = (r[k] + prod) % ringQ
			} else {
				r[k-ringN] = (r[k-ringN] + ringQ - prod%ringQ) % ringQ
			}
		}
	}

	var out [ringN]uint16
	for i := range out {
		out[i] = uint16(r[i])
	}
	return out
}

func TestNTTMatchesSchoolbookConvolution(t *testing.T) {
	require := require.New(t)

	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 10; trial++ {
		a := &poly{coeffs: randomPoly(rng)}
		b := &poly{coeffs: randomPoly(rng)}

		want := negacyclicConvolve(a.coeffs, b.coeffs)

		aHat, bHat := *a, *b
		aHat.ntt()
		bHat.ntt()

		av := polyVec{vec: []*poly{&aHat}}
		bv := polyVec{vec: []*poly{&bHat}}

		var product poly
		product.pointwiseAcc(&av, &bv)
		product.invntt()

		for i := range want {
			require.Equal(freeze(want[i]), freeze(product.coeffs[i]), "coefficient %d diverged on trial %d", i, trial)
		}
	}
}

// poly_test.go - Ring element serialization and sampling tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package akcn

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestPolyToBytesRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for trial := 0; trial < 50; trial++ {
		var want poly
		for i := range want.coeffs {
			want.coeffs[i] = freeze(uint16(rng.Intn(1 << 16)))
		}

		buf := make([]byte, polyBytes)
		want.toBytes(buf)

		var got poly
		got.fromBytes(buf)

		if diff := cmp.Diff(want.coeffs, got.coeffs); diff != "" {
			t.Fatalf("trial %d: toBytes/fromBytes round trip mismatch (-want +got):\n%s", trial, diff)
		}
	}
}

func TestPolyMsgRoundTrip(t *testing.T) {
	require := require.New(t)

	rng := rand.New(rand.NewSource(22))
	for trial := 0; trial < 50; trial++ {
		want := make([]byte, SymBytes)
		rng.Read(want)

		var p poly
		p.fromMsg(want)

		got := make([]byte, SymBytes)
		p.toMsg(got)

		require.Equal(want, got, "trial %d: fromMsg/toMsg round trip", trial)
	}
}

func TestPolyGetNoiseRange(t *testing.T) {
	require := require.New(t)

	seed := make([]byte, SymBytes)
	rng := rand.New(rand.NewSource(23))
	rng.Read(seed)

	for _, eta := range []int{3, 4, 5} {
		var p poly
		p.getNoise(seed, 0, eta)

		for i, c := range p.coeffs {
			require.Less(c, uint16(ringQ), "eta=%d: coefficient %d out of range", eta, i)
		}
	}
}

func TestPolyAddSub(t *testing.T) {
	require := require.New(t)

	rng := rand.New(rand.NewSource(24))
	for trial := 0; trial < 50; trial++ {
		var a, b poly
		for i := range a.coeffs {
			a.coeffs[i] = uint16(rng.Intn(ringQ))
			b.coeffs[i] = uint16(rng.Intn(ringQ))
		}

		var sum, diff poly
		sum.add(&a, &b)
		diff.sub(&sum, &b)

		for i := range a.coeffs {
			require.Equal(freeze(a.coeffs[i]), freeze(diff.coeffs[i]), "trial %d: coefficient %d", trial, i)
		}
	}
}

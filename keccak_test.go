package slhdsa

import (
	"math/rand"
	"testing"
)

// TestChiSharedMatchesUnshared checks invariant 1 (§8) for the
// nonlinear step in isolation: reconstructing a 3-share chi output by
// XORing all three planes must equal running chiUnshared on the
// logical (already-XORed) state, for random shares.
func TestChiSharedMatchesUnshared(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		var shared sharedState
		var logical [25]uint64
		for lane := 0; lane < 25; lane++ {
			shared[0][lane] = rng.Uint64()
			shared[1][lane] = rng.Uint64()
			shared[2][lane] = rng.Uint64()
			logical[lane] = shared[0][lane] ^ shared[1][lane] ^ shared[2][lane]
		}

		want := logical
		chiUnshared(&want)

		chiShared(&shared)
		got := [25]uint64{}
		for lane := 0; lane < 25; lane++ {
			got[lane] = shared[0][lane] ^ shared[1][lane] ^ shared[2][lane]
		}

		if got != want {
			t.Fatalf("trial %d: shared chi reconstructs to %v, want %v", trial, got, want)
		}
	}
}

// TestRoundSharedMatchesUnshared checks that one full masked round
// reconstructs to one full unshared round on the same logical state
// and round constant.
func TestRoundSharedMatchesUnshared(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for round := 0; round < 24; round++ {
		var shared sharedState
		var logical [25]uint64
		for lane := 0; lane < 25; lane++ {
			shared[0][lane] = rng.Uint64()
			shared[1][lane] = rng.Uint64()
			shared[2][lane] = rng.Uint64()
			logical[lane] = shared[0][lane] ^ shared[1][lane] ^ shared[2][lane]
		}

		roundUnshared(&logical, round)
		roundShared(&shared, round)

		var got [25]uint64
		for lane := 0; lane < 25; lane++ {
			got[lane] = shared[0][lane] ^ shared[1][lane] ^ shared[2][lane]
		}
		if got != logical {
			t.Fatalf("round %d: shared round reconstructs to %v, want %v", round, got, logical)
		}
	}
}

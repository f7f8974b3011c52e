package slhdsa

import (
	"math/rand"
	"testing"
)

// buildSharedInput constructs a 3-share state whose public lanes
// (pubSeed/ADRS-shaped) live only in plane 0 and whose "secret"
// window is a fresh random 3-way split, mirroring setUpFBlock's
// layout without going through chain.go.
func buildSharedInput(rng *rand.Rand) sharedState {
	var s sharedState
	for lane := 0; lane < 12; lane++ {
		s[0][lane] = rng.Uint64() // stands in for pubSeed||ADRS, public-only
	}
	for lane := 12; lane < 16; lane++ {
		s[0][lane] = rng.Uint64()
		s[1][lane] = rng.Uint64()
		s[2][lane] = s[0][lane] ^ s[1][lane] ^ rng.Uint64()
	}
	return s
}

func reconstruct(s sharedState) [25]uint64 {
	var out [25]uint64
	for lane := 0; lane < 25; lane++ {
		out[lane] = s[0][lane] ^ s[1][lane] ^ s[2][lane]
	}
	return out
}

// TestPermuteReconstructsLogicalPermutation is invariant 1 (§8): the
// shared output of permute reconstructs to the plain 24-round Keccak
// permutation of the logical input, for both output modes.
func TestPermuteReconstructsLogicalPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for _, wantShared := range []bool{false, true} {
		in := buildSharedInput(rng)
		logical := reconstruct(in)

		want := logical
		for round := 0; round < 24; round++ {
			roundUnshared(&want, round)
		}

		out := permute(3, in, wantShared)
		if wantShared {
			got := reconstruct(out)
			if got != want {
				t.Fatalf("wantShared=true: permute reconstructs to %v, want %v", got, want)
			}
		} else if out[0] != want {
			t.Fatalf("wantShared=false: permute plane 0 is %v, want %v", out[0], want)
		}
	}
}

// TestPermuteBParameterEquivalence is invariant 7 (§8): the logical
// output does not depend on the blinded-round count B.
func TestPermuteBParameterEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	for _, wantShared := range []bool{false, true} {
		in := buildSharedInput(rng)

		out2 := permute(2, in, wantShared)
		out3 := permute(3, in, wantShared)

		var got2, got3 [25]uint64
		if wantShared {
			got2 = reconstruct(out2)
			got3 = reconstruct(out3)
		} else {
			got2 = out2[0]
			got3 = out3[0]
		}
		if got2 != got3 {
			t.Fatalf("wantShared=%v: B=2 output %v differs from B=3 output %v", wantShared, got2, got3)
		}
	}
}

// TestCollapseExpandRoundTrip is invariant 4 (§8): folding the shares
// in (collapse) and back out (expand) with the same S1/S2 is
// self-inverse.
func TestCollapseExpandRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	s := buildSharedInput(rng)
	want := s[0]

	s.collapse()
	s.expand()

	if s[0] != want {
		t.Fatalf("collapse+expand did not round-trip: got %v, want %v", s[0], want)
	}
}

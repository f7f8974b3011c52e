package slhdsa

import "math/bits"

// Component A: the Keccak-f[1600] round kernel, in both unshared and
// 3-share form. Grounded on the generic (non-amd64-assembly) Keccak-f
// round function that every pack example reaching for SHA-3/SHAKE
// eventually bottoms out in (see e.g. the ethereum sha3 keccakF
// permutation); rewritten here so the linear steps can run
// independently over three masking planes and chi can be expanded
// into the nine cross terms a first-order Boolean mask needs.

// rc holds the 24 round constants for the iota step.
var rc = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotc and piln are the standard rotation offsets and lane permutation
// used by the combined rho/pi step.
var rotc = [24]int{1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14, 27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44}
var piln = [24]int{10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4, 15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1}

// thetaRhoPi applies the three linear steps of one Keccak round to a
// single 25-lane plane. It is safe to run independently on each of
// the three masking planes of a shared state, since theta/rho/pi are
// all linear over GF(2).
func thetaRhoPi(a *[25]uint64) {
	var bc [5]uint64
	for i := 0; i < 5; i++ {
		bc[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
	}
	for i := 0; i < 5; i++ {
		t := bc[(i+4)%5] ^ bits.RotateLeft64(bc[(i+1)%5], 1)
		for j := 0; j < 25; j += 5 {
			a[i+j] ^= t
		}
	}
	t := a[1]
	for i := 0; i < 24; i++ {
		j := piln[i]
		bc[0] = a[j]
		a[j] = bits.RotateLeft64(t, rotc[i])
		t = bc[0]
	}
}

// chiUnshared applies the nonlinear chi step to a logical (unshared)
// state: the classical out[x] = a[x] ^ (~a[x+1] & a[x+2]) form, per
// row of five lanes.
func chiUnshared(a *[25]uint64) {
	var bc [5]uint64
	for row := 0; row < 25; row += 5 {
		for i := 0; i < 5; i++ {
			bc[i] = a[row+i]
		}
		for i := 0; i < 5; i++ {
			a[row+i] = bc[i] ^ (^bc[(i+1)%5] & bc[(i+2)%5])
		}
	}
}

// iota XORs the round constant into lane 0. Only ever applied to the
// unshared state or to the first masking plane of a shared state: a
// single-lane constant injected into one share preserves the XOR sum
// over all three shares.
func iota(a *[25]uint64, round int) { a[0] ^= rc[round] }

// roundUnshared runs one full Keccak-f round on a logical state.
func roundUnshared(a *[25]uint64, round int) {
	thetaRhoPi(a)
	chiUnshared(a)
	iota(a, round)
}

// chiShared applies the nonlinear chi step to a 3-share state. For
// each row of five lanes and each output share k, the masked AND term
// (~a[x+1]) & a[x+2] is expanded into the nine cross products of the
// two operands' shares, with cross term (i, j) folded into output
// share k = (j-i) mod 3 (e.g. out_0 takes the three i==j pairs, out_1
// takes the three j = i+1 pairs, out_2 takes the three j = i+2 pairs).
// The plain c[x] term is linear and simply carried on its own share.
func chiShared(s *sharedState) {
	var out sharedState
	for row := 0; row < 25; row += 5 {
		for pos := 0; pos < 5; pos++ {
			idx0 := row + pos
			idx1 := row + (pos+1)%5
			idx2 := row + (pos+2)%5
			for k := 0; k < 3; k++ {
				v := s[k][idx0]
				for i := 0; i < 3; i++ {
					j := (i + k) % 3
					v ^= (^s[i][idx1]) & s[j][idx2]
				}
				out[k][idx0] = v
			}
		}
	}
	*s = out
}

// roundShared runs one full Keccak-f round on a 3-share state. The
// linear steps run independently per plane; chi recombines shares
// nonlinearly; iota injects the round constant into plane 0 only.
func roundShared(s *sharedState, round int) {
	for k := 0; k < 3; k++ {
		thetaRhoPi(&s[k])
	}
	chiShared(s)
	iota(&s[0], round)
}

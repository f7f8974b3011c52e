package slhdsa

import "golang.org/x/crypto/sha3"

// The public, unshared side of the one-way function: thash and hMsg
// combine only public values (Merkle siblings, WOTS public chain ends,
// FORS roots, the message), so they run through a plain SHAKE-256
// sponge rather than the masked core. prfMsg also runs unmasked here,
// over the secret sk_prf. Variable-length,
// multi-block absorption is exactly what the sha3 package is for;
// the masked core in chain.go/maskedpermute.go only ever needs a
// single rate block and implements its own permutation so share
// boundaries stay explicit.

// shake256Sum squeezes n bytes of SHAKE-256 output from the
// concatenation of parts.
func shake256Sum(n int, parts ...[]byte) []byte {
	h := sha3.NewShake256()
	for _, p := range parts {
		h.Write(p)
	}
	out := make([]byte, n)
	h.Read(out)
	return out
}

// thash is the SLH-DSA compression function: SHAKE-256 over
// PK.seed || ADRS || in, truncated to n bytes. Used to combine WOTS
// chain ends into a leaf, Merkle siblings into a parent, and FORS
// roots into the FORS public key.
func thash(pubSeed []byte, adrs *ADRS, in []byte, n int) []byte {
	return shake256Sum(n, pubSeed, adrs[:], in)
}

// hMsg is the randomised message-hash function used by the outer
// signer and verifier: SHAKE-256 over R || PK.seed || PK.root ||
// message, where R is the randomiser prfMsg derives, truncated to
// mdBytes (the FORS digest plus the hypertree tree and leaf bits that
// digestCoords splits out).
func hMsg(r, pubSeed, pubRoot, message []byte, mdBytes int) []byte {
	return shake256Sum(mdBytes, r, pubSeed, pubRoot, message)
}

// prfMsg derives the deterministic signing randomiser from the
// secret PRF seed, optrand and message, following the same
// SHAKE-256-over-concatenation shape as hMsg. This keeps optrand's
// role in signing deterministic in the masked pipeline, an
// implementation choice for the open question in §9(i): optrand is
// folded into the randomiser derivation exactly like the FIPS-205
// reference, the divergence the spec leaves unpinned is only in how
// the per-layer keys are derived from sk_seed, not in optrand's role.
func prfMsg(skPRF, optrand, message []byte, n int) []byte {
	return shake256Sum(n, skPRF, optrand, message)
}

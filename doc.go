// Package slhdsa implements SLH-DSA-SHAKE, the stateless hash-based
// signature scheme from FIPS 205, built around a masked Keccak-f[1600]
// core.
//
// Every secret word derived from sk_seed during key generation and
// signing is carried as a 3-share additive (Boolean) mask: a secret x
// is represented as x0, x1, x2 with x = x0 XOR x1 XOR x2, two shares
// fresh random and the third derived to reconstruct x. Secrets are
// only unmasked at the point a one-way hash turns a secret input into
// a public digest. The signing randomiser R is derived from sk_prf by
// a plain, unshared SHAKE-256 call. The verifier path is unshared.
//
// Keys and signatures have the FIPS 205 sizes and field order, but the
// ADRS byte encoding, the split of the message digest into FORS
// indices and hypertree coordinates, and the secret-key derivation are
// this package's own, so they are not byte-compatible with a standard
// SLH-DSA-SHAKE implementation.
package slhdsa

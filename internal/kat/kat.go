// Package kat is the self-test harness mentioned but scoped out of
// the masked core itself (§1: "known-answer-test harness" is an
// external collaborator). It does not ship the published NIST ACVP
// vectors; instead it runs the end-to-end scenarios describable
// without them: deterministic-seed signing followed by verification
// (§8 S2) and a tampered-message rejection check, under one parameter
// set per Run call, in the table-driven style the rest of the
// retrieved pack uses for its KAT tests.
package kat

import (
	"bytes"
	"fmt"

	"codeberg.org/maskedsig/slhdsa"
)

// vector is one deterministic-seed scenario and a fixed message: Run
// fills pubSeed with `fill`, skSeed with fill^0x11, skPRF with
// fill^0x22 and optrand with fill^0x33.
type vector struct {
	fill byte
	msg  []byte
}

var vectors = []vector{
	{fill: 0x00, msg: []byte{0x00}},
	{fill: 0x00, msg: []byte("abc")},
	{fill: 0xff, msg: []byte("SLH-DSA-SHAKE masked core")},
}

// Run derives a key pair and signs/verifies every vector under p,
// failing on the first mismatch. It reports which vector failed so a
// caller (the CLI's `kat` subcommand) can print something actionable.
func Run(p slhdsa.Params) error {
	for i, v := range vectors {
		pubSeed := bytes.Repeat([]byte{v.fill}, p.N)
		skSeed := bytes.Repeat([]byte{v.fill ^ 0x11}, p.N)
		skPRF := bytes.Repeat([]byte{v.fill ^ 0x22}, p.N)

		pub, priv, err := slhdsa.DeriveKeyPair(p, pubSeed, skSeed, skPRF)
		if err != nil {
			return fmt.Errorf("vector %d: derive key pair: %w", i, err)
		}

		optrand := bytes.Repeat([]byte{v.fill ^ 0x33}, p.N)
		sig, err := priv.Sign(v.msg, optrand)
		if err != nil {
			return fmt.Errorf("vector %d: sign: %w", i, err)
		}
		if len(sig) != p.SignatureSize() {
			return fmt.Errorf("vector %d: signature is %d bytes, want %d", i, len(sig), p.SignatureSize())
		}
		if !slhdsa.Verify(pub, v.msg, sig) {
			return fmt.Errorf("vector %d: signature did not verify", i)
		}

		tampered := append([]byte(nil), v.msg...)
		tampered = append(tampered, 0x01)
		if slhdsa.Verify(pub, tampered, sig) {
			return fmt.Errorf("vector %d: signature verified under a different message", i)
		}
	}
	return nil
}

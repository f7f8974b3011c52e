package slhdsa

import (
	"bytes"
	"testing"
)

// TestSignVerifyRoundTrip is scenario S2 (§8): a signature produced
// for a freshly generated key must verify, under the 128s, 128f, 192s
// and 256f parameter sets.
func TestSignVerifyRoundTrip(t *testing.T) {
	for _, p := range []Params{Params128s, Params128f, Params192s, Params256f} {
		t.Run(p.Name, func(t *testing.T) {
			pub, priv, err := GenerateKey(p)
			if err != nil {
				t.Fatalf("GenerateKey: %v", err)
			}

			msg := []byte("abc")
			sig, err := priv.Sign(msg, nil)
			if err != nil {
				t.Fatalf("Sign: %v", err)
			}
			if len(sig) != p.SignatureSize() {
				t.Fatalf("signature is %d bytes, want %d", len(sig), p.SignatureSize())
			}
			if !Verify(pub, msg, sig) {
				t.Fatalf("signature did not verify")
			}
		})
	}
}

// TestVerifyRejectsTamperedMessage checks that the signature is bound
// to the signed message.
func TestVerifyRejectsTamperedMessage(t *testing.T) {
	p := Params128s
	pub, priv, err := GenerateKey(p)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	sig, err := priv.Sign([]byte("abc"), nil)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if Verify(pub, []byte("abd"), sig) {
		t.Fatalf("signature verified under a tampered message")
	}
}

// TestVerifyRejectsWrongKey checks that a signature does not verify
// under an unrelated public key.
func TestVerifyRejectsWrongKey(t *testing.T) {
	p := Params128s
	_, priv, err := GenerateKey(p)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	otherPub, _, err := GenerateKey(p)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}

	sig, err := priv.Sign([]byte("abc"), nil)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if Verify(otherPub, []byte("abc"), sig) {
		t.Fatalf("signature verified under an unrelated public key")
	}
}

// TestDeriveKeyPairDeterministic is invariant 5 (§8): the public key
// derived from a given (pubSeed, skSeed) is a pure function of those
// seeds.
func TestDeriveKeyPairDeterministic(t *testing.T) {
	p := Params128s
	pubSeed := bytes.Repeat([]byte{0x42}, p.N)
	skSeed := bytes.Repeat([]byte{0x24}, p.N)
	skPRF := bytes.Repeat([]byte{0x11}, p.N)

	pub1, _, err := DeriveKeyPair(p, pubSeed, skSeed, skPRF)
	if err != nil {
		t.Fatalf("DeriveKeyPair: %v", err)
	}
	pub2, _, err := DeriveKeyPair(p, pubSeed, skSeed, skPRF)
	if err != nil {
		t.Fatalf("DeriveKeyPair: %v", err)
	}
	if !bytes.Equal(pub1.PubRoot, pub2.PubRoot) {
		t.Fatalf("PubRoot differs across identical seeds: %x vs %x", pub1.PubRoot, pub2.PubRoot)
	}
}

func TestParamsValidate(t *testing.T) {
	bad := Params128s
	bad.N = 20
	if err := bad.validate(); err == nil {
		t.Fatalf("expected error for n=20")
	}

	bad = Params128s
	bad.B = 4
	if err := bad.validate(); err == nil {
		t.Fatalf("expected error for B=4")
	}

	bad = Params128s
	bad.D = 5
	if err := bad.validate(); err == nil {
		t.Fatalf("expected error for a D that does not divide FullHeight")
	}
}

package slhdsa

import (
	"math/rand"
	"testing"
)

// TestFTransformMatchesThash is scenario S4 (§8): for random
// (pubSeed, ADRS, secret) triples with a fresh 2-of-3 split of
// secret, f_transform with keep_blinded=false reproduces plain
// SHAKE-256 over pubSeed||ADRS||secret.
func TestFTransformMatchesThash(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	p := Params128s

	ctx := &sessionContext{p: p, PubSeed: make([]byte, p.N)}
	for trial := 0; trial < 32; trial++ {
		rng.Read(ctx.PubSeed)

		var adrs ADRS
		adrs.SetType(uint32(trial % 8))
		adrs.SetLayer(uint32(trial))
		adrs.SetTree(uint64(trial) * 7)
		adrs.SetHash(uint32(trial) * 3)

		secret := make([]byte, p.N)
		rng.Read(secret)
		shares := splitShare(secret)

		cs := setUpFBlock(ctx, &adrs, shares)
		fTransform(p.B, cs, false)
		got := cs.runningHash(false)

		want := thash(ctx.PubSeed, &adrs, secret, p.N)
		if string(got) != string(want) {
			t.Fatalf("trial %d: f_transform(keep_blinded=false) = %x, want %x", trial, got, want)
		}
	}
}

// TestFTransformBlindedReconstructs is the blinded-output counterpart:
// f_transform(keep_blinded=true) must reconstruct (by XORing its
// three shares) to the same value as the unblinded path.
func TestFTransformBlindedReconstructs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := Params192f

	ctx := &sessionContext{p: p, PubSeed: make([]byte, p.N)}
	rng.Read(ctx.PubSeed)

	var adrs ADRS
	adrs.SetType(AdrsWotsPRF)

	secret := make([]byte, p.N)
	rng.Read(secret)
	shares := splitShare(secret)

	cs := setUpFBlock(ctx, &adrs, shares)
	fTransform(p.B, cs, true)
	got := cs.runningHash(true)

	want := thash(ctx.PubSeed, &adrs, secret, p.N)
	if string(got) != string(want) {
		t.Fatalf("blinded f_transform reconstructs to %x, want %x", got, want)
	}
}

// TestIncrementHashAddr is scenario S5 (§8): incrementing the chain
// state's ADRS hash field k times in place must match building the
// ADRS directly with hash_addr = k.
func TestIncrementHashAddr(t *testing.T) {
	p := Params256s
	ctx := &sessionContext{p: p, PubSeed: make([]byte, p.N)}

	for _, k := range []uint32{1, 7, 15} {
		var adrs ADRS
		adrs.SetHash(0)
		secret := make([]byte, p.N)
		shares := splitShare(secret)
		cs := setUpFBlock(ctx, &adrs, shares)

		for i := uint32(0); i < k; i++ {
			incrementHashAddr(cs)
		}

		var want ADRS
		want.SetHash(k)
		wantLanes := want.lanes()

		lane3 := cs.n/8 + 3
		if cs.s[0][lane3] != wantLanes[3] {
			t.Fatalf("k=%d: incremented lane %#x, want %#x", k, cs.s[0][lane3], wantLanes[3])
		}
	}
}

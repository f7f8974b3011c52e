package slhdsa

import (
	"math/rand"
	"testing"
)

// TestIteratorMatchesRandomAccess is scenario S3 / invariant 3 (§8):
// iterating external nodes 0..n_ext-1 must XOR-reconstruct to the
// same values eval_single produces independently, in order.
func TestIteratorMatchesRandomAccess(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	p := Params128s

	ctx := &sessionContext{p: p, PubSeed: make([]byte, p.N)}
	rng.Read(ctx.PubSeed)

	var adrs ADRS
	adrs.SetType(AdrsWotsPRF)

	root := splitShare(bytesOf(rng, p.N))

	const nExt = 64
	it := newPRFIterator(p.B, ctx, adrs, nExt, nExt-1, root)

	for want := 0; want < nExt; want++ {
		idx, val := it.prfIterNext()
		if idx != want {
			t.Fatalf("iterator returned index %d at step %d", idx, want)
		}
		direct := evalSinglePRF(p.B, ctx, adrs, root, idx, nExt)
		if combineShareStr(val) != combineShareStr(direct) {
			t.Fatalf("index %d: iterator value does not match eval_single", idx)
		}
	}

	if idx, _ := it.prfIterNext(); idx != -1 {
		t.Fatalf("iterator did not stop at end of range, got index %d", idx)
	}
}

// TestIteratorSingleNode is the n_ext=1 boundary behaviour (§8): the
// iterator yields external index 0 and then stops.
func TestIteratorSingleNode(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	p := Params128s
	ctx := &sessionContext{p: p, PubSeed: make([]byte, p.N)}
	rng.Read(ctx.PubSeed)

	var adrs ADRS
	root := splitShare(bytesOf(rng, p.N))
	it := newPRFIterator(p.B, ctx, adrs, 1, 0, root)

	idx, _ := it.prfIterNext()
	if idx != 0 {
		t.Fatalf("n_ext=1: first index = %d, want 0", idx)
	}
	if idx, _ = it.prfIterNext(); idx != -1 {
		t.Fatalf("n_ext=1: second call = %d, want -1", idx)
	}
}

// TestIteratorStopValueZero is the stop_value=0 boundary behaviour
// (§8): prf_iter_next returns -1 on the call right after emitting
// node 0.
func TestIteratorStopValueZero(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	p := Params128s
	ctx := &sessionContext{p: p, PubSeed: make([]byte, p.N)}
	rng.Read(ctx.PubSeed)

	var adrs ADRS
	root := splitShare(bytesOf(rng, p.N))
	it := newPRFIterator(p.B, ctx, adrs, 16, 0, root)

	idx, _ := it.prfIterNext()
	if idx != 0 {
		t.Fatalf("stop_value=0: first index = %d, want 0", idx)
	}
	if idx, _ = it.prfIterNext(); idx != -1 {
		t.Fatalf("stop_value=0: second call = %d, want -1", idx)
	}
}

func bytesOf(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	rng.Read(b)
	return b
}

func combineShareStr(s [3][]byte) string {
	return string(combineShare(s))
}

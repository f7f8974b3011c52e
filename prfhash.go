package slhdsa

// Component E: the PRF node evaluator. One masked SHAKE-256 hash of
// PK.seed || ADRS || shared_in, run with a shared output so the
// result can feed straight into the next edge of the PRF tree without
// ever touching the logical value.
func prfHash(b int, ctx *sessionContext, adrs *ADRS, sharedIn [3][]byte) [3][]byte {
	cs := setUpFBlock(ctx, adrs, sharedIn)
	out := permute(b, cs.s, true)
	return emitShared(&out, cs.n)
}

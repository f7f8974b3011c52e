package slhdsa

// Component D: the F chain-state. Builds and mutates the
// pre-permutation state shared by every Winternitz-chain step and
// every FORS-leaf PRF hash, keeping a "running hash" window that is
// rewritten in place from one F application to the next instead of
// being reformatted from scratch.

// rateLanes is the SHAKE-256 rate, 136 bytes = 17 lanes.
const rateLanes = 17

// chainState is the 3*25-lane buffer described in §3: plane 0 carries
// PK.seed and ADRS (both public, so never shared), the three planes
// together carry the secret "running hash" window as a 3-way XOR
// split.
type chainState struct {
	s      sharedState
	n      int // digest width, bytes
	offset int // lane offset of the running-hash window within each plane
}

// setUpFBlock assembles a fresh chain state for one F invocation:
// PK.seed and adrs land in plane 0 only, the secret input lands
// replicated as an XOR-share across all three planes, and the
// SHAKE-256 simple domain-separation pad is written into plane 0.
// Returns the chain state ready for f_transform.
func setUpFBlock(ctx *sessionContext, adrs *ADRS, sharedSecret [3][]byte) *chainState {
	n := len(sharedSecret[0])
	lanes := n / 8
	cs := &chainState{n: n, offset: lanes + 4}

	bytesToLanes(cs.s[0][:lanes], ctx.PubSeed[:n])
	al := adrs.lanes()
	copy(cs.s[0][lanes:lanes+4], al[:])

	for k := 0; k < 3; k++ {
		bytesToLanes(cs.s[k][cs.offset:cs.offset+lanes], sharedSecret[k])
	}

	shakeDomainPad(&cs.s[0], cs.offset+lanes, rateLanes)
	return cs
}

// incrementHashAddr adds one to the ADRS hash subfield carried in
// plane 0, without re-encoding the whole ADRS: the subfield occupies
// the upper half of the fourth ADRS lane, so a single 2^32 add on
// that lane has the same effect.
func incrementHashAddr(cs *chainState) {
	adrsLane3 := cs.n/8 + 3
	cs.s[0][adrsLane3] += 1 << 32
}

// fTransform runs the masked permutation over the whole chain-state
// buffer and copies the emitted digest back into the running-hash
// window, ready to feed the next chain step. When keepBlinded is
// true, all three planes are rewritten (the chain stays masked);
// otherwise only plane 0 is rewritten with the unshared digest and
// the other two planes are left stale until the next setUpFBlock or
// a fresh PRF-iterator value reseeds them.
func fTransform(b int, cs *chainState, keepBlinded bool) {
	out := permute(b, cs.s, keepBlinded)
	lanes := cs.n / 8
	if keepBlinded {
		shared := emitShared(&out, cs.n)
		for k := 0; k < 3; k++ {
			bytesToLanes(cs.s[k][cs.offset:cs.offset+lanes], shared[k])
		}
		return
	}
	digest := emitUnshared(&out, cs.n)
	bytesToLanes(cs.s[0][cs.offset:cs.offset+lanes], digest)
}

// untransformF serialises n bytes from a single contiguous lane
// window. Callers holding a currently-shared digest must XOR the
// three lane windows together before calling this.
func untransformF(n int, lanes []uint64) []byte {
	out := make([]byte, n)
	lanesToBytes(out, lanes)
	return out
}

// runningHash returns the unshared digest currently sitting in the
// chain state's running-hash window, XOR-reconstructing across the
// three planes if it is still masked.
func (cs *chainState) runningHash(masked bool) []byte {
	lanes := cs.n / 8
	if !masked {
		return untransformF(cs.n, cs.s[0][cs.offset:cs.offset+lanes])
	}
	var combined [25]uint64
	for k := 0; k < 3; k++ {
		for i := 0; i < lanes; i++ {
			combined[i] ^= cs.s[k][cs.offset+i]
		}
	}
	return untransformF(cs.n, combined[:lanes])
}

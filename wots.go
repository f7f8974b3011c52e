package slhdsa

// Component I, WOTS form: wots_gen_leafx1 and its verifier-side
// counterpart. A Winternitz chain is grown by repeated masked F
// steps (§4.D) while it is still secret; once a step's value has
// either been revealed as a signature share or the chain has reached
// its public top, the remaining steps run through the unshared
// public thash, since nothing secret is left to protect.

// wotsComputeSteps performs the FIPS-205 base-w decomposition (with
// checksum) of a WOTS+ message, here always an n-byte child root or
// FORS root: WotsLen1 base-16 digits straight out of the digest bits,
// followed by WotsLen2 checksum digits.
func wotsComputeSteps(msg []byte, p Params) []int {
	logw := p.WotsLogW
	steps := make([]int, p.WotsLen)

	br := &bitReader{data: msg}
	csum := 0
	for i := 0; i < p.WotsLen1; i++ {
		d := int(br.read(logw))
		steps[i] = d
		csum += (p.WotsW - 1) - d
	}

	csumBits := p.WotsLen2 * logw
	csumBytes := make([]byte, (csumBits+7)/8)
	shifted := csum << uint(len(csumBytes)*8-csumBits)
	for i := len(csumBytes) - 1; i >= 0; i-- {
		csumBytes[i] = byte(shifted)
		shifted >>= 8
	}
	cbr := &bitReader{data: csumBytes}
	for i := 0; i < p.WotsLen2; i++ {
		steps[p.WotsLen1+i] = int(cbr.read(logw))
	}
	return steps
}

// wotsChain grows one Winternitz chain from a shared seed value up to
// step W-1. Every non-signing chain runs through the masked F for
// every step but its last: the secret must stay blinded all the way
// up the chain, since a non-signing leaf is computed for every other
// WOTS key in the tree (and for all of them during key generation),
// not just the one chain whose interior value becomes a signature
// share. For the signing leaf, the chain runs through the masked F
// only up to wotsStep, is unmasked there to capture that step's value
// as the signature share, then continues to the public top through
// the unshared public thash, since nothing secret is left to protect
// once the share is revealed.
func wotsChain(p Params, ctx *sessionContext, adrs ADRS, secret [3][]byte, wotsStep int, signing bool) (top, share []byte) {
	w := p.WotsW
	if !signing {
		cs := setUpFBlock(ctx, &adrs, secret)
		for s := 0; s < w-2; s++ {
			fTransform(p.B, cs, true)
			incrementHashAddr(cs)
		}
		fTransform(p.B, cs, false)
		return cs.runningHash(false), nil
	}

	cs := setUpFBlock(ctx, &adrs, secret)
	for s := 0; s < wotsStep; s++ {
		fTransform(p.B, cs, true)
		incrementHashAddr(cs)
	}
	share = cs.runningHash(true)

	x := share
	for s := wotsStep; s < w-1; s++ {
		adrs.SetHash(uint32(s))
		x = thash(ctx.PubSeed, &adrs, x, p.N)
	}
	return x, share
}

// wotsPkFromSig is the unshared verifier-side counterpart: it
// completes each chain from its revealed signature share up to the
// public top and compresses the result into the leaf hash. Plain
// SHAKE-256, no masking, over this package's own ADRS encoding.
func wotsPkFromSig(p Params, pubSeed []byte, adrs ADRS, childRoot []byte, sigShares [][]byte) []byte {
	steps := wotsComputeSteps(childRoot, p)
	pkParts := make([][]byte, p.WotsLen)
	for i := 0; i < p.WotsLen; i++ {
		chainAdrs := adrs
		chainAdrs.SetType(AdrsWotsHash)
		chainAdrs.SetChain(uint32(i))
		x := sigShares[i]
		for s := steps[i]; s < p.WotsW-1; s++ {
			chainAdrs.SetHash(uint32(s))
			x = thash(pubSeed, &chainAdrs, x, p.N)
		}
		pkParts[i] = x
	}
	pkAdrs := adrs
	pkAdrs.SetType(AdrsWotsPK)
	return thash(pubSeed, &pkAdrs, concatAll(pkParts), p.N)
}

package slhdsa

// Component H: the session key schedule, and the spx_ctx session
// context it operates on (§3, §6 session_init / session_prepare_path).

// sessionContext is the per-signing-call state described in §3.
// Every shared field must be zeroised on every exit path; see
// (*sessionContext).destroy.
type sessionContext struct {
	p Params

	PubSeed []byte // public, n bytes

	MerkleKey [][3][]byte // merkle_key[0..D-1], shared, 3n bytes each
	ForsSeed  [3][]byte   // shared, 3n bytes
}

// newSessionContext validates p and allocates an empty session
// context. Parameter misconfiguration is rejected here, before any
// session exists, per §7.
func newSessionContext(p Params) (*sessionContext, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &sessionContext{
		p:         p,
		MerkleKey: make([][3][]byte, p.D),
	}, nil
}

// sessionInit copies the public seed and sets merkle_key[D-1] to a
// fresh shared split of skSeed (the top hypertree layer's root key).
func (ctx *sessionContext) sessionInit(pubSeed, skSeed []byte) {
	ctx.PubSeed = append([]byte(nil), pubSeed...)
	ctx.MerkleKey[ctx.p.D-1] = splitShare(skSeed)
}

// hypertreeCoords computes, for every Merkle layer, the tree address
// and in-tree leaf index that (tree, idxLeaf) resolves to at that
// layer. Shared by the key schedule and by the outer signing loop so
// both walk the hypertree the same way.
func hypertreeCoords(p Params, tree uint64, idxLeaf uint32) (leafAt []uint32, treeAddrAt []uint64) {
	leafAt = make([]uint32, p.D)
	treeAddrAt = make([]uint64, p.D)
	for level := p.D - 1; level >= 0; level-- {
		treeShift := p.FullHeight - (p.D-level)*p.TreeHeight
		treeAddrAt[level] = tree >> uint(treeShift)
		if level == 0 {
			leafAt[0] = idxLeaf
		} else {
			leafAt[level] = uint32((tree >> uint(treeShift-p.TreeHeight)) & ((1 << uint(p.TreeHeight)) - 1))
		}
	}
	return leafAt, treeAddrAt
}

// sessionPreparePath derives the per-Merkle-layer PRF roots and the
// FORS seed for one hypertree path, walking from the already-known
// top-layer key down to layer 0 and finally to the FORS seed. Must be
// called once per signing operation, after the path (tree, idxLeaf)
// has been chosen.
func (ctx *sessionContext) sessionPreparePath(tree uint64, idxLeaf uint32) {
	p := ctx.p
	wotsNExt := (p.WotsLen + 1) << p.TreeHeight
	leafAt, treeAddrAt := hypertreeCoords(p, tree, idxLeaf)
	parent := ctx.MerkleKey[p.D-1]

	for level := p.D - 1; level >= 0; level-- {
		var adrs ADRS
		adrs.SetType(AdrsPrfMerkle)
		adrs.SetLayer(uint32(level))
		adrs.SetTree(treeAddrAt[level])

		extIndex := int(leafAt[level]) + (p.WotsLen << p.TreeHeight)
		child := evalSinglePRF(p.B, ctx, adrs, parent, extIndex, wotsNExt)

		if level == 0 {
			ctx.ForsSeed = child
		} else {
			ctx.MerkleKey[level-1] = child
		}
		parent = child
	}
}

// destroy zeroises every shared buffer held by the context, per the
// lifecycle note in §3 and the resource discipline in §5.
func (ctx *sessionContext) destroy() {
	for i := range ctx.MerkleKey {
		zeroShares(ctx.MerkleKey[i])
	}
	zeroShares(ctx.ForsSeed)
	zero(ctx.PubSeed)
}

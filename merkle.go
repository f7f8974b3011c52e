package slhdsa

// The hypertree Merkle traversal harness. Out of scope for the
// masked core per §1 (algorithmically identical to any SLH-DSA
// reference), but it is the harness that drives components D/F
// through wots.go's leaf oracle, so it lives alongside them.

// merkleLayer generates every WOTS+ leaf of one Merkle subtree,
// combines them into the subtree root, and — when signLeafIdx is not
// negative — also returns that leaf's signature share and
// authentication path. childRoot is the value this layer's WOTS+
// instances sign (nil when merely computing a public root, as at key
// generation, where no leaf is "the" signing leaf).
func merkleLayer(p Params, ctx *sessionContext, level int, treeAddr uint64, childRoot []byte, signLeafIdx int) (sigShares [][]byte, authPath [][]byte, root []byte) {
	nLeaves := 1 << p.TreeHeight
	leaves := make([][]byte, nLeaves)

	var prfAdrs ADRS
	prfAdrs.SetType(AdrsWotsPRF)
	prfAdrs.SetLayer(uint32(level))
	prfAdrs.SetTree(treeAddr)
	wotsNExt := (p.WotsLen + 1) << p.TreeHeight
	it := newPRFIterator(p.B, ctx, prfAdrs, wotsNExt, nLeaves*p.WotsLen-1, ctx.MerkleKey[level])

	var steps []int
	if signLeafIdx >= 0 && childRoot != nil {
		steps = wotsComputeSteps(childRoot, p)
	}

	for leafIdx := 0; leafIdx < nLeaves; leafIdx++ {
		signing := leafIdx == signLeafIdx
		pkParts := make([][]byte, p.WotsLen)
		var shares [][]byte
		if signing {
			shares = make([][]byte, p.WotsLen)
		}
		for i := 0; i < p.WotsLen; i++ {
			_, secret := it.prfIterNext()

			var chainAdrs ADRS
			chainAdrs.SetType(AdrsWotsHash)
			chainAdrs.SetLayer(uint32(level))
			chainAdrs.SetTree(treeAddr)
			chainAdrs.SetKeyPair(uint32(leafIdx))
			chainAdrs.SetChain(uint32(i))

			step := 0
			if signing {
				step = steps[i]
			}
			top, share := wotsChain(p, ctx, chainAdrs, secret, step, signing)
			pkParts[i] = top
			if signing {
				shares[i] = share
			}
		}
		if signing {
			sigShares = shares
		}

		var pkAdrs ADRS
		pkAdrs.SetType(AdrsWotsPK)
		pkAdrs.SetLayer(uint32(level))
		pkAdrs.SetTree(treeAddr)
		pkAdrs.SetKeyPair(uint32(leafIdx))
		leaves[leafIdx] = thash(ctx.PubSeed, &pkAdrs, concatAll(pkParts), p.N)
	}

	cur := leaves
	idx := signLeafIdx
	authPath = make([][]byte, p.TreeHeight)
	for height := 0; len(cur) > 1; height++ {
		if idx >= 0 {
			authPath[height] = cur[idx^1]
		}
		next := make([][]byte, len(cur)/2)
		var treeAdrs ADRS
		treeAdrs.SetType(AdrsTree)
		treeAdrs.SetLayer(uint32(level))
		treeAdrs.SetTree(treeAddr)
		treeAdrs.SetChain(uint32(height))
		for j := 0; j < len(next); j++ {
			treeAdrs.SetHash(uint32(j))
			next[j] = thash(ctx.PubSeed, &treeAdrs, concatAll([][]byte{cur[2*j], cur[2*j+1]}), p.N)
		}
		cur = next
		if idx >= 0 {
			idx >>= 1
		}
	}
	root = cur[0]
	return
}

// merkleRootFromAuthPath is the unshared verifier-side climb from a
// leaf hash to the subtree root, given its authentication path.
func merkleRootFromAuthPath(p Params, pubSeed []byte, level int, treeAddr uint64, leafIdx uint32, leafHash []byte, authPath [][]byte) []byte {
	node := leafHash
	idx := leafIdx
	for h := 0; h < p.TreeHeight; h++ {
		var treeAdrs ADRS
		treeAdrs.SetType(AdrsTree)
		treeAdrs.SetLayer(uint32(level))
		treeAdrs.SetTree(treeAddr)
		treeAdrs.SetChain(uint32(h))
		treeAdrs.SetHash(idx >> 1)

		var concat []byte
		if idx&1 == 0 {
			concat = append(append([]byte{}, node...), authPath[h]...)
		} else {
			concat = append(append([]byte{}, authPath[h]...), node...)
		}
		node = thash(pubSeed, &treeAdrs, concat, p.N)
		idx >>= 1
	}
	return node
}

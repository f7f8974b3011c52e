package slhdsa

// Component I, FORS form: fors_sign and its verifier-side counterpart
// fors_pk_from_sig. FORS has no checksum and no Winternitz chain — a
// single masked F call per leaf reveals the signing secret, and the
// authentication path is built exactly like a Merkle tree of F
// outputs.

// forsIndices reads k a-bit fields left-to-right out of the FORS
// portion of the message digest, one leaf choice per FORS tree.
func forsIndices(digest []byte, p Params) []int {
	br := &bitReader{data: digest}
	idx := make([]int, p.ForsTrees)
	for i := 0; i < p.ForsTrees; i++ {
		idx[i] = int(br.read(p.ForsHeight))
	}
	return idx
}

// forsTreeIndex computes the global node index a FORS ADRS' Hash
// subfield carries at a given tree height: every one of the ForsTrees
// subtrees for one hypertree leaf shares a single numbering space,
// exactly like the combined PRF tree in forsSignAll, so that no two
// FORS trees (or leaves, across different calls) ever hash under the
// same ADRS.
func forsTreeIndex(p Params, treeIdx, height, pos int) uint32 {
	return uint32(treeIdx*(1<<(p.ForsHeight-height)) + pos)
}

// forsTreehash builds one FORS subtree (a masked F-leaf per node)
// and returns both the authentication path to revealIdx and the
// subtree root. it is the single PRF iterator shared across every
// FORS tree in this signature: it was initialised once by the caller
// over the combined nExt = ForsTrees * 2^ForsHeight external-node PRF
// tree, and this tree's t leaves are exactly the next t values it
// produces in sequence. forsAddr carries this signature's hypertree
// position (layer 0, tree address, keypair = idx_leaf); it is copied
// into every ADRS built here so FORS's public hash calls stay
// domain-separated per hypertree leaf, not just per FORS tree.
func forsTreehash(p Params, ctx *sessionContext, it *prfIterator, forsAddr ADRS, treeIdx, revealIdx int) (authPath [][]byte, root []byte) {
	t := 1 << p.ForsHeight

	leaves := make([][]byte, t)
	for j := 0; j < t; j++ {
		_, secret := it.prfIterNext()
		leafAdrs := forsAddr
		leafAdrs.SetType(AdrsForsTree)
		leafAdrs.SetChain(0)
		leafAdrs.SetHash(forsTreeIndex(p, treeIdx, 0, j))
		cs := setUpFBlock(ctx, &leafAdrs, secret)
		fTransform(p.B, cs, false)
		leaves[j] = cs.runningHash(false)
	}

	cur := leaves
	idx := revealIdx
	authPath = make([][]byte, p.ForsHeight)
	for height := 0; len(cur) > 1; height++ {
		authPath[height] = cur[idx^1]
		next := make([][]byte, len(cur)/2)
		nodeAdrs := forsAddr
		nodeAdrs.SetType(AdrsForsTree)
		nodeAdrs.SetChain(uint32(height + 1))
		for j := 0; j < len(next); j++ {
			nodeAdrs.SetHash(forsTreeIndex(p, treeIdx, height+1, j))
			next[j] = thash(ctx.PubSeed, &nodeAdrs, concatAll([][]byte{cur[2*j], cur[2*j+1]}), p.N)
		}
		cur = next
		idx >>= 1
	}
	return authPath, cur[0]
}

// forsSignAll derives the FORS signature's secret-key fields and
// authentication paths for every tree, plus the roots needed to
// rebuild the FORS public key. All ForsTrees subtrees draw their
// secrets from one combined PRF tree of nExt = ForsTrees * 2^ForsHeight
// external nodes rooted at ctx.ForsSeed, per §4.I: tree i occupies the
// external range [i*t, (i+1)*t) of that combined tree, and every leaf
// oracle call across every tree draws its next value from the same
// shared iterator rather than each tree getting its own freshly-rooted
// one. forsAddr identifies the hypertree leaf this FORS key belongs to
// (layer 0, the leaf's tree address, keypair = idx_leaf); every ADRS
// built for FORS's public hashes, including the PRF tree's own
// address, is copied from it, matching the reference's
// copy_keypair_addr(fors_tree_addr/fors_leaf_addr/fors_pk_addr/
// top_prf_addr, fors_addr) pattern (fors.c's fors_sign).
func forsSignAll(p Params, ctx *sessionContext, forsDigest []byte, forsAddr ADRS) (secrets [][]byte, authPaths [][][]byte, roots [][]byte) {
	indices := forsIndices(forsDigest, p)
	t := 1 << p.ForsHeight
	nExt := p.ForsTrees * t

	secrets = make([][]byte, p.ForsTrees)
	authPaths = make([][][]byte, p.ForsTrees)
	roots = make([][]byte, p.ForsTrees)

	prfAdrs := forsAddr
	prfAdrs.SetType(AdrsForsPRF)
	it := newPRFIterator(p.B, ctx, prfAdrs, nExt, nExt-1, ctx.ForsSeed)

	for i := 0; i < p.ForsTrees; i++ {
		globalIdx := indices[i] + i*t
		secretShared := evalSinglePRF(p.B, ctx, prfAdrs, ctx.ForsSeed, globalIdx, nExt)
		secrets[i] = combineShare(secretShared)

		path, root := forsTreehash(p, ctx, it, forsAddr, i, indices[i])
		authPaths[i] = path
		roots[i] = root
	}
	return secrets, authPaths, roots
}

// forsPkFromRoots compresses the per-tree roots into the FORS public
// key / signature root, the value that becomes the Merkle leaf for
// the bottommost hypertree layer. forsAddr is copied in so this hash
// stays domain-separated per hypertree leaf, matching fors_pk_addr in
// fors.c's fors_sign/fors_pk_from_sig.
func forsPkFromRoots(p Params, pubSeed []byte, forsAddr ADRS, roots [][]byte) []byte {
	adrs := forsAddr
	adrs.SetType(AdrsForsRoots)
	return thash(pubSeed, &adrs, concatAll(roots), p.N)
}

// forsPkFromSig is the unshared verifier path: recomputes every FORS
// root from its revealed secret and authentication path, with no
// masking at all. forsAddr carries the same hypertree position used
// by the signer, so the ADRS values line up exactly.
func forsPkFromSig(p Params, pubSeed []byte, forsDigest []byte, forsAddr ADRS, secrets [][]byte, authPaths [][][]byte) []byte {
	indices := forsIndices(forsDigest, p)
	roots := make([][]byte, p.ForsTrees)

	for i := 0; i < p.ForsTrees; i++ {
		leafAdrs := forsAddr
		leafAdrs.SetType(AdrsForsTree)
		leafAdrs.SetChain(0)
		leafAdrs.SetHash(forsTreeIndex(p, i, 0, indices[i]))
		node := thash(pubSeed, &leafAdrs, secrets[i], p.N)

		idx := indices[i]
		for h := 0; h < p.ForsHeight; h++ {
			nodeAdrs := forsAddr
			nodeAdrs.SetType(AdrsForsTree)
			nodeAdrs.SetChain(uint32(h + 1))
			nodeAdrs.SetHash(forsTreeIndex(p, i, h+1, idx>>1))

			var concat []byte
			if idx&1 == 0 {
				concat = append(append([]byte{}, node...), authPaths[i][h]...)
			} else {
				concat = append(append([]byte{}, authPaths[i][h]...), node...)
			}
			node = thash(pubSeed, &nodeAdrs, concat, p.N)
			idx >>= 1
		}
		roots[i] = node
	}

	return forsPkFromRoots(p, pubSeed, forsAddr, roots)
}

package slhdsa

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
)

// PublicKey is a parsed SLH-DSA-SHAKE public key: the public seed and
// the hypertree root, each n bytes, in FIPS 205's order. The root is
// computed with this package's own ADRS encoding and key derivation,
// so it does not equal the root a FIPS-205 implementation computes.
type PublicKey struct {
	Params  Params
	PubSeed []byte
	PubRoot []byte
}

// PrivateKey is a parsed SLH-DSA-SHAKE private key. Unlike a FIPS-205
// reference implementation, sk_seed never appears unshared during
// signing; it is split into 3 shares the moment a session context is
// built and never reassembled until a one-way hash consumes it.
type PrivateKey struct {
	Params  Params
	SKSeed  []byte
	SKPRF   []byte
	PubSeed []byte
	PubRoot []byte
}

// GenerateKey draws a fresh key pair under parameter set p. The
// public key's root is derived through the same masked PRF-tree /
// Merkle machinery signing uses, so a signature produced by this
// core always verifies against the key it claims to belong to
// (invariant 5, §8).
func GenerateKey(p Params) (*PublicKey, *PrivateKey, error) {
	if err := p.validate(); err != nil {
		return nil, nil, err
	}

	skSeed := make([]byte, p.N)
	skPRF := make([]byte, p.N)
	pubSeed := make([]byte, p.N)
	for _, b := range [][]byte{skSeed, skPRF, pubSeed} {
		if _, err := rand.Read(b); err != nil {
			return nil, nil, fmt.Errorf("slhdsa: generate key: %w", err)
		}
	}

	root, err := derivePublicRoot(p, pubSeed, skSeed)
	if err != nil {
		return nil, nil, err
	}

	pub := &PublicKey{Params: p, PubSeed: pubSeed, PubRoot: root}
	priv := &PrivateKey{Params: p, SKSeed: skSeed, SKPRF: skPRF, PubSeed: pubSeed, PubRoot: root}
	return pub, priv, nil
}

// DeriveKeyPair builds a key pair from an already-chosen seed triple
// rather than drawing fresh randomness, for KAT-style reproducible
// vectors (§8 S1/S6) and for callers that manage their own entropy.
func DeriveKeyPair(p Params, pubSeed, skSeed, skPRF []byte) (*PublicKey, *PrivateKey, error) {
	if err := p.validate(); err != nil {
		return nil, nil, err
	}
	if len(pubSeed) != p.N || len(skSeed) != p.N || len(skPRF) != p.N {
		return nil, nil, fmt.Errorf("slhdsa: derive key pair: seeds must be %d bytes", p.N)
	}

	root, err := derivePublicRoot(p, pubSeed, skSeed)
	if err != nil {
		return nil, nil, err
	}

	pub := &PublicKey{Params: p, PubSeed: append([]byte(nil), pubSeed...), PubRoot: root}
	priv := &PrivateKey{
		Params:  p,
		SKSeed:  append([]byte(nil), skSeed...),
		SKPRF:   append([]byte(nil), skPRF...),
		PubSeed: append([]byte(nil), pubSeed...),
		PubRoot: root,
	}
	return pub, priv, nil
}

// derivePublicRoot runs the masked PRF-tree / Merkle machinery over
// the top hypertree layer to compute the public key's root, the same
// path GenerateKey and signing both depend on (invariant 5, §8).
func derivePublicRoot(p Params, pubSeed, skSeed []byte) ([]byte, error) {
	ctx, err := newSessionContext(p)
	if err != nil {
		return nil, err
	}
	ctx.sessionInit(pubSeed, skSeed)

	z := &zeroizer{}
	defer z.run()
	z.track(ctx.MerkleKey[p.D-1])

	_, _, root := merkleLayer(p, ctx, p.D-1, 0, nil, -1)
	ctx.destroy()
	return root, nil
}

// Public returns priv's public key.
func (priv *PrivateKey) Public() *PublicKey {
	return &PublicKey{Params: priv.Params, PubSeed: priv.PubSeed, PubRoot: priv.PubRoot}
}

// digestCoords splits a message hash into the FORS digest and the
// hypertree path (tree, idxLeaf) it selects: k*a FORS bits, then
// (h - h') tree bits, then h' leaf bits, read back to back as one
// bit string with no byte alignment between the fields.
func digestCoords(p Params, mh []byte) (forsDigest []byte, tree uint64, idxLeaf uint32) {
	mdBits := p.ForsTrees * p.ForsHeight
	treeBits := p.FullHeight - p.TreeHeight
	leafBits := p.TreeHeight

	br := &bitReader{data: mh}
	fw := newBitWriter(mdBits)
	for i := 0; i < mdBits; i++ {
		fw.write(br.read(1), 1)
	}
	tree = br.read(treeBits)
	idxLeaf = uint32(br.read(leafBits))
	return fw.data, tree, idxLeaf
}

func digestBytes(p Params) int {
	mdBits := p.ForsTrees * p.ForsHeight
	treeBits := p.FullHeight - p.TreeHeight
	leafBits := p.TreeHeight
	return (mdBits + treeBits + leafBits + 7) / 8
}

// Sign produces a detached SLH-DSA-SHAKE signature over message. If
// optrand is nil, a fresh random value is drawn; per §5 the signature
// byte string never depends on which randomness the mask split used,
// only on the deterministic optrand-derived randomiser R.
func (priv *PrivateKey) Sign(message, optrand []byte) ([]byte, error) {
	p := priv.Params
	if optrand == nil {
		optrand = make([]byte, p.N)
		if _, err := rand.Read(optrand); err != nil {
			return nil, fmt.Errorf("slhdsa: sign: %w", err)
		}
	}

	r := prfMsg(priv.SKPRF, optrand, message, p.N)
	mh := hMsg(r, priv.PubSeed, priv.PubRoot, message, digestBytes(p))
	forsDigest, tree, idxLeaf := digestCoords(p, mh)

	ctx, err := newSessionContext(p)
	if err != nil {
		return nil, err
	}
	ctx.sessionInit(priv.PubSeed, priv.SKSeed)

	z := &zeroizer{}
	defer z.run()
	z.track(ctx.MerkleKey[p.D-1])

	ctx.sessionPreparePath(tree, idxLeaf)
	for i := 0; i < p.D-1; i++ {
		z.track(ctx.MerkleKey[i])
	}
	z.track(ctx.ForsSeed)

	leafAt, treeAddrAt := hypertreeCoords(p, tree, idxLeaf)
	var forsAddr ADRS
	forsAddr.SetLayer(0)
	forsAddr.SetTree(treeAddrAt[0])
	forsAddr.SetKeyPair(leafAt[0])

	forsSecrets, forsAuthPaths, forsRoots := forsSignAll(p, ctx, forsDigest, forsAddr)
	childRoot := forsPkFromRoots(p, priv.PubSeed, forsAddr, forsRoots)

	wotsSigs := make([][][]byte, p.D)
	authPaths := make([][][]byte, p.D)
	for level := 0; level < p.D; level++ {
		shares, path, root := merkleLayer(p, ctx, level, treeAddrAt[level], childRoot, int(leafAt[level]))
		wotsSigs[level] = shares
		authPaths[level] = path
		childRoot = root
	}
	ctx.destroy()

	sig := make([]byte, 0, p.SignatureSize())
	sig = append(sig, r...)
	for i := 0; i < p.ForsTrees; i++ {
		sig = append(sig, forsSecrets[i]...)
		for _, s := range forsAuthPaths[i] {
			sig = append(sig, s...)
		}
	}
	for level := 0; level < p.D; level++ {
		for _, s := range wotsSigs[level] {
			sig = append(sig, s...)
		}
		for _, s := range authPaths[level] {
			sig = append(sig, s...)
		}
	}
	return sig, nil
}

// Verify checks sig over message against pub. The verifier is
// entirely unshared: no masking, plain SHAKE-256 throughout, per §1's
// scoping of the core to key generation and signing only.
func Verify(pub *PublicKey, message, sig []byte) bool {
	p := pub.Params
	if len(sig) != p.SignatureSize() {
		return false
	}
	n := p.N

	r := sig[:n]
	sig = sig[n:]

	mh := hMsg(r, pub.PubSeed, pub.PubRoot, message, digestBytes(p))
	forsDigest, tree, idxLeaf := digestCoords(p, mh)

	forsSecrets := make([][]byte, p.ForsTrees)
	forsAuthPaths := make([][][]byte, p.ForsTrees)
	for i := 0; i < p.ForsTrees; i++ {
		forsSecrets[i] = sig[:n]
		sig = sig[n:]
		path := make([][]byte, p.ForsHeight)
		for h := 0; h < p.ForsHeight; h++ {
			path[h] = sig[:n]
			sig = sig[n:]
		}
		forsAuthPaths[i] = path
	}
	leafAt, treeAddrAt := hypertreeCoords(p, tree, idxLeaf)
	var forsAddr ADRS
	forsAddr.SetLayer(0)
	forsAddr.SetTree(treeAddrAt[0])
	forsAddr.SetKeyPair(leafAt[0])
	childRoot := forsPkFromSig(p, pub.PubSeed, forsDigest, forsAddr, forsSecrets, forsAuthPaths)

	for level := 0; level < p.D; level++ {
		shares := make([][]byte, p.WotsLen)
		for i := 0; i < p.WotsLen; i++ {
			shares[i] = sig[:n]
			sig = sig[n:]
		}
		authPath := make([][]byte, p.TreeHeight)
		for h := 0; h < p.TreeHeight; h++ {
			authPath[h] = sig[:n]
			sig = sig[n:]
		}

		var adrsBase ADRS
		adrsBase.SetLayer(uint32(level))
		adrsBase.SetTree(treeAddrAt[level])
		adrsBase.SetKeyPair(leafAt[level])

		leafHash := wotsPkFromSig(p, pub.PubSeed, adrsBase, childRoot, shares)
		childRoot = merkleRootFromAuthPath(p, pub.PubSeed, level, treeAddrAt[level], leafAt[level], leafHash, authPath)
	}

	return subtle.ConstantTimeCompare(childRoot, pub.PubRoot) == 1
}

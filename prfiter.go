package slhdsa

// Component F: the PRF iterator. Walks external nodes of a 4-ary PRF
// tree in index order, 0, 1, ..., up to and including a caller-chosen
// stop value, keeping a bounded on-path cache so each step costs one
// masked hash rather than a full root-to-leaf descent.
//
// Nodes are numbered as in §3: index 0 is the root, the children of
// node i are 4i+1..4i+4, and external nodes occupy the tail of that
// numbering starting at floor((n_ext+1)/3).

// prfPathDepth bounds the iterator's path cache. External nodes start
// at internal index floor((n_ext+1)/3), so the last one sits near
// 4*n_ext/3; for trees of up to 2^19 external nodes that is below
// (4^11-1)/3, the first node at depth 11, so 11 levels (depths 0..10)
// suffice. The SHAKE-192s and SHAKE-256s FORS trees reach depth 10.
const prfPathDepth = 11

type prfPathEntry struct {
	node  int
	count int
	value [3][]byte
}

// prfIterator holds the descent path used to amortise successive
// prfIterNext calls.
type prfIterator struct {
	b    int
	ctx  *sessionContext
	adrs ADRS

	minNode  int
	stopNode int
	numNode  int
	curNode  int

	path [prfPathDepth]prfPathEntry
}

func prfCount(node int) int { return (node + 3) % 4 }

// newPRFIterator initialises an iterator over external nodes
// 0..stopValue (inclusive) of an n_ext-leaf PRF tree rooted at
// sharedRoot. adrs is the PRF-typed address template for every edge
// hash; its PRF-index subfield is overwritten per edge.
func newPRFIterator(b int, ctx *sessionContext, adrs ADRS, nExt, stopValue int, sharedRoot [3][]byte) *prfIterator {
	it := &prfIterator{b: b, ctx: ctx, adrs: adrs}
	it.minNode = (nExt + 1) / 3
	it.stopNode = stopValue + it.minNode

	var stack []int
	i := it.minNode
	for i != 0 {
		stack = append(stack, i)
		i = (i - 1) / 4
	}
	sp := len(stack)
	it.numNode = sp + 1

	it.path[0] = prfPathEntry{node: 0, count: prfCount(0), value: sharedRoot}
	for k := 1; k <= sp; k++ {
		node := stack[sp-k]
		a := it.adrs
		a.SetPRFIndex(uint64(node))
		val := prfHash(it.b, it.ctx, &a, it.path[k-1].value)
		it.path[k] = prfPathEntry{node: node, count: prfCount(node), value: val}
	}

	it.curNode = it.minNode
	return it
}

// prfIterNext emits the shared value of the current external node and
// advances to the next one. Returns the external index (0-based) of
// the emitted node, or -1 once the iteration is exhausted (a flow
// signal per §7, not an error).
func (it *prfIterator) prfIterNext() (int, [3][]byte) {
	if it.curNode == -1 {
		return -1, [3][]byte{}
	}

	out := it.path[it.numNode-1].value
	index := it.curNode - it.minNode

	if it.curNode == it.stopNode {
		it.curNode = -1
		return index, out
	}

	i := it.numNode - 1
	for i > 0 && it.path[i].count >= 3 {
		i--
	}
	if i > 0 {
		it.path[i].node++
		it.path[i].count++
		a := it.adrs
		a.SetPRFIndex(uint64(it.path[i].node))
		it.path[i].value = prfHash(it.b, it.ctx, &a, it.path[i-1].value)
	} else {
		it.numNode++
	}
	for lvl := i + 1; lvl < it.numNode; lvl++ {
		node := 4*it.path[lvl-1].node + 1
		a := it.adrs
		a.SetPRFIndex(uint64(node))
		it.path[lvl] = prfPathEntry{
			node:  node,
			count: 0,
			value: prfHash(it.b, it.ctx, &a, it.path[lvl-1].value),
		}
	}

	it.curNode++
	return index, out
}

package slhdsa

// Component G: random-access PRF evaluation. Computes a single
// external node by climbing the path from external index i to the
// root, then descending and re-hashing at each level. O(log4 n_ext)
// masked hashes; no caching, the complement to the amortised
// iterator in prfiter.go.
func evalSinglePRF(b int, ctx *sessionContext, adrs ADRS, sharedRoot [3][]byte, extIndex, nExt int) [3][]byte {
	minNode := (nExt + 1) / 3
	node := extIndex + minNode

	var path []int
	for i := node; i != 0; i = (i - 1) / 4 {
		path = append(path, i)
	}

	val := sharedRoot
	for k := len(path) - 1; k >= 0; k-- {
		a := adrs
		a.SetPRFIndex(uint64(path[k]))
		val = prfHash(b, ctx, &a, val)
	}
	return val
}

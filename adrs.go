package slhdsa

import "encoding/binary"

// Address-type tags stored in an ADRS' Type subfield.
const (
	AdrsWotsHash  uint32 = 0
	AdrsWotsPK    uint32 = 1
	AdrsTree      uint32 = 2
	AdrsForsTree  uint32 = 3
	AdrsForsRoots uint32 = 4
	AdrsWotsPRF   uint32 = 5
	AdrsForsPRF   uint32 = 6
	AdrsPrfMerkle uint32 = 7
)

// hashAddrOffset is the byte offset of the "hash" subfield within a
// 32-byte ADRS. It sits in the upper half of the ADRS' 4th lane, so
// incrementing it in place costs one 64-bit add rather than a full
// ADRS re-encode.
const hashAddrOffset = 28

// ADRS is the 32-byte SLH-DSA address structure. The core only reads
// and writes the Type, PRF-index and Hash subfields; everything else
// is opaque bookkeeping for the outer WOTS/FORS/Merkle machinery.
type ADRS [32]byte

func (a *ADRS) SetLayer(layer uint32) { binary.LittleEndian.PutUint32(a[0:4], layer) }

func (a *ADRS) SetTree(tree uint64) { binary.LittleEndian.PutUint64(a[4:12], tree) }

func (a *ADRS) SetType(t uint32) { binary.LittleEndian.PutUint32(a[16:20], t) }

func (a *ADRS) Type() uint32 { return binary.LittleEndian.Uint32(a[16:20]) }

// SetKeyPair sets the WOTS/FORS keypair-address subfield (word1).
func (a *ADRS) SetKeyPair(v uint32) { binary.LittleEndian.PutUint32(a[20:24], v) }

// SetChain sets the WOTS chain-address subfield, or the tree-height
// subfield of a TREE-typed ADRS (word2, same offset).
func (a *ADRS) SetChain(v uint32) { binary.LittleEndian.PutUint32(a[24:28], v) }

// SetHash sets the WOTS hash-address subfield, or the tree-index
// subfield of a TREE-typed ADRS (word3, same offset).
func (a *ADRS) SetHash(v uint32) { binary.LittleEndian.PutUint32(a[hashAddrOffset:32], v) }

func (a *ADRS) Hash() uint32 { return binary.LittleEndian.Uint32(a[hashAddrOffset:32]) }

// SetPRFIndex packs a PRF-tree node index into the word2/word3
// pair of a PRF-typed ADRS (up to 2^19 external nodes per §3, well
// within 48 bits).
func (a *ADRS) SetPRFIndex(i uint64) {
	binary.LittleEndian.PutUint32(a[24:28], uint32(i>>32))
	binary.LittleEndian.PutUint32(a[28:32], uint32(i))
}

// lanes views the ADRS as 4 little-endian 64-bit lanes, the form it
// takes once copied into a chain state's plane-0 rate window.
func (a *ADRS) lanes() [4]uint64 {
	var out [4]uint64
	for i := 0; i < 4; i++ {
		out[i] = binary.LittleEndian.Uint64(a[i*8 : i*8+8])
	}
	return out
}

package slhdsa

import "encoding/binary"

// Component C: byte-string <-> 64-bit-lane conversion, and the
// chain-state padding helpers shared by the F-block builder in
// chain.go.

// bytesToLanes little-endian-packs src into dst, one lane per 8 bytes.
// src must be a multiple of 8 bytes long.
func bytesToLanes(dst []uint64, src []byte) {
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint64(src[i*8 : i*8+8])
	}
}

// lanesToBytes is the inverse of bytesToLanes, writing n bytes from
// the lane window src.
func lanesToBytes(dst []byte, src []uint64) {
	for i := 0; i*8 < len(dst); i++ {
		binary.LittleEndian.PutUint64(dst[i*8:], src[i])
	}
}

// shakeDomainPad writes the SHAKE-256 simple domain-separation pad
// (0x1f ... 0x80) for an absorbed message ending at lane offset
// msgEnd, within a rate that spans lanes [0, rateLanes). Used on
// plane 0 only: padding bytes are public.
func shakeDomainPad(plane *[25]uint64, msgEnd, rateLanes int) {
	plane[msgEnd] ^= 0x1f
	plane[rateLanes-1] ^= 1 << 63
}

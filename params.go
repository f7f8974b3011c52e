package slhdsa

import "fmt"

// Params fixes one SLH-DSA-SHAKE instance. Only the "simple" SHAKE-256
// parameter family is supported (FIPS 205 table 2, s/f variants).
type Params struct {
	Name string

	N int // security parameter, bytes: 16, 24 or 32
	B int // blinded-rounds prefix/suffix for the masked permutation: 2 or 3

	FullHeight int // total hypertree height
	D          int // number of Merkle layers
	TreeHeight int // height of one Merkle layer (FullHeight / D)

	WotsW     int // Winternitz parameter, fixed at 16
	WotsLogW  int
	WotsLen1  int
	WotsLen2  int
	WotsLen   int

	ForsHeight int // height of one FORS tree
	ForsTrees  int // number of FORS trees (k)
}

func newParams(name string, n, fullHeight, d, forsHeight, forsTrees int) Params {
	wotsLen1 := (8*n + 3) / 4 // ceil(8n / log2(16))
	wotsLen2 := 3             // floor(log2(len1*(w-1))/log2(w)) + 1, constant for w=16, n in {16,24,32}
	p := Params{
		Name:       name,
		N:          n,
		B:          3,
		FullHeight: fullHeight,
		D:          d,
		TreeHeight: fullHeight / d,
		WotsW:      16,
		WotsLogW:   4,
		WotsLen1:   wotsLen1,
		WotsLen2:   wotsLen2,
		WotsLen:    wotsLen1 + wotsLen2,
		ForsHeight: forsHeight,
		ForsTrees:  forsTrees,
	}
	return p
}

// Named parameter sets, FIPS 205 table 2.
var (
	Params128s = newParams("SLH-DSA-SHAKE-128s", 16, 63, 7, 12, 14)
	Params128f = newParams("SLH-DSA-SHAKE-128f", 16, 66, 22, 6, 33)
	Params192s = newParams("SLH-DSA-SHAKE-192s", 24, 63, 7, 14, 17)
	Params192f = newParams("SLH-DSA-SHAKE-192f", 24, 66, 22, 8, 33)
	Params256s = newParams("SLH-DSA-SHAKE-256s", 32, 64, 8, 14, 22)
	Params256f = newParams("SLH-DSA-SHAKE-256f", 32, 68, 17, 9, 35)
)

// validate rejects a misconfigured parameter set at construction time,
// before any session context exists, per the spec's error model: buffer
// sizing is a compile-time property once n is known, never a runtime
// failure.
func (p Params) validate() error {
	switch p.N {
	case 16, 24, 32:
	default:
		return fmt.Errorf("slhdsa: unsupported security parameter n=%d, want 16, 24 or 32", p.N)
	}
	switch p.B {
	case 2, 3:
	default:
		return fmt.Errorf("slhdsa: unsupported blinded-round count B=%d, want 2 or 3", p.B)
	}
	if p.D <= 0 || p.FullHeight%p.D != 0 {
		return fmt.Errorf("slhdsa: hypertree layer count %d does not divide full height %d", p.D, p.FullHeight)
	}
	return nil
}

// PublicKeySize is the byte length of a public key under p.
func (p Params) PublicKeySize() int { return 2 * p.N }

// PrivateKeySize is the byte length of a private key under p.
func (p Params) PrivateKeySize() int { return 4 * p.N }

// SignatureSize is the byte length of a signature under p.
func (p Params) SignatureSize() int {
	forsSig := p.ForsTrees * (p.N + p.ForsHeight*p.N)
	wotsSig := p.D * p.WotsLen * p.N
	authPaths := p.D * p.TreeHeight * p.N
	return p.N + forsSig + wotsSig + authPaths
}

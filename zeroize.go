package slhdsa

// zeroizer is the scoped-destructor wrapper called for in §9: every
// buffer registered with it is wiped once, on whichever exit path the
// caller takes — normal return, an early return, or a panic unwinding
// through a deferred run(). Pattern is the masked-core analogue of
// the teacher's "wipe privkey" loop, generalised so GenerateKey and
// Sign don't have to remember every shared buffer at every return.
type zeroizer struct {
	shares [][3][]byte
}

func (z *zeroizer) track(s [3][]byte) { z.shares = append(z.shares, s) }

func (z *zeroizer) run() {
	for _, s := range z.shares {
		zeroShares(s)
	}
}

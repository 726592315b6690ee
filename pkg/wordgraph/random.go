package wordgraph

import "math/rand/v2"

// Chooser picks uniformly random indices. *rand.Rand from math/rand/v2
// satisfies it.
type Chooser interface {
	// IntN returns a uniformly random int in [0, n). n must be > 0.
	IntN(n int) int
}

// NewChooser returns a Chooser backed by a PCG source seeded with seed. Two
// choosers created with the same seed produce the same sequence.
func NewChooser(seed uint64) Chooser {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomChooser returns a Chooser seeded from the runtime's random source.
func RandomChooser() Chooser {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Pick returns a uniformly random element of items using c, or "" and false
// if items is empty. A nil c falls back to [RandomChooser].
func Pick(c Chooser, items []string) (string, bool) {
	if len(items) == 0 {
		return "", false
	}
	if c == nil {
		c = RandomChooser()
	}
	return items[c.IntN(len(items))], true
}

package services

import (
	"math/rand/v2"

	"lotofacil/domain/entities"
)

// RandomSource is the injectable randomness used by every generator. *rand.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
	Float64() float64
}

// NewRandomSource returns a PCG-backed source. Equal seeds give equal sequences.
func NewRandomSource(seed1, seed2 uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// NewUnseededRandomSource returns a source seeded from the runtime's entropy
func NewUnseededRandomSource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// shuffleTake draws count distinct members of pool uniformly at random.
// Partial Fisher-Yates: only the first count positions are shuffled. The pool is not modified.
func shuffleTake(rng RandomSource, pool entities.NumberSet, count int) entities.NumberSet {
	if count > len(pool) {
		count = len(pool)
	}
	if count <= 0 {
		return entities.NumberSet{}
	}

	work := pool.Clone()
	for i := 0; i < count; i++ {
		j := i + rng.IntN(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}

	return entities.NewNumberSet(work[:count]...)
}

// pickOne returns a uniformly chosen member of a non-empty pool
func pickOne(rng RandomSource, pool entities.NumberSet) int {
	return pool[rng.IntN(len(pool))]
}

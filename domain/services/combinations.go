package services

import (
	"iter"
	"math"

	"lotofacil/domain/entities"
)

const (
	// MaxCombinationCount is the saturated value returned when a binomial coefficient does not fit in int64
	MaxCombinationCount int64 = math.MaxInt64

	// DefaultClosureCeiling is the largest closure the generator agrees to enumerate
	DefaultClosureCeiling int64 = 5000
)

// Binomial returns C(n, k) using the multiplicative formula. Out-of-domain arguments return 0 and
// results that would overflow saturate to MaxCombinationCount.
func Binomial(n, k int) int64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}

	result := int64(1)
	for i := 1; i <= k; i++ {
		factor := int64(n - k + i)
		if result > MaxCombinationCount/factor {
			return MaxCombinationCount
		}
		// result*factor is C(n-k+i, i)*i, so the division is exact
		result = result * factor / int64(i)
	}
	return result
}

// Combinations yields every k-subset of set in lexicographic order of positions.
// Each subset is a fresh canonical NumberSet. k <= 0 or k > len(set) yields nothing.
func Combinations(set entities.NumberSet, k int) iter.Seq[entities.NumberSet] {
	return func(yield func(entities.NumberSet) bool) {
		n := len(set)
		if k <= 0 || k > n {
			return
		}

		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}

		for {
			combo := make(entities.NumberSet, k)
			for i, j := range idx {
				combo[i] = set[j]
			}
			if !yield(combo) {
				return
			}

			// advance the rightmost index that still has room
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}

// Enumerate collects every k-subset of set. Callers are expected to have checked Binomial(len(set), k)
// against a ceiling first.
func Enumerate(set entities.NumberSet, k int) []entities.NumberSet {
	set = entities.NewNumberSet(set...)

	var out []entities.NumberSet
	if count := Binomial(len(set), k); count > 0 && count <= DefaultClosureCeiling {
		out = make([]entities.NumberSet, 0, count)
	}
	for combo := range Combinations(set, k) {
		out = append(out, combo)
	}
	return out
}

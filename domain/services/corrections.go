package services

import (
	"lotofacil/domain/entities"

	log "github.com/sirupsen/logrus"
)

const (
	// RepeatMin and RepeatMax bound how many numbers of the latest draw a smart ticket keeps
	RepeatMin = 8
	RepeatMax = 10

	// MaxCorrectionAttempts caps the swap loop of EnforceRepeatRange
	MaxCorrectionAttempts = 25
)

// BalanceTolerance is the largest even/odd difference SelectBalanced leaves alone
func BalanceTolerance(count int) int {
	if count > 8 {
		return 4
	}
	return 2
}

// SelectBalanced takes the top count entries of ranked (best first) and, when the even/odd split
// is too lopsided, swaps the lowest-ranked member of the majority parity for the best-ranked
// remaining candidate of the minority parity. At most one swap is made.
func SelectBalanced(ranked []entities.NumberScore, count int) entities.NumberSet {
	if count > len(ranked) {
		count = len(ranked)
	}
	if count <= 0 {
		return entities.NumberSet{}
	}

	selected := make([]int, count)
	for i := range selected {
		selected[i] = ranked[i].Number
	}
	remaining := ranked[count:]

	evens := 0
	for _, n := range selected {
		if n%2 == 0 {
			evens++
		}
	}
	odds := count - evens

	diff := evens - odds
	if diff < 0 {
		diff = -diff
	}
	if diff <= BalanceTolerance(count) {
		return entities.NewNumberSet(selected...)
	}

	majorityParity := 0
	if odds > evens {
		majorityParity = 1
	}

	replacement := -1
	for _, candidate := range remaining {
		if candidate.Number%2 != majorityParity {
			replacement = candidate.Number
			break
		}
	}
	if replacement == -1 {
		return entities.NewNumberSet(selected...)
	}

	for i := len(selected) - 1; i >= 0; i-- {
		if selected[i]%2 == majorityParity {
			selected[i] = replacement
			break
		}
	}

	return entities.NewNumberSet(selected...)
}

// EnforceRepeatRange swaps numbers until the overlap between game and reference lies in
// [minRepeats, maxRepeats]. Too many repeats: the highest repeat is dropped and a random number
// outside reference and game is added. Too few: the highest non-repeat is dropped and a random
// unused member of reference is added. The loop gives up after MaxCorrectionAttempts swaps and
// returns the best effort.
func EnforceRepeatRange(game, reference entities.NumberSet, minRepeats, maxRepeats int, rng RandomSource) entities.NumberSet {
	repeats := game.Intersect(reference)
	fresh := game.Difference(reference)
	outside := reference.Complement(entities.UniverseSize)

	for attempt := 0; attempt < MaxCorrectionAttempts; attempt++ {
		switch {
		case len(repeats) > maxRepeats:
			candidates := outside.Difference(fresh)
			if len(candidates) == 0 {
				return repeats.Union(fresh)
			}
			repeats = repeats[:len(repeats)-1]
			fresh = fresh.Union(entities.NumberSet{pickOne(rng, candidates)})

		case len(repeats) < minRepeats:
			candidates := reference.Difference(repeats)
			if len(candidates) == 0 || len(fresh) == 0 {
				return repeats.Union(fresh)
			}
			fresh = fresh[:len(fresh)-1]
			repeats = repeats.Union(entities.NumberSet{pickOne(rng, candidates)})

		default:
			return repeats.Union(fresh)
		}
	}

	if n := len(repeats); n < minRepeats || n > maxRepeats {
		log.WithFields(log.Fields{
			"repeats":  n,
			"min":      minRepeats,
			"max":      maxRepeats,
			"attempts": MaxCorrectionAttempts,
		}).Warn("Repeat correction did not converge, keeping best effort")
	}

	return repeats.Union(fresh)
}

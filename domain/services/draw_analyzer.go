package services

import (
	"cmp"
	"slices"

	"lotofacil/domain/entities"
)

// AnalyzeDraw returns parity counts, absent numbers and, when previous is known, the numbers
// repeated from it and the new ones. With no previous draw both lists are empty.
func AnalyzeDraw(draw, previous *entities.DrawResult) entities.DrawStats {
	stats := entities.DrawStats{
		EvenCount:       draw.Numbers.EvenCount(),
		OddCount:        draw.Numbers.OddCount(),
		AbsentNumbers:   draw.Numbers.Complement(entities.UniverseSize),
		RepeatedNumbers: entities.NumberSet{},
		NewNumbers:      entities.NumberSet{},
	}

	if previous != nil {
		stats.RepeatedNumbers = draw.Numbers.Intersect(previous.Numbers)
		stats.NewNumbers = draw.Numbers.Difference(previous.Numbers)
	}
	return stats
}

// NumberFrequencies counts every number over the most recent window draws (all draws when
// window <= 0), most frequent first and ascending number on ties
func NumberFrequencies(history entities.History, window int) []entities.NumberFrequency {
	var counts [entities.UniverseSize + 1]int
	for _, draw := range history.Recent(window) {
		for _, n := range draw.Numbers {
			if n >= 1 && n <= entities.UniverseSize {
				counts[n]++
			}
		}
	}

	frequencies := make([]entities.NumberFrequency, 0, entities.UniverseSize)
	for n := 1; n <= entities.UniverseSize; n++ {
		frequencies = append(frequencies, entities.NumberFrequency{Number: n, Count: counts[n]})
	}

	slices.SortStableFunc(frequencies, func(a, b entities.NumberFrequency) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return frequencies
}

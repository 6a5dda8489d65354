package services

import (
	"fmt"

	"lotofacil/domain/entities"
)

// MinPatternSize is the smallest pattern worth tracking; a single number is just its frequency
const MinPatternSize = 2

// ValidatePattern checks that numbers can be searched for
func ValidatePattern(numbers entities.NumberSet) error {
	if len(numbers) < MinPatternSize || len(numbers) > entities.DrawSize {
		return fmt.Errorf("%w: select between %d and %d numbers, got %d",
			entities.ErrInvalidPattern, MinPatternSize, entities.DrawSize, len(numbers))
	}
	if !numbers.InRange(entities.UniverseSize) {
		return fmt.Errorf("%w: numbers must be within 1..%d", entities.ErrInvalidPattern, entities.UniverseSize)
	}
	return nil
}

// DrawsContaining returns every draw that holds all of numbers, in history order
func DrawsContaining(history entities.History, numbers entities.NumberSet) (entities.History, error) {
	if err := ValidatePattern(numbers); err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, entities.ErrInsufficientHistory
	}

	matches := entities.History{}
	for _, draw := range history {
		if numbers.IsSubsetOf(draw.Numbers) {
			matches = append(matches, draw)
		}
	}
	return matches, nil
}

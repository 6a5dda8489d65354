package testhelpers

import (
	"fmt"

	"lotofacil/config"
	"lotofacil/domain/entities"
)

// DefaultGroups returns the built-in group table
func DefaultGroups() entities.GroupConfig {
	return config.DefaultGroups()
}

// MustDraw builds a draw result or panics
func MustDraw(contestID int, numbers ...int) *entities.DrawResult {
	draw, err := entities.NewDrawResult(contestID, fmt.Sprintf("%02d/01/2024", contestID%28+1), numbers...)
	if err != nil {
		panic(err)
	}
	return draw
}

// RotatingHistory builds count valid draws, newest first, ending at contest latestContest.
// Each draw is the 15 numbers starting at an offset that moves by three per contest.
func RotatingHistory(latestContest, count int) entities.History {
	history := make(entities.History, 0, count)
	for i := 0; i < count; i++ {
		contest := latestContest - i
		start := (contest * 3) % entities.UniverseSize
		numbers := make([]int, 0, entities.DrawSize)
		for j := 0; j < entities.DrawSize; j++ {
			numbers = append(numbers, (start+j)%entities.UniverseSize+1)
		}
		history = append(history, MustDraw(contest, numbers...))
	}
	return history
}

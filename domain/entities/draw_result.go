package entities

import (
	"fmt"
	"time"
)

// DrawResult is an immutable historical draw. Corrections replace the whole record by ContestID.
type DrawResult struct {
	ContestID int       `db:"contest_id"`
	Date      string    `db:"draw_date"` // display date as published (dd/mm/yyyy)
	Numbers   NumberSet `db:"numbers"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewDrawResult builds a canonical draw result and validates it
func NewDrawResult(contestID int, date string, numbers ...int) (*DrawResult, error) {
	draw := &DrawResult{
		ContestID: contestID,
		Date:      date,
		Numbers:   NewNumberSet(numbers...),
	}
	if len(numbers) != len(draw.Numbers) {
		return nil, fmt.Errorf("%w: contest %d has repeated numbers", ErrInvalidDraw, contestID)
	}
	if err := draw.Validate(); err != nil {
		return nil, err
	}
	return draw, nil
}

// Validate checks the draw invariants: positive contest id and exactly 15 distinct numbers in [1,25]
func (d *DrawResult) Validate() error {
	if d.ContestID <= 0 {
		return fmt.Errorf("%w: contest id must be positive, got %d", ErrInvalidDraw, d.ContestID)
	}
	if len(d.Numbers) != DrawSize || !d.Numbers.Equal(NewNumberSet(d.Numbers...)) {
		return fmt.Errorf("%w: contest %d must have %d distinct numbers, got %d", ErrInvalidDraw, d.ContestID, DrawSize, len(NewNumberSet(d.Numbers...)))
	}
	if !d.Numbers.InRange(UniverseSize) {
		return fmt.Errorf("%w: contest %d has numbers outside 1..%d", ErrInvalidDraw, d.ContestID, UniverseSize)
	}
	return nil
}

// Contains reports whether n was drawn
func (d *DrawResult) Contains(n int) bool {
	return d.Numbers.Contains(n)
}

// History is an ordered, newest-first collection of draw results. It is never mutated by the domain.
type History []*DrawResult

// Latest returns the most recent draw or nil for an empty history
func (h History) Latest() *DrawResult {
	if len(h) == 0 {
		return nil
	}
	return h[0]
}

// Recent returns at most n of the newest draws. n <= 0 returns the whole history.
func (h History) Recent(n int) History {
	if n <= 0 || n >= len(h) {
		return h
	}
	return h[:n]
}

// Previous returns the draw immediately older than index i, or nil
func (h History) Previous(i int) *DrawResult {
	if i < 0 || i+1 >= len(h) {
		return nil
	}
	return h[i+1]
}

// CountIn returns how many times n appears across the draws
func (h History) CountIn(n int) int {
	count := 0
	for _, draw := range h {
		if draw.Contains(n) {
			count++
		}
	}
	return count
}

// Gap returns the number of draws between referenceContestID and the nearest earlier draw containing n,
// scanning newest-first. A number absent from every earlier draw yields -1.
func (h History) Gap(n int, referenceContestID int) int {
	for _, draw := range h {
		if draw.ContestID < referenceContestID && draw.Contains(n) {
			return referenceContestID - draw.ContestID - 1
		}
	}
	return -1
}

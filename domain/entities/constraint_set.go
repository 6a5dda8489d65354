package entities

import "fmt"

// NumberConstraintSet is a snapshot of the interactive constraints used by the constrained and closure modes
type NumberConstraintSet struct {
	Fixed      NumberSet
	Excluded   NumberSet
	TargetSize int
}

// NewConstraintSet canonicalises the fixed and excluded lists
func NewConstraintSet(fixed, excluded []int, targetSize int) NumberConstraintSet {
	return NumberConstraintSet{
		Fixed:      NewNumberSet(fixed...),
		Excluded:   NewNumberSet(excluded...),
		TargetSize: targetSize,
	}
}

// Validate checks structural soundness: members in range, fixed and excluded disjoint, positive size.
// It does not enforce playable limits; see ValidateLimits.
func (c NumberConstraintSet) Validate() error {
	if c.TargetSize <= 0 {
		return fmt.Errorf("%w: target size must be positive, got %d", ErrInvalidConstraints, c.TargetSize)
	}
	if !c.Fixed.InRange(UniverseSize) || !c.Excluded.InRange(UniverseSize) {
		return fmt.Errorf("%w: numbers must be within 1..%d", ErrInvalidConstraints, UniverseSize)
	}
	if overlap := c.Fixed.Intersect(c.Excluded); len(overlap) > 0 {
		return fmt.Errorf("%w: numbers %v are both fixed and excluded", ErrInvalidConstraints, overlap.Ints())
	}
	return nil
}

// ValidateLimits checks the interactive limits: at most 18 fixed, at most 9 excluded, size in [15,23]
func (c NumberConstraintSet) ValidateLimits() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if len(c.Fixed) > MaxFixedNumbers {
		return fmt.Errorf("%w: at most %d fixed numbers, got %d", ErrInvalidConstraints, MaxFixedNumbers, len(c.Fixed))
	}
	if len(c.Excluded) > MaxExcludedNumbers {
		return fmt.Errorf("%w: at most %d excluded numbers, got %d", ErrInvalidConstraints, MaxExcludedNumbers, len(c.Excluded))
	}
	if c.TargetSize < MinTicketSize || c.TargetSize > MaxTicketSize {
		return fmt.Errorf("%w: ticket size must be between %d and %d, got %d", ErrInvalidConstraints, MinTicketSize, MaxTicketSize, c.TargetSize)
	}
	return nil
}

// Available returns universe − fixed − excluded
func (c NumberConstraintSet) Available() NumberSet {
	return Universe(UniverseSize).Difference(c.Fixed, c.Excluded)
}

// Needed returns how many numbers must still be chosen from Available
func (c NumberConstraintSet) Needed() int {
	return c.TargetSize - len(c.Fixed)
}

// Feasible reports whether a full-size completion exists
func (c NumberConstraintSet) Feasible() bool {
	return c.Needed() <= len(c.Available())
}

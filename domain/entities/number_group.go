package entities

import "fmt"

// NumberGroup is a named, fixed subset of the universe
type NumberGroup struct {
	Name    string    `toml:"name"`
	Numbers NumberSet `toml:"numbers"`
}

// Contains reports membership
func (g NumberGroup) Contains(n int) bool {
	return g.Numbers.Contains(n)
}

// GroupConfig is the static group table. Primary and Secondary partition the universe;
// Auxiliary groups only contribute to scoring.
type GroupConfig struct {
	Primary   NumberGroup   `toml:"primary"`
	Secondary NumberGroup   `toml:"secondary"`
	Auxiliary []NumberGroup `toml:"auxiliary"`
}

// All returns the partition groups followed by the auxiliary ones
func (c GroupConfig) All() []NumberGroup {
	return append([]NumberGroup{c.Primary, c.Secondary}, c.Auxiliary...)
}

// Validate checks the table once, at load time
func (c GroupConfig) Validate() error {
	for _, group := range c.All() {
		if group.Name == "" {
			return fmt.Errorf("%w: every group needs a name", ErrInvalidGroups)
		}
		if len(group.Numbers) == 0 || !group.Numbers.InRange(UniverseSize) {
			return fmt.Errorf("%w: group %s must hold numbers within 1..%d", ErrInvalidGroups, group.Name, UniverseSize)
		}
		if !group.Numbers.Equal(NewNumberSet(group.Numbers...)) {
			return fmt.Errorf("%w: group %s has repeated or unsorted numbers", ErrInvalidGroups, group.Name)
		}
	}
	if !c.Primary.Numbers.IsDisjoint(c.Secondary.Numbers) {
		return fmt.Errorf("%w: groups %s and %s overlap", ErrInvalidGroups, c.Primary.Name, c.Secondary.Name)
	}
	if !c.Primary.Numbers.Union(c.Secondary.Numbers).Equal(Universe(UniverseSize)) {
		return fmt.Errorf("%w: groups %s and %s must cover 1..%d", ErrInvalidGroups, c.Primary.Name, c.Secondary.Name, UniverseSize)
	}
	return nil
}

// ValidateSplit checks that each partition can supply its share of a ticket. Both picks get one
// spare member because the smart split may move one number between partitions.
func (c GroupConfig) ValidateSplit(primaryPick, secondaryPick int) error {
	if primaryPick <= 0 || secondaryPick <= 0 || primaryPick+secondaryPick != DrawSize {
		return fmt.Errorf("%w: split %d+%d must add up to %d", ErrInvalidGroups, primaryPick, secondaryPick, DrawSize)
	}
	if len(c.Primary.Numbers) < primaryPick+1 {
		return fmt.Errorf("%w: group %s needs at least %d numbers, has %d",
			ErrInvalidGroups, c.Primary.Name, primaryPick+1, len(c.Primary.Numbers))
	}
	if len(c.Secondary.Numbers) < secondaryPick+1 {
		return fmt.Errorf("%w: group %s needs at least %d numbers, has %d",
			ErrInvalidGroups, c.Secondary.Name, secondaryPick+1, len(c.Secondary.Numbers))
	}
	return nil
}

// MembershipCount returns how many auxiliary groups contain n
func (c GroupConfig) MembershipCount(n int) int {
	count := 0
	for _, group := range c.Auxiliary {
		if group.Contains(n) {
			count++
		}
	}
	return count
}

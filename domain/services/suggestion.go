package services

import (
	"lotofacil/domain/entities"
)

const (
	suggestionWindow = 5
	suggestionSize   = 3

	// a number is strong when at least this many auxiliary groups contain it
	strongMembership = 4

	hotFrequency       = 4
	strongHotFrequency = 3
	coldFrequency      = 1
)

// SuggestConstraints proposes up to three fixed and three excluded numbers from the last five
// draws. Hot numbers (frequent, or fairly frequent and strong in the auxiliary groups) become fixed,
// padded with primary-group numbers of the latest draw. Cold numbers absent from the latest draw
// become excluded, padded with hot numbers drawn in every one of the five draws.
func SuggestConstraints(history entities.History, groups entities.GroupConfig) (entities.ConstraintSuggestion, error) {
	latest := history.Latest()
	if latest == nil {
		return entities.ConstraintSuggestion{}, entities.ErrInsufficientHistory
	}

	var frequency [entities.UniverseSize + 1]int
	recent := history.Recent(suggestionWindow)
	for _, draw := range recent {
		for _, n := range draw.Numbers {
			if n >= 1 && n <= entities.UniverseSize {
				frequency[n]++
			}
		}
	}

	isHot := func(n int) bool {
		return frequency[n] >= hotFrequency ||
			(frequency[n] >= strongHotFrequency && groups.MembershipCount(n) >= strongMembership)
	}
	isCold := func(n int) bool {
		return frequency[n] <= coldFrequency && !latest.Contains(n)
	}

	// primary members first, then secondary, each in ascending order
	ordered := append(groups.Primary.Numbers.Clone(), groups.Secondary.Numbers...)

	var hot, cold []int
	for _, n := range ordered {
		if isHot(n) {
			hot = append(hot, n)
		}
		if isCold(n) {
			cold = append(cold, n)
		}
	}

	fixed := takeUpTo(hot, suggestionSize, nil)
	if len(fixed) < suggestionSize {
		repeats := latest.Numbers.Intersect(groups.Primary.Numbers)
		fixed = append(fixed, takeUpTo(repeats, suggestionSize-len(fixed), fixed)...)
	}

	excluded := takeUpTo(cold, suggestionSize, nil)
	if len(excluded) < suggestionSize {
		var everyDraw []int
		for _, n := range hot {
			if frequency[n] == suggestionWindow {
				everyDraw = append(everyDraw, n)
			}
		}
		skip := append(append([]int{}, excluded...), fixed...)
		excluded = append(excluded, takeUpTo(everyDraw, suggestionSize-len(excluded), skip)...)
	}

	return entities.ConstraintSuggestion{
		Fixed:    entities.NewNumberSet(fixed...),
		Excluded: entities.NewNumberSet(excluded...),
		Reason:   "Based on the last five draws and auxiliary group membership",
	}, nil
}

// takeUpTo returns the first limit members of candidates that are not in skip
func takeUpTo(candidates []int, limit int, skip []int) []int {
	skipped := entities.NewNumberSet(skip...)
	out := make([]int, 0, limit)
	for _, n := range candidates {
		if len(out) == limit {
			break
		}
		if !skipped.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

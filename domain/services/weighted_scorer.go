package services

import (
	"cmp"
	"slices"

	"lotofacil/domain/entities"
)

// ScoringProfile holds the coefficients of the per-number weighting heuristic.
// Smart and golden modes share the same scorer with different profiles.
type ScoringProfile struct {
	// FrequencyWindow draws are counted and each occurrence is worth FrequencyCoefficient
	FrequencyWindow      int
	FrequencyCoefficient float64

	// RecencyBonus is added when the number appeared in the most recent draw
	RecencyBonus float64

	// GapBonus is added when the number has been absent for more than GapThreshold draws
	GapThreshold int
	GapBonus     float64

	// Group heat is measured over GroupHeatWindow draws. AverageGroupHeat divides the
	// total hits by the number of draws in the window.
	GroupHeatWindow      int
	GroupHeatCoefficient float64
	AverageGroupHeat     bool

	// PrimaryGroupBonus is added to members of the primary group
	PrimaryGroupBonus float64

	// JitterMax bounds the uniform random term. Zero makes the profile deterministic.
	JitterMax float64
}

// SmartScoringProfile returns the weighting used by smart mode
func SmartScoringProfile() ScoringProfile {
	return ScoringProfile{
		FrequencyWindow:      20,
		FrequencyCoefficient: 10,
		RecencyBonus:         30,
		GapThreshold:         3,
		GapBonus:             5,
		GroupHeatWindow:      5,
		GroupHeatCoefficient: 3,
		AverageGroupHeat:     true,
		JitterMax:            15,
	}
}

// GoldenScoringProfile returns the deterministic weighting used by golden mode
func GoldenScoringProfile() ScoringProfile {
	return ScoringProfile{
		FrequencyWindow:      20,
		FrequencyCoefficient: 10,
		GapThreshold:         4,
		GapBonus:             5,
		GroupHeatWindow:      5,
		GroupHeatCoefficient: 1,
		PrimaryGroupBonus:    5,
	}
}

// WeightedScorer ranks numbers by recent frequency, recency, gap and group heat
type WeightedScorer struct {
	profile ScoringProfile
	groups  entities.GroupConfig
	rng     RandomSource
}

// NewWeightedScorer creates a scorer. rng may be nil for profiles without jitter.
func NewWeightedScorer(profile ScoringProfile, groups entities.GroupConfig, rng RandomSource) *WeightedScorer {
	return &WeightedScorer{
		profile: profile,
		groups:  groups,
		rng:     rng,
	}
}

// ScoreSnapshot carries the history-dependent terms of one scoring pass.
// Build it once per generation call and score every candidate against it.
type ScoreSnapshot struct {
	scorer    *WeightedScorer
	history   entities.History
	reference int
	frequency [entities.UniverseSize + 1]int
	groupHeat []float64
	latest    *entities.DrawResult
}

// Snapshot precomputes the scoring terms with the reference contest one past the latest draw
func (s *WeightedScorer) Snapshot(history entities.History) *ScoreSnapshot {
	reference := 0
	if latest := history.Latest(); latest != nil {
		reference = latest.ContestID + 1
	}
	return s.SnapshotAt(history, reference)
}

// SnapshotAt precomputes the scoring terms for an explicit reference contest
func (s *WeightedScorer) SnapshotAt(history entities.History, referenceContestID int) *ScoreSnapshot {
	snap := &ScoreSnapshot{
		scorer:    s,
		history:   history,
		reference: referenceContestID,
		latest:    history.Latest(),
		groupHeat: make([]float64, len(s.groups.Auxiliary)),
	}

	for _, draw := range history.Recent(s.profile.FrequencyWindow) {
		for _, n := range draw.Numbers {
			if n >= 1 && n <= entities.UniverseSize {
				snap.frequency[n]++
			}
		}
	}

	heatWindow := history.Recent(s.profile.GroupHeatWindow)
	for i, group := range s.groups.Auxiliary {
		total := 0
		for _, draw := range heatWindow {
			total += draw.Numbers.IntersectCount(group.Numbers)
		}
		heat := float64(total)
		if s.profile.AverageGroupHeat {
			if len(heatWindow) == 0 {
				heat = 0
			} else {
				heat /= float64(len(heatWindow))
			}
		}
		snap.groupHeat[i] = heat
	}

	return snap
}

// Score returns the weight of number n against history, drawing jitter when the profile has any
func (s *WeightedScorer) Score(n int, history entities.History, referenceContestID int) float64 {
	return s.SnapshotAt(history, referenceContestID).Score(n)
}

// Base returns the deterministic part of the weight
func (ss *ScoreSnapshot) Base(n int) float64 {
	p := ss.scorer.profile
	groups := ss.scorer.groups

	weight := 0.0
	if n >= 1 && n <= entities.UniverseSize {
		weight += float64(ss.frequency[n]) * p.FrequencyCoefficient
	}
	if p.RecencyBonus != 0 && ss.latest != nil && ss.latest.Contains(n) {
		weight += p.RecencyBonus
	}
	if p.GapBonus != 0 && ss.history.Gap(n, ss.reference) > p.GapThreshold {
		weight += p.GapBonus
	}
	for i, group := range groups.Auxiliary {
		if group.Contains(n) {
			weight += ss.groupHeat[i] * p.GroupHeatCoefficient
		}
	}
	if p.PrimaryGroupBonus != 0 && groups.Primary.Contains(n) {
		weight += p.PrimaryGroupBonus
	}
	return weight
}

// Score returns the deterministic weight plus a fresh jitter draw
func (ss *ScoreSnapshot) Score(n int) float64 {
	weight := ss.Base(n)
	if ss.scorer.profile.JitterMax > 0 && ss.scorer.rng != nil {
		weight += ss.scorer.rng.Float64() * ss.scorer.profile.JitterMax
	}
	return weight
}

// Rank scores every member of pool exactly once and returns them by descending weight.
// Ties keep ascending number order.
func (ss *ScoreSnapshot) Rank(pool entities.NumberSet) []entities.NumberScore {
	scores := make([]entities.NumberScore, 0, len(pool))
	for _, n := range pool {
		scores = append(scores, entities.NumberScore{Number: n, Weight: ss.Score(n)})
	}

	slices.SortStableFunc(scores, func(a, b entities.NumberScore) int {
		return cmp.Compare(b.Weight, a.Weight)
	})
	return scores
}

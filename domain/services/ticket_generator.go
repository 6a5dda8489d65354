package services

import (
	"fmt"

	"lotofacil/domain/entities"

	log "github.com/sirupsen/logrus"
)

const (
	// DefaultPrimaryPick and DefaultSecondaryPick split a 15-number ticket between the two partitions
	DefaultPrimaryPick   = 9
	DefaultSecondaryPick = 6

	// DefaultMaxBatchSize bounds how many tickets one request may generate
	DefaultMaxBatchSize = 100

	// smart mode shifts the split by one when the primary group runs hot or cold
	smartTrendWindow        = 10
	smartHotPrimaryAverage  = 9.6
	smartColdPrimaryAverage = 8.4

	// golden mode keeps this many numbers from the latest draw and fills the rest with absents
	goldenRepeats = 9
	goldenAbsents = entities.DrawSize - goldenRepeats
)

// GeneratorConfig holds the tunables of a TicketGenerator
type GeneratorConfig struct {
	Groups         entities.GroupConfig
	PrimaryPick    int
	SecondaryPick  int
	ClosureCeiling int64
	MaxBatchSize   int
}

// DefaultGeneratorConfig returns the stock split, ceiling and batch bound for a group table
func DefaultGeneratorConfig(groups entities.GroupConfig) GeneratorConfig {
	return GeneratorConfig{
		Groups:         groups,
		PrimaryPick:    DefaultPrimaryPick,
		SecondaryPick:  DefaultSecondaryPick,
		ClosureCeiling: DefaultClosureCeiling,
		MaxBatchSize:   DefaultMaxBatchSize,
	}
}

// TicketGenerator produces tickets in every generation mode. It never mutates its inputs.
type TicketGenerator struct {
	config GeneratorConfig
	rng    RandomSource
	smart  *WeightedScorer
	golden *WeightedScorer
}

// NewTicketGenerator creates a generator drawing randomness from rng. It fails when the group
// table cannot supply the configured split.
func NewTicketGenerator(config GeneratorConfig, rng RandomSource) (*TicketGenerator, error) {
	if config.ClosureCeiling <= 0 {
		config.ClosureCeiling = DefaultClosureCeiling
	}
	if config.MaxBatchSize <= 0 {
		config.MaxBatchSize = DefaultMaxBatchSize
	}
	if config.PrimaryPick+config.SecondaryPick != entities.DrawSize {
		config.PrimaryPick = DefaultPrimaryPick
		config.SecondaryPick = DefaultSecondaryPick
	}
	if err := config.Groups.ValidateSplit(config.PrimaryPick, config.SecondaryPick); err != nil {
		return nil, fmt.Errorf("failed to create ticket generator: %w", err)
	}

	return &TicketGenerator{
		config: config,
		rng:    rng,
		smart:  NewWeightedScorer(SmartScoringProfile(), config.Groups, rng),
		golden: NewWeightedScorer(GoldenScoringProfile(), config.Groups, rng),
	}, nil
}

// Config returns the effective configuration
func (g *TicketGenerator) Config() GeneratorConfig {
	return g.config
}

// FixedPattern picks 9 random members of the primary group and 6 of the secondary group
func (g *TicketGenerator) FixedPattern() *entities.Ticket {
	numbers := shuffleTake(g.rng, g.config.Groups.Primary.Numbers, g.config.PrimaryPick).
		Union(shuffleTake(g.rng, g.config.Groups.Secondary.Numbers, g.config.SecondaryPick))

	return entities.NewGeneratedTicket(entities.ModeFixedPattern, numbers)
}

// smartSplit adapts the primary/secondary split to the primary group's recent average
func (g *TicketGenerator) smartSplit(history entities.History) (primary, secondary int) {
	primary, secondary = g.config.PrimaryPick, g.config.SecondaryPick

	recent := history.Recent(smartTrendWindow)
	if len(recent) == 0 {
		return primary, secondary
	}

	total := 0
	for _, draw := range recent {
		total += draw.Numbers.IntersectCount(g.config.Groups.Primary.Numbers)
	}
	average := float64(total) / float64(len(recent))

	switch {
	case average >= smartHotPrimaryAverage:
		return primary + 1, secondary - 1
	case average <= smartColdPrimaryAverage:
		return primary - 1, secondary + 1
	}
	return primary, secondary
}

// Smart ranks each partition with the jittered smart profile, picks a parity-balanced subset from
// each and then corrects the overlap with the latest draw into [RepeatMin, RepeatMax]
func (g *TicketGenerator) Smart(history entities.History) (*entities.Ticket, error) {
	latest := history.Latest()
	if latest == nil {
		return nil, entities.ErrInsufficientHistory
	}

	primaryCount, secondaryCount := g.smartSplit(history)
	snapshot := g.smart.Snapshot(history)

	game := SelectBalanced(snapshot.Rank(g.config.Groups.Primary.Numbers), primaryCount).
		Union(SelectBalanced(snapshot.Rank(g.config.Groups.Secondary.Numbers), secondaryCount))

	game = EnforceRepeatRange(game, latest.Numbers, RepeatMin, RepeatMax, g.rng)

	log.WithFields(log.Fields{
		"contest":   latest.ContestID,
		"primary":   primaryCount,
		"secondary": secondaryCount,
		"repeats":   game.IntersectCount(latest.Numbers),
	}).Debug("Generated smart ticket")

	return entities.NewGeneratedTicket(entities.ModeSmart, game), nil
}

// Golden keeps the best 9 numbers of the latest draw and the best 6 absents, scored with the
// deterministic golden profile
func (g *TicketGenerator) Golden(history entities.History) (*entities.Ticket, error) {
	latest := history.Latest()
	if latest == nil {
		return nil, entities.ErrInsufficientHistory
	}

	snapshot := g.golden.Snapshot(history)
	absents := latest.Numbers.Complement(entities.UniverseSize)

	game := topNumbers(snapshot.Rank(latest.Numbers), goldenRepeats).
		Union(topNumbers(snapshot.Rank(absents), goldenAbsents))

	return entities.NewGeneratedTicket(entities.ModeGolden, game), nil
}

func topNumbers(ranked []entities.NumberScore, count int) entities.NumberSet {
	if count > len(ranked) {
		count = len(ranked)
	}
	numbers := make([]int, 0, count)
	for _, score := range ranked[:count] {
		numbers = append(numbers, score.Number)
	}
	return entities.NewNumberSet(numbers...)
}

// Constrained completes the fixed numbers with a uniform random draw from the available pool.
// Infeasible constraints degrade to fixed plus every available number, with a warning.
func (g *TicketGenerator) Constrained(constraints entities.NumberConstraintSet) (*entities.Ticket, error) {
	if err := constraints.Validate(); err != nil {
		return nil, err
	}

	needed := constraints.Needed()
	if needed <= 0 {
		return entities.NewGeneratedTicket(entities.ModeConstrained, constraints.Fixed[:constraints.TargetSize].Clone()), nil
	}

	available := constraints.Available()
	if len(available) < needed {
		log.WithFields(log.Fields{
			"needed":    needed,
			"available": len(available),
			"size":      constraints.TargetSize,
		}).Warn("Constraints leave too few numbers, returning a short ticket")
		return entities.NewGeneratedTicket(entities.ModeConstrained, constraints.Fixed.Union(available)), nil
	}

	numbers := constraints.Fixed.Union(shuffleTake(g.rng, available, needed))
	return entities.NewGeneratedTicket(entities.ModeConstrained, numbers), nil
}

// ClosureCount is the admission check for a closure. It never enumerates.
func (g *TicketGenerator) ClosureCount(constraints entities.NumberConstraintSet) (entities.ClosureCount, error) {
	if err := constraints.Validate(); err != nil {
		return entities.ClosureCount{}, err
	}

	result := entities.ClosureCount{
		Needed:    constraints.Needed(),
		Available: len(constraints.Available()),
	}

	switch {
	case result.Needed <= 0:
		result.Count = 1
		result.Feasible = true
	case result.Available < result.Needed:
		result.Feasible = false
	default:
		result.Count = Binomial(result.Available, result.Needed)
		result.Feasible = true
		result.TooLarge = result.Count > g.config.ClosureCeiling
	}

	return result, nil
}

// Closure returns every completion of the fixed numbers to the target size. Infeasible
// constraints return no tickets; counts above the ceiling fail with ErrClosureTooLarge.
func (g *TicketGenerator) Closure(constraints entities.NumberConstraintSet) ([]*entities.Ticket, error) {
	count, err := g.ClosureCount(constraints)
	if err != nil {
		return nil, err
	}

	if !count.Feasible {
		log.WithFields(log.Fields{
			"needed":    count.Needed,
			"available": count.Available,
		}).Warn("Closure constraints are infeasible, nothing to enumerate")
		return []*entities.Ticket{}, nil
	}
	if count.TooLarge {
		return nil, fmt.Errorf("%w: %d combinations exceed the ceiling of %d", entities.ErrClosureTooLarge, count.Count, g.config.ClosureCeiling)
	}

	if count.Needed <= 0 {
		return []*entities.Ticket{
			entities.NewGeneratedTicket(entities.ModeClosure, constraints.Fixed[:constraints.TargetSize].Clone()),
		}, nil
	}

	tickets := make([]*entities.Ticket, 0, count.Count)
	for combo := range Combinations(constraints.Available(), count.Needed) {
		tickets = append(tickets, entities.NewGeneratedTicket(entities.ModeClosure, constraints.Fixed.Union(combo)))
	}
	return tickets, nil
}

// Generate runs one mode. Quantity must be in [1, MaxBatchSize]; closure ignores it and returns
// every combination, golden always returns a single ticket.
func (g *TicketGenerator) Generate(mode entities.GenerationMode, quantity int, constraints entities.NumberConstraintSet, history entities.History) ([]*entities.Ticket, error) {
	if mode != entities.ModeClosure && (quantity < 1 || quantity > g.config.MaxBatchSize) {
		return nil, fmt.Errorf("%w: quantity must be between 1 and %d, got %d", entities.ErrInvalidQuantity, g.config.MaxBatchSize, quantity)
	}

	switch mode {
	case entities.ModeFixedPattern:
		tickets := make([]*entities.Ticket, 0, quantity)
		for range quantity {
			tickets = append(tickets, g.FixedPattern())
		}
		return tickets, nil

	case entities.ModeSmart:
		tickets := make([]*entities.Ticket, 0, quantity)
		for range quantity {
			ticket, err := g.Smart(history)
			if err != nil {
				return nil, err
			}
			tickets = append(tickets, ticket)
		}
		return tickets, nil

	case entities.ModeConstrained:
		tickets := make([]*entities.Ticket, 0, quantity)
		for range quantity {
			ticket, err := g.Constrained(constraints)
			if err != nil {
				return nil, err
			}
			tickets = append(tickets, ticket)
		}
		return tickets, nil

	case entities.ModeClosure:
		return g.Closure(constraints)

	case entities.ModeGolden:
		ticket, err := g.Golden(history)
		if err != nil {
			return nil, err
		}
		return []*entities.Ticket{ticket}, nil
	}

	return nil, fmt.Errorf("%w: %q", entities.ErrUnknownMode, mode)
}

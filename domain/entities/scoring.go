package entities

// PrizeMinHits is the lowest hit count that pays a prize
const PrizeMinHits = 11

// NumberScore is a per-call ranking weight. Weights are only comparable within one computation.
type NumberScore struct {
	Number int
	Weight float64
}

// HitDistribution maps a hit count (index 0..15) to how many draws (or tickets) produced it
type HitDistribution [DrawSize + 1]int

// Add records one hit count. Counts above 15 cannot occur with valid draws and are ignored.
func (d *HitDistribution) Add(hits int) {
	if hits < 0 || hits > DrawSize {
		return
	}
	d[hits]++
}

// Total returns the number of scored draws
func (d HitDistribution) Total() int {
	total := 0
	for _, count := range d {
		total += count
	}
	return total
}

// Prizes returns how many entries reached a prize tier
func (d HitDistribution) Prizes() int {
	total := 0
	for hits := PrizeMinHits; hits <= DrawSize; hits++ {
		total += d[hits]
	}
	return total
}

// Best returns the highest hit count with a non-zero bucket, or -1 when empty
func (d HitDistribution) Best() int {
	for hits := DrawSize; hits >= 0; hits-- {
		if d[hits] > 0 {
			return hits
		}
	}
	return -1
}

// DrawHit is the hit count of one ticket against one draw
type DrawHit struct {
	ContestID int
	Hits      int
}

// TicketHit is the hit count of one ticket against a fixed draw
type TicketHit struct {
	Ticket *Ticket
	Hits   int
}

// IsPrize reports whether the hit count pays
func (h TicketHit) IsPrize() bool {
	return h.Hits >= PrizeMinHits
}

// GridSide is the side of the 5×5 card layout
const GridSide = 5

// GridPosition maps a number to its card cell: row = ceil(n/5)-1, col = (n-1) mod 5
func GridPosition(n int) (row, col int) {
	return (n+GridSide-1)/GridSide - 1, (n - 1) % GridSide
}

// TicketCheck is the single-draw detail of a ticket
type TicketCheck struct {
	Hits      int
	Repeats   int // ticket numbers present in the draw before the target
	Grid      [GridSide][GridSide]int
	RowCounts [GridSide]int
	ColCounts [GridSide]int
}

// DrawStats describes one draw relative to the previous one
type DrawStats struct {
	EvenCount       int
	OddCount        int
	AbsentNumbers   NumberSet
	RepeatedNumbers NumberSet
	NewNumbers      NumberSet
}

// NumberFrequency is how often a number appeared in a window of draws
type NumberFrequency struct {
	Number int
	Count  int
}

// ClosureCount is the admission check result for closure mode
type ClosureCount struct {
	Count     int64
	Needed    int
	Available int
	Feasible  bool
	TooLarge  bool
}

// ConstraintSuggestion proposes fixed and excluded numbers from recent history
type ConstraintSuggestion struct {
	Fixed    NumberSet
	Excluded NumberSet
	Reason   string
}

// GroupHeat classifies how much of a group a draw covered
type GroupHeat string

const (
	GroupHot    GroupHeat = "hot"
	GroupStable GroupHeat = "stable"
	GroupCold   GroupHeat = "cold"
)

// GroupAudit is one group's coverage in a draw and over the window of draws leading up to it
type GroupAudit struct {
	Name          string
	Size          int
	Hits          int
	Percent       int
	Heat          GroupHeat
	WindowDraws   int
	WindowAverage float64
	WindowMax     int
	ZeroHitDraws  int
}

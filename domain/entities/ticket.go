package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TicketSource distinguishes generated tickets from hand-entered ones
type TicketSource string

const (
	TicketSourceGenerated TicketSource = "generated"
	TicketSourceManual    TicketSource = "manual"
)

// GenerationMode names the strategy that produced a ticket
type GenerationMode string

const (
	ModeFixedPattern GenerationMode = "fixed_pattern"
	ModeSmart        GenerationMode = "smart"
	ModeConstrained  GenerationMode = "constrained"
	ModeClosure      GenerationMode = "closure"
	ModeGolden       GenerationMode = "golden"
	ModeManual       GenerationMode = "manual"
)

// ParseGenerationMode maps a user-facing name to a mode
func ParseGenerationMode(s string) (GenerationMode, error) {
	switch GenerationMode(s) {
	case ModeFixedPattern, ModeSmart, ModeConstrained, ModeClosure, ModeGolden, ModeManual:
		return GenerationMode(s), nil
	}
	switch s {
	case "fixed", "pattern", "random":
		return ModeFixedPattern, nil
	case "ai":
		return ModeSmart, nil
	case "custom":
		return ModeConstrained, nil
	case "closing":
		return ModeClosure, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Ticket is a candidate result, generated or entered manually
type Ticket struct {
	ID        uuid.UUID      `db:"id"`
	Numbers   NumberSet      `db:"numbers"`
	Label     string         `db:"label"`
	Source    TicketSource   `db:"source"`
	Mode      GenerationMode `db:"mode"`
	CreatedAt time.Time      `db:"created_at"`
}

// NewGeneratedTicket wraps generated numbers into a ticket
func NewGeneratedTicket(mode GenerationMode, numbers NumberSet) *Ticket {
	return &Ticket{
		ID:      uuid.New(),
		Numbers: numbers,
		Source:  TicketSourceGenerated,
		Mode:    mode,
	}
}

// NewManualTicket validates and wraps hand-entered numbers
func NewManualTicket(label string, numbers ...int) (*Ticket, error) {
	set := NewNumberSet(numbers...)
	if len(set) != len(numbers) {
		return nil, fmt.Errorf("%w: repeated numbers", ErrInvalidTicket)
	}
	ticket := &Ticket{
		ID:      uuid.New(),
		Numbers: set,
		Label:   label,
		Source:  TicketSourceManual,
		Mode:    ModeManual,
	}
	if err := ticket.Validate(); err != nil {
		return nil, err
	}
	return ticket, nil
}

// Validate checks the playable bounds: 15..23 distinct numbers within 1..25
func (t *Ticket) Validate() error {
	if len(t.Numbers) < MinTicketSize || len(t.Numbers) > MaxTicketSize {
		return fmt.Errorf("%w: a ticket holds %d to %d numbers, got %d", ErrInvalidTicket, MinTicketSize, MaxTicketSize, len(t.Numbers))
	}
	if !t.Numbers.InRange(UniverseSize) {
		return fmt.Errorf("%w: numbers must be within 1..%d", ErrInvalidTicket, UniverseSize)
	}
	return nil
}

// EvenCount returns how many even numbers the ticket holds
func (t *Ticket) EvenCount() int {
	return t.Numbers.EvenCount()
}

// OddCount returns how many odd numbers the ticket holds
func (t *Ticket) OddCount() int {
	return t.Numbers.OddCount()
}

// Hits returns how many of the ticket's numbers were drawn
func (t *Ticket) Hits(draw *DrawResult) int {
	return t.Numbers.IntersectCount(draw.Numbers)
}

// DisplayName returns the label or a short id when no label was given
func (t *Ticket) DisplayName() string {
	if t.Label != "" {
		return t.Label
	}
	return t.ID.String()[:8]
}

package interfaces

import (
	"context"

	"lotofacil/domain/entities"

	"github.com/google/uuid"
)

// GenerateTicketsRequest describes one generation call
type GenerateTicketsRequest struct {
	Mode        entities.GenerationMode
	Quantity    int
	Constraints entities.NumberConstraintSet
	// Save persists the generated tickets, labelled with Label when set
	Save  bool
	Label string
}

// BacktestResult is a ticket's hit record against stored history
type BacktestResult struct {
	Ticket       *entities.Ticket
	Distribution entities.HitDistribution
	PerDraw      []entities.DrawHit
}

// PortfolioCheck is the result of checking saved tickets against one contest
type PortfolioCheck struct {
	Draw         *entities.DrawResult
	Results      []entities.TicketHit
	Distribution entities.HitDistribution
}

// ContestAnalysis is a draw with its statistics relative to the previous contest
type ContestAnalysis struct {
	Draw     *entities.DrawResult
	Previous *entities.DrawResult
	Stats    entities.DrawStats
}

// GroupAuditReport is the per-group audit of one contest
type GroupAuditReport struct {
	Draw   *entities.DrawResult
	Window int
	Groups []entities.GroupAudit
}

// StrategyService defines the interface for ticket generation and evaluation
type StrategyService interface {
	// ImportResults validates and upserts draw results, returning how many were stored
	ImportResults(ctx context.Context, draws []*entities.DrawResult) (int, error)

	// GenerateTickets runs a generation mode against the stored history
	GenerateTickets(ctx context.Context, req GenerateTicketsRequest) ([]*entities.Ticket, error)

	// PlanClosure reports the size of a closure without enumerating it
	PlanClosure(ctx context.Context, constraints entities.NumberConstraintSet) (entities.ClosureCount, error)

	// SuggestConstraints proposes fixed and excluded numbers from the recent draws
	SuggestConstraints(ctx context.Context) (entities.ConstraintSuggestion, error)

	// SaveManualTicket validates and stores a hand-entered ticket
	SaveManualTicket(ctx context.Context, label string, numbers []int) (*entities.Ticket, error)

	// Backtest scores numbers against the most recent window draws (all when window <= 0)
	Backtest(ctx context.Context, numbers entities.NumberSet, window int) (*BacktestResult, error)

	// BacktestTicket scores a saved ticket against stored history
	BacktestTicket(ctx context.Context, ticketID uuid.UUID, window int) (*BacktestResult, error)

	// CheckTicket compares numbers with one contest
	CheckTicket(ctx context.Context, numbers entities.NumberSet, contestID int) (*entities.TicketCheck, error)

	// CheckSavedTickets scores every saved ticket against one contest
	CheckSavedTickets(ctx context.Context, contestID int) (*PortfolioCheck, error)

	// AnalyzeContest returns statistics for one contest (the latest when contestID is 0)
	AnalyzeContest(ctx context.Context, contestID int) (*ContestAnalysis, error)

	// Frequencies counts appearances of every number over the most recent window draws
	Frequencies(ctx context.Context, window int) ([]entities.NumberFrequency, error)

	// SearchPattern returns every stored draw containing all of numbers, newest first
	SearchPattern(ctx context.Context, numbers entities.NumberSet) (entities.History, error)

	// AuditGroups measures each configured group in one contest and over the window before it
	AuditGroups(ctx context.Context, contestID int, window int) (*GroupAuditReport, error)
}

// SyncResult summarises one synchronisation pass
type SyncResult struct {
	Latest        *entities.DrawResult
	LatestContest int
	Fetched       int
	Stored        int
}

// ResultSyncService pulls published results into storage
type ResultSyncService interface {
	// Sync fetches the latest result and backfills up to the configured number of missing contests
	Sync(ctx context.Context) (*SyncResult, error)
}

// TicketService manages saved tickets
type TicketService interface {
	// ListTickets returns saved tickets, optionally filtered by source
	ListTickets(ctx context.Context, source entities.TicketSource, limit int) ([]*entities.Ticket, error)

	// GetTicket retrieves a saved ticket
	GetTicket(ctx context.Context, id uuid.UUID) (*entities.Ticket, error)

	// RenameTicket changes a saved ticket's label
	RenameTicket(ctx context.Context, id uuid.UUID, label string) error

	// DeleteTicket removes a saved ticket
	DeleteTicket(ctx context.Context, id uuid.UUID) error
}

package interfaces

import (
	"context"

	"lotofacil/domain/entities"

	"github.com/google/uuid"
)

// DrawResultRepository defines the interface for draw result persistence
type DrawResultRepository interface {
	// Upsert inserts a draw result or replaces the numbers of an existing contest
	Upsert(ctx context.Context, draw *entities.DrawResult) error

	// UpsertBatch upserts several draw results and returns how many rows were written
	UpsertBatch(ctx context.Context, draws []*entities.DrawResult) (int, error)

	// GetByContestID retrieves a draw result, returning nil when the contest is unknown
	GetByContestID(ctx context.Context, contestID int) (*entities.DrawResult, error)

	// GetLatest retrieves the draw with the highest contest id, or nil when empty
	GetLatest(ctx context.Context) (*entities.DrawResult, error)

	// GetRecent returns up to limit draws, newest first. limit <= 0 returns every draw.
	GetRecent(ctx context.Context, limit int) ([]*entities.DrawResult, error)

	// GetUpTo returns up to limit draws with contest id <= contestID, newest first
	GetUpTo(ctx context.Context, contestID int, limit int) ([]*entities.DrawResult, error)

	// GetMissingContestIDs returns the contest ids in [from, to] that are not stored
	GetMissingContestIDs(ctx context.Context, from, to int) ([]int, error)

	// Count returns the number of stored draw results
	Count(ctx context.Context) (int64, error)

	// Delete removes a draw result
	Delete(ctx context.Context, contestID int) error
}

// TicketRepository defines the interface for saved ticket persistence
type TicketRepository interface {
	// Create stores a ticket, filling in its creation time
	Create(ctx context.Context, ticket *entities.Ticket) error

	// CreateBatch stores several tickets in one round trip
	CreateBatch(ctx context.Context, tickets []*entities.Ticket) error

	// GetByID retrieves a ticket, returning nil when it does not exist
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Ticket, error)

	// List returns saved tickets newest first. An empty source lists every ticket; limit <= 0 is unbounded.
	List(ctx context.Context, source entities.TicketSource, limit int) ([]*entities.Ticket, error)

	// Rename changes a ticket's label
	Rename(ctx context.Context, id uuid.UUID, label string) error

	// Delete removes a ticket
	Delete(ctx context.Context, id uuid.UUID) error
}

// ResultFetcher retrieves official draw results from a remote source
type ResultFetcher interface {
	// FetchLatest returns the most recent published draw
	FetchLatest(ctx context.Context) (*entities.DrawResult, error)

	// FetchContest returns a specific contest
	FetchContest(ctx context.Context, contestID int) (*entities.DrawResult, error)
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lotofacil/database"
	"lotofacil/domain/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const ticketColumns = `id, numbers, label, source, mode, created_at`

// TicketRepository implements saved ticket data access
type TicketRepository struct {
	q Queryable
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *database.DB) *TicketRepository {
	return &TicketRepository{q: db.Pool}
}

// NewTicketRepositoryScoped creates a ticket repository bound to a transaction
func NewTicketRepositoryScoped(tx Queryable) *TicketRepository {
	return &TicketRepository{q: tx}
}

// Create stores a ticket. A zero ID is replaced with a fresh one.
func (r *TicketRepository) Create(ctx context.Context, ticket *entities.Ticket) error {
	if ticket.ID == uuid.Nil {
		ticket.ID = uuid.New()
	}

	query := `
		INSERT INTO tickets (id, numbers, label, source, mode)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := r.q.QueryRow(ctx, query, ticket.ID, toInt32s(ticket.Numbers), ticket.Label, string(ticket.Source), string(ticket.Mode)).
		Scan(&ticket.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return nil
}

// CreateBatch stores several tickets in a single multi-row insert
func (r *TicketRepository) CreateBatch(ctx context.Context, tickets []*entities.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}

	var query strings.Builder
	query.WriteString(`INSERT INTO tickets (id, numbers, label, source, mode) VALUES `)

	values := make([]any, 0, len(tickets)*5)
	for i, ticket := range tickets {
		if ticket.ID == uuid.Nil {
			ticket.ID = uuid.New()
		}
		if i > 0 {
			query.WriteString(", ")
		}
		offset := i * 5
		fmt.Fprintf(&query, "($%d, $%d, $%d, $%d, $%d)", offset+1, offset+2, offset+3, offset+4, offset+5)
		values = append(values, ticket.ID, toInt32s(ticket.Numbers), ticket.Label, string(ticket.Source), string(ticket.Mode))
	}
	query.WriteString(" RETURNING id, created_at")

	rows, err := r.q.Query(ctx, query.String(), values...)
	if err != nil {
		return fmt.Errorf("failed to batch create tickets: %w", err)
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]*entities.Ticket, len(tickets))
	for _, ticket := range tickets {
		byID[ticket.ID] = ticket
	}

	for rows.Next() {
		var id uuid.UUID
		var createdAt time.Time
		if err := rows.Scan(&id, &createdAt); err != nil {
			return fmt.Errorf("failed to scan ticket result: %w", err)
		}
		if ticket, ok := byID[id]; ok {
			ticket.CreatedAt = createdAt
		}
	}

	return rows.Err()
}

// GetByID retrieves a ticket, returning nil when it does not exist
func (r *TicketRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`

	ticket, err := scanTicket(r.q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket %s: %w", id, err)
	}
	return ticket, nil
}

// List returns tickets newest first, optionally filtered by source
func (r *TicketRepository) List(ctx context.Context, source entities.TicketSource, limit int) ([]*entities.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets`
	args := []any{}
	if source != "" {
		args = append(args, string(source))
		query += fmt.Sprintf(` WHERE source = $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC, id`
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*entities.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tickets: %w", err)
	}

	return tickets, nil
}

// Rename changes a ticket's label
func (r *TicketRepository) Rename(ctx context.Context, id uuid.UUID, label string) error {
	tag, err := r.q.Exec(ctx, `UPDATE tickets SET label = $2 WHERE id = $1`, id, label)
	if err != nil {
		return fmt.Errorf("failed to rename ticket %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", entities.ErrTicketNotFound, id)
	}
	return nil
}

// Delete removes a ticket
func (r *TicketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete ticket %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", entities.ErrTicketNotFound, id)
	}
	return nil
}

func scanTicket(row pgx.Row) (*entities.Ticket, error) {
	var ticket entities.Ticket
	var numbers []int32
	var source, mode string
	if err := row.Scan(&ticket.ID, &numbers, &ticket.Label, &source, &mode, &ticket.CreatedAt); err != nil {
		return nil, err
	}
	ticket.Numbers = entities.NewNumberSet(fromInt32s(numbers)...)
	ticket.Source = entities.TicketSource(source)
	ticket.Mode = entities.GenerationMode(mode)
	return &ticket, nil
}

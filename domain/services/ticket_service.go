package services

import (
	"context"
	"fmt"
	"strings"

	"lotofacil/domain/entities"
	"lotofacil/domain/interfaces"

	"github.com/google/uuid"
)

// ticketService manages saved tickets
type ticketService struct {
	ticketRepo interfaces.TicketRepository
}

// NewTicketService creates a new ticket service
func NewTicketService(ticketRepo interfaces.TicketRepository) interfaces.TicketService {
	return &ticketService{ticketRepo: ticketRepo}
}

func (s *ticketService) ListTickets(ctx context.Context, source entities.TicketSource, limit int) ([]*entities.Ticket, error) {
	switch source {
	case "", entities.TicketSourceGenerated, entities.TicketSourceManual:
	default:
		return nil, fmt.Errorf("unknown ticket source %q", source)
	}
	return s.ticketRepo.List(ctx, source, limit)
}

func (s *ticketService) GetTicket(ctx context.Context, id uuid.UUID) (*entities.Ticket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if ticket == nil {
		return nil, fmt.Errorf("%w: %s", entities.ErrTicketNotFound, id)
	}
	return ticket, nil
}

func (s *ticketService) RenameTicket(ctx context.Context, id uuid.UUID, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return fmt.Errorf("label cannot be empty")
	}
	return s.ticketRepo.Rename(ctx, id, label)
}

func (s *ticketService) DeleteTicket(ctx context.Context, id uuid.UUID) error {
	return s.ticketRepo.Delete(ctx, id)
}

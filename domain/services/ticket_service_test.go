package services

import (
	"context"
	"testing"

	"lotofacil/domain/entities"
	"lotofacil/domain/testhelpers"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketService(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("list filters by known sources only", func(t *testing.T) {
		ticketRepo := new(testhelpers.MockTicketRepository)
		service := NewTicketService(ticketRepo)
		ticketRepo.On("List", ctx, entities.TicketSourceManual, 5).Return([]*entities.Ticket{}, nil)

		_, err := service.ListTickets(ctx, entities.TicketSourceManual, 5)
		require.NoError(t, err)

		_, err = service.ListTickets(ctx, entities.TicketSource("imported"), 5)
		assert.Error(t, err)
		ticketRepo.AssertNumberOfCalls(t, "List", 1)
	})

	t.Run("missing ticket", func(t *testing.T) {
		ticketRepo := new(testhelpers.MockTicketRepository)
		service := NewTicketService(ticketRepo)
		id := uuid.New()
		ticketRepo.On("GetByID", ctx, id).Return(nil, nil)

		_, err := service.GetTicket(ctx, id)
		assert.ErrorIs(t, err, entities.ErrTicketNotFound)
	})

	t.Run("rename trims and rejects blank labels", func(t *testing.T) {
		ticketRepo := new(testhelpers.MockTicketRepository)
		service := NewTicketService(ticketRepo)
		id := uuid.New()
		ticketRepo.On("Rename", ctx, id, "lucky").Return(nil)

		require.NoError(t, service.RenameTicket(ctx, id, "  lucky "))
		assert.Error(t, service.RenameTicket(ctx, id, "   "))
		ticketRepo.AssertNumberOfCalls(t, "Rename", 1)
	})

	t.Run("delete passes through", func(t *testing.T) {
		ticketRepo := new(testhelpers.MockTicketRepository)
		service := NewTicketService(ticketRepo)
		id := uuid.New()
		ticketRepo.On("Delete", ctx, id).Return(entities.ErrTicketNotFound)

		assert.ErrorIs(t, service.DeleteTicket(ctx, id), entities.ErrTicketNotFound)
	})
}

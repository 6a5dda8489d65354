package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"lotofacil/domain/entities"
	"lotofacil/domain/interfaces"
	"lotofacil/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPortfolioChecker struct {
	mock.Mock
}

func (m *mockPortfolioChecker) CheckSavedTickets(ctx context.Context, contestID int) (*interfaces.PortfolioCheck, error) {
	args := m.Called(ctx, contestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interfaces.PortfolioCheck), args.Error(1)
}

func TestPrizeWatcher_Winners(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	winner := entities.NewGeneratedTicket(entities.ModeSmart, entities.NewNumberSet(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15))
	loser := entities.NewGeneratedTicket(entities.ModeSmart, entities.NewNumberSet(11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25))

	checker := new(mockPortfolioChecker)
	checker.On("CheckSavedTickets", ctx, 3200).Return(&interfaces.PortfolioCheck{
		Results: []entities.TicketHit{
			{Ticket: winner, Hits: 12},
			{Ticket: loser, Hits: 7},
		},
	}, nil)
	checker.On("CheckSavedTickets", ctx, 3201).Return(nil, entities.ErrDrawNotFound)

	watcher := NewPrizeWatcher(checker)

	winners, err := watcher.Winners(ctx, 3200)
	require.NoError(t, err)
	require.Len(t, winners, 1)
	assert.Equal(t, winner.ID, winners[0].Ticket.ID)

	_, err = watcher.Winners(ctx, 3201)
	assert.ErrorIs(t, err, entities.ErrDrawNotFound)
}

func TestPrizeWatcher_ReactsToDrawEvents(t *testing.T) {
	t.Parallel()

	checked := make(chan int, 1)
	checker := new(mockPortfolioChecker)
	checker.On("CheckSavedTickets", mock.Anything, 3300).Run(func(args mock.Arguments) {
		checked <- args.Int(1)
	}).Return(nil, errors.New("database unavailable"))

	bus := events.NewBus()
	NewPrizeWatcher(checker).Subscribe(bus)
	bus.Publish(events.DrawStoredEvent{ContestID: 3300})

	select {
	case contestID := <-checked:
		assert.Equal(t, 3300, contestID)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not react to the draw event")
	}
}

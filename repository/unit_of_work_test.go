package repository

import (
	"context"
	"testing"
	"time"

	"lotofacil/domain/entities"
	"lotofacil/events"
	"lotofacil/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_CommitAndRollback(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	bus := events.NewBus()
	delivered := make(chan int, 2)
	bus.Subscribe(events.EventTypeDrawStored, func(ctx context.Context, event events.Event) {
		delivered <- event.(events.DrawStoredEvent).ContestID
	})
	factory := NewUnitOfWorkFactory(testDB.DB, bus)

	t.Run("rollback discards writes and events", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))

		draw := testutil.CreateTestDrawResult(500, 0)
		require.NoError(t, uow.DrawResultRepository().Upsert(ctx, draw))
		uow.EventBus().Publish(events.DrawStoredEvent{ContestID: 500, Numbers: draw.Numbers})
		require.NoError(t, uow.Rollback())

		stored, err := NewDrawResultRepository(testDB.DB).GetByContestID(ctx, 500)
		require.NoError(t, err)
		assert.Nil(t, stored)

		select {
		case contestID := <-delivered:
			t.Fatalf("rolled back event for contest %d was delivered", contestID)
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("commit persists writes and flushes events", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		defer uow.Rollback()

		draw := testutil.CreateTestDrawResult(501, 2)
		require.NoError(t, uow.DrawResultRepository().Upsert(ctx, draw))
		require.NoError(t, uow.TicketRepository().Create(ctx, testutil.CreateTestTicket(entities.ModeSmart)))
		uow.EventBus().Publish(events.DrawStoredEvent{ContestID: 501, Numbers: draw.Numbers})
		require.NoError(t, uow.Commit())

		stored, err := NewDrawResultRepository(testDB.DB).GetByContestID(ctx, 501)
		require.NoError(t, err)
		require.NotNil(t, stored)

		tickets, err := NewTicketRepository(testDB.DB).List(ctx, "", 0)
		require.NoError(t, err)
		assert.Len(t, tickets, 1)

		select {
		case contestID := <-delivered:
			assert.Equal(t, 501, contestID)
		case <-time.After(2 * time.Second):
			t.Fatal("committed event was not delivered")
		}
	})

	t.Run("begin twice fails", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))
		defer uow.Rollback()

		assert.Error(t, uow.Begin(ctx))
	})
}

package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"lotofacil/domain/interfaces"
	"lotofacil/domain/testhelpers"
	"lotofacil/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockResultSyncService struct {
	mock.Mock
}

func (m *mockResultSyncService) Sync(ctx context.Context) (*interfaces.SyncResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interfaces.SyncResult), args.Error(1)
}

func TestResultSyncWorker_SyncsOnStartAndStops(t *testing.T) {
	syncService := new(mockResultSyncService)
	synced := make(chan struct{}, 1)
	syncService.On("Sync", mock.Anything).Run(func(mock.Arguments) {
		select {
		case synced <- struct{}{}:
		default:
		}
	}).Return(&interfaces.SyncResult{LatestContest: 3000, Fetched: 1, Stored: 1}, nil)

	worker := NewResultSyncWorker(syncService, nil, time.Hour)
	stop := worker.Start(context.Background())

	select {
	case <-synced:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not sync on start")
	}

	stop()
	syncService.AssertNumberOfCalls(t, "Sync", 1)
}

func TestResultSyncWorker_RepeatsAfterErrors(t *testing.T) {
	syncService := new(mockResultSyncService)
	calls := make(chan struct{}, 10)
	syncService.On("Sync", mock.Anything).Run(func(mock.Arguments) {
		select {
		case calls <- struct{}{}:
		default:
		}
	}).Return(nil, errors.New("service unavailable"))

	ctx, cancel := context.WithCancel(context.Background())
	worker := NewResultSyncWorker(syncService, nil, 10*time.Millisecond)
	stop := worker.Start(ctx)

	for range 3 {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("worker stopped retrying after an error")
		}
	}

	cancel()
	stop()
	assert.GreaterOrEqual(t, len(syncService.Calls), 3)
}

func TestResultSyncWorker_StopIsIdempotent(t *testing.T) {
	syncService := new(mockResultSyncService)
	syncService.On("Sync", mock.Anything).Return(&interfaces.SyncResult{LatestContest: 3000}, nil)

	worker := NewResultSyncWorker(syncService, nil, time.Hour)
	stop := worker.Start(context.Background())

	assert.NotPanics(t, func() {
		stop()
		stop()
	})
}

type recordingPublisher struct {
	published []events.Event
}

func (p *recordingPublisher) Publish(event events.Event) {
	p.published = append(p.published, event)
}

func TestResultSyncWorker_PublishesOnlyNewContests(t *testing.T) {
	ctx := context.Background()
	draw := testhelpers.MustDraw(3000, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)

	syncService := new(mockResultSyncService)
	syncService.On("Sync", ctx).Return(&interfaces.SyncResult{Latest: draw, LatestContest: 3000, Fetched: 1, Stored: 1}, nil)

	publisher := &recordingPublisher{}
	worker := NewResultSyncWorker(syncService, publisher, time.Hour)

	worker.runOnce(ctx)
	worker.runOnce(ctx)

	require.Len(t, publisher.published, 1)
	event := publisher.published[0].(events.DrawStoredEvent)
	assert.Equal(t, 3000, event.ContestID)
	assert.Equal(t, draw.Numbers, event.Numbers)
}

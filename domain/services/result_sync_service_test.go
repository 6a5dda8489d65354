package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"lotofacil/domain/entities"
	"lotofacil/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResultSyncService_Sync(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("stores the latest result and backfills newest gaps first", func(t *testing.T) {
		drawRepo := new(testhelpers.MockDrawResultRepository)
		fetcher := new(testhelpers.MockResultFetcher)
		service := NewResultSyncService(drawRepo, fetcher, 2)

		latest := testhelpers.MustDraw(100, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
		fetcher.On("FetchLatest", ctx).Return(latest, nil)
		drawRepo.On("Upsert", ctx, mock.AnythingOfType("*entities.DrawResult")).Return(nil)
		drawRepo.On("GetMissingContestIDs", ctx, 1, 99).Return([]int{40, 97, 99}, nil)

		var order []int
		for _, id := range []int{99, 97} {
			fetcher.On("FetchContest", ctx, id).Run(func(args mock.Arguments) {
				order = append(order, args.Int(1))
			}).Return(testhelpers.MustDraw(id, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25), nil)
		}

		result, err := service.Sync(ctx)
		require.NoError(t, err)
		assert.Equal(t, 100, result.LatestContest)
		assert.Equal(t, 3, result.Fetched)
		assert.Equal(t, 3, result.Stored)
		assert.Equal(t, []int{99, 97}, order)
		fetcher.AssertNotCalled(t, "FetchContest", ctx, 40)
		drawRepo.AssertNumberOfCalls(t, "Upsert", 3)
	})

	t.Run("skips contests that cannot be fetched", func(t *testing.T) {
		drawRepo := new(testhelpers.MockDrawResultRepository)
		fetcher := new(testhelpers.MockResultFetcher)
		service := NewResultSyncService(drawRepo, fetcher, 10)

		fetcher.On("FetchLatest", ctx).Return(testhelpers.MustDraw(5, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15), nil)
		drawRepo.On("Upsert", ctx, mock.Anything).Return(nil)
		drawRepo.On("GetMissingContestIDs", ctx, 1, 4).Return([]int{3, 4}, nil)
		fetcher.On("FetchContest", ctx, 4).Return(nil, fmt.Errorf("%w: contest 4", entities.ErrDrawNotFound))
		fetcher.On("FetchContest", ctx, 3).Return(nil, errors.New("timeout"))

		result, err := service.Sync(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Fetched)
		assert.Equal(t, 1, result.Stored)
	})

	t.Run("latest fetch failure is returned", func(t *testing.T) {
		drawRepo := new(testhelpers.MockDrawResultRepository)
		fetcher := new(testhelpers.MockResultFetcher)
		service := NewResultSyncService(drawRepo, fetcher, 10)

		fetcher.On("FetchLatest", ctx).Return(nil, errors.New("offline"))

		_, err := service.Sync(ctx)
		assert.ErrorContains(t, err, "offline")
		drawRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("backfill disabled", func(t *testing.T) {
		drawRepo := new(testhelpers.MockDrawResultRepository)
		fetcher := new(testhelpers.MockResultFetcher)
		service := NewResultSyncService(drawRepo, fetcher, 0)

		fetcher.On("FetchLatest", ctx).Return(testhelpers.MustDraw(50, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15), nil)
		drawRepo.On("Upsert", ctx, mock.Anything).Return(nil)

		result, err := service.Sync(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Stored)
		drawRepo.AssertNotCalled(t, "GetMissingContestIDs", mock.Anything, mock.Anything, mock.Anything)
	})
}

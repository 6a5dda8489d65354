package services

import (
	"context"
	"errors"
	"fmt"

	"lotofacil/domain/entities"
	"lotofacil/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// resultSyncService stores the latest published result and backfills gaps in the stored history
type resultSyncService struct {
	drawRepo      interfaces.DrawResultRepository
	fetcher       interfaces.ResultFetcher
	backfillLimit int
}

// NewResultSyncService creates a sync service that backfills at most backfillLimit contests per pass
func NewResultSyncService(drawRepo interfaces.DrawResultRepository, fetcher interfaces.ResultFetcher, backfillLimit int) interfaces.ResultSyncService {
	return &resultSyncService{
		drawRepo:      drawRepo,
		fetcher:       fetcher,
		backfillLimit: backfillLimit,
	}
}

// Sync fetches the latest result, stores it, then fetches the most recent missing contests.
// A contest that cannot be fetched is logged and skipped.
func (s *resultSyncService) Sync(ctx context.Context) (*interfaces.SyncResult, error) {
	latest, err := s.fetcher.FetchLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest result: %w", err)
	}

	if err := s.drawRepo.Upsert(ctx, latest); err != nil {
		return nil, fmt.Errorf("failed to store contest %d: %w", latest.ContestID, err)
	}

	result := &interfaces.SyncResult{
		Latest:        latest,
		LatestContest: latest.ContestID,
		Fetched:       1,
		Stored:        1,
	}

	if s.backfillLimit <= 0 || latest.ContestID <= 1 {
		return result, nil
	}

	missing, err := s.drawRepo.GetMissingContestIDs(ctx, 1, latest.ContestID-1)
	if err != nil {
		return result, fmt.Errorf("failed to find missing contests: %w", err)
	}

	// newest gaps first
	if len(missing) > s.backfillLimit {
		missing = missing[len(missing)-s.backfillLimit:]
	}

	for i := len(missing) - 1; i >= 0; i-- {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		contestID := missing[i]
		draw, err := s.fetcher.FetchContest(ctx, contestID)
		if err != nil {
			entry := log.WithFields(log.Fields{
				"contest": contestID,
				"error":   err,
			})
			if errors.Is(err, entities.ErrDrawNotFound) {
				entry.Debug("Contest not published, skipping")
			} else {
				entry.Warn("Failed to fetch contest during backfill")
			}
			continue
		}
		result.Fetched++

		if err := s.drawRepo.Upsert(ctx, draw); err != nil {
			return result, fmt.Errorf("failed to store contest %d: %w", contestID, err)
		}
		result.Stored++
	}

	log.WithFields(log.Fields{
		"latest":  result.LatestContest,
		"fetched": result.Fetched,
		"stored":  result.Stored,
	}).Info("Result sync complete")

	return result, nil
}

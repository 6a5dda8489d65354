package application

import (
	"context"
	"sync"
	"time"

	"lotofacil/domain/interfaces"
	"lotofacil/events"

	log "github.com/sirupsen/logrus"
)

// ResultSyncWorker periodically pulls published results into the draw store
type ResultSyncWorker struct {
	syncService interfaces.ResultSyncService
	publisher   interfaces.EventPublisher
	interval    time.Duration

	lastContest int
}

// NewResultSyncWorker creates a new result sync worker. A DrawStoredEvent is published whenever a
// pass finds a newer latest contest.
func NewResultSyncWorker(syncService interfaces.ResultSyncService, publisher interfaces.EventPublisher, interval time.Duration) *ResultSyncWorker {
	return &ResultSyncWorker{
		syncService: syncService,
		publisher:   publisher,
		interval:    interval,
	}
}

// Start runs a sync immediately and then once per interval until ctx is cancelled or the
// returned stop function is called
func (w *ResultSyncWorker) Start(ctx context.Context) func() {
	stopChan := make(chan struct{})
	done := make(chan struct{})
	var stopOnce sync.Once

	go func() {
		defer close(done)
		log.Infof("Result sync worker started, syncing every %v", w.interval)

		for {
			w.runOnce(ctx)

			select {
			case <-ctx.Done():
				log.Info("Result sync worker shutting down (context cancelled)...")
				return
			case <-stopChan:
				log.Info("Result sync worker shutting down (stop requested)...")
				return
			case <-time.After(w.interval):
			}
		}
	}()

	// Return cleanup function, safe to call more than once
	return func() {
		stopOnce.Do(func() { close(stopChan) })
		<-done
	}
}

func (w *ResultSyncWorker) runOnce(ctx context.Context) {
	result, err := w.syncService.Sync(ctx)
	if err != nil {
		log.Errorf("Error syncing results: %v", err)
		return
	}

	log.WithFields(log.Fields{
		"latest_contest": result.LatestContest,
		"stored":         result.Stored,
	}).Debug("Result sync pass finished")

	if result.LatestContest <= w.lastContest || result.Latest == nil {
		return
	}
	w.lastContest = result.LatestContest

	if w.publisher != nil {
		w.publisher.Publish(events.DrawStoredEvent{
			ContestID: result.Latest.ContestID,
			Numbers:   result.Latest.Numbers,
		})
	}
}

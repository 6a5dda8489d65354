package cmd

import (
	"context"
	"time"

	"lotofacil/application"

	log "github.com/sirupsen/logrus"
)

// Run starts the result sync worker and blocks until ctx is cancelled
func Run(ctx context.Context) error {
	log.Info("Starting lotofacil result sync...")

	app, err := NewApp(ctx)
	if err != nil {
		return err
	}
	log.Info("Database connection established successfully")

	application.NewPrizeWatcher(app.Strategy).Subscribe(app.bus)

	worker := application.NewResultSyncWorker(app.Sync, app.bus, app.cfg.SyncInterval)
	stopWorker := worker.Start(ctx)

	log.Infof("Sync worker is running in %s mode...", app.cfg.Environment)
	<-ctx.Done()

	log.Info("Shutting down...")

	// Give cleanup operations time to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		stopWorker()
		close(stopped)
	}()

	select {
	case <-stopped:
		log.Info("Shutdown completed")
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout exceeded")
	}

	log.Info("Closing database connection...")
	app.Close()

	return nil
}

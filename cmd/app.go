package cmd

import (
	"context"
	"fmt"

	"lotofacil/config"
	"lotofacil/database"
	"lotofacil/domain/entities"
	"lotofacil/domain/interfaces"
	"lotofacil/domain/services"
	"lotofacil/events"
	"lotofacil/ingestion"
	"lotofacil/repository"

	log "github.com/sirupsen/logrus"
)

// App wires configuration, storage and services for one process
type App struct {
	cfg        *config.Config
	db         *database.DB
	bus        *events.Bus
	uowFactory interfaces.UnitOfWorkFactory
	generator  *services.TicketGenerator
	fetcher    interfaces.ResultFetcher

	Strategy interfaces.StrategyService
	Tickets  interfaces.TicketService
	Sync     interfaces.ResultSyncService
}

// NewApp connects to the database and builds the service graph
func NewApp(ctx context.Context) (*App, error) {
	cfg := config.Get()

	groups, err := config.LoadGroups(cfg.GroupsFile)
	if err != nil {
		return nil, err
	}

	log.Debug("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	generatorConfig := services.DefaultGeneratorConfig(groups)
	generatorConfig.ClosureCeiling = cfg.ClosureCeiling
	generatorConfig.MaxBatchSize = cfg.MaxBatchSize
	generator, err := services.NewTicketGenerator(generatorConfig, services.NewUnseededRandomSource())
	if err != nil {
		db.Close()
		return nil, err
	}

	bus := events.NewBus()
	drawRepo := repository.NewDrawResultRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	fetcher := ingestion.NewResultsClient(cfg.ResultsAPIURL, cfg.ResultsFallbackURL, cfg.ResultsRatePerSec)

	return &App{
		cfg:        cfg,
		db:         db,
		bus:        bus,
		uowFactory: repository.NewUnitOfWorkFactory(db, bus),
		generator:  generator,
		fetcher:    fetcher,
		Strategy:   services.NewStrategyService(drawRepo, ticketRepo, generator),
		Tickets:    services.NewTicketService(ticketRepo),
		Sync:       services.NewResultSyncService(drawRepo, fetcher, cfg.SyncBackfillLimit),
	}, nil
}

// ImportResults stores draws in a single unit of work and announces the newest one once committed
func (a *App) ImportResults(ctx context.Context, draws []*entities.DrawResult) (int, error) {
	uow := a.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer uow.Rollback()

	strategy := services.NewStrategyService(uow.DrawResultRepository(), uow.TicketRepository(), a.generator)
	stored, err := strategy.ImportResults(ctx, draws)
	if err != nil {
		return 0, err
	}

	newest := draws[0]
	for _, draw := range draws[1:] {
		if draw.ContestID > newest.ContestID {
			newest = draw
		}
	}
	uow.EventBus().Publish(events.DrawStoredEvent{ContestID: newest.ContestID, Numbers: newest.Numbers})

	if err := uow.Commit(); err != nil {
		return 0, err
	}
	return stored, nil
}

// Close releases the database pool
func (a *App) Close() {
	a.db.Close()
}

package services

import (
	"context"
	"fmt"

	"lotofacil/domain/entities"
	"lotofacil/domain/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// strategyService implements ticket generation and evaluation on top of the stored history
type strategyService struct {
	drawRepo   interfaces.DrawResultRepository
	ticketRepo interfaces.TicketRepository
	generator  *TicketGenerator
}

// NewStrategyService creates a new strategy service
func NewStrategyService(
	drawRepo interfaces.DrawResultRepository,
	ticketRepo interfaces.TicketRepository,
	generator *TicketGenerator,
) interfaces.StrategyService {
	return &strategyService{
		drawRepo:   drawRepo,
		ticketRepo: ticketRepo,
		generator:  generator,
	}
}

// ImportResults validates every draw before writing any of them
func (s *strategyService) ImportResults(ctx context.Context, draws []*entities.DrawResult) (int, error) {
	for _, draw := range draws {
		if err := draw.Validate(); err != nil {
			return 0, err
		}
	}

	stored, err := s.drawRepo.UpsertBatch(ctx, draws)
	if err != nil {
		return stored, fmt.Errorf("failed to store draw results: %w", err)
	}

	log.WithFields(log.Fields{
		"received": len(draws),
		"stored":   stored,
	}).Info("Imported draw results")

	return stored, nil
}

// loadHistory returns every stored draw, newest first
func (s *strategyService) loadHistory(ctx context.Context) (entities.History, error) {
	draws, err := s.drawRepo.GetRecent(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return entities.History(draws), nil
}

// GenerateTickets runs one generation mode and optionally saves the result
func (s *strategyService) GenerateTickets(ctx context.Context, req interfaces.GenerateTicketsRequest) ([]*entities.Ticket, error) {
	var history entities.History
	if req.Mode == entities.ModeSmart || req.Mode == entities.ModeGolden {
		var err error
		if history, err = s.loadHistory(ctx); err != nil {
			return nil, err
		}
	}

	tickets, err := s.generator.Generate(req.Mode, req.Quantity, req.Constraints, history)
	if err != nil {
		return nil, err
	}

	if req.Save && len(tickets) > 0 {
		for i, ticket := range tickets {
			if err := ticket.Validate(); err != nil {
				return nil, fmt.Errorf("cannot save ticket %d: %w", i+1, err)
			}
			if req.Label != "" {
				ticket.Label = req.Label
				if len(tickets) > 1 {
					ticket.Label = fmt.Sprintf("%s #%d", req.Label, i+1)
				}
			}
		}
		if err := s.ticketRepo.CreateBatch(ctx, tickets); err != nil {
			return nil, fmt.Errorf("failed to save tickets: %w", err)
		}
	}

	log.WithFields(log.Fields{
		"mode":     req.Mode,
		"quantity": req.Quantity,
		"returned": len(tickets),
		"saved":    req.Save,
	}).Info("Generated tickets")

	return tickets, nil
}

// PlanClosure reports the closure size for constraints
func (s *strategyService) PlanClosure(ctx context.Context, constraints entities.NumberConstraintSet) (entities.ClosureCount, error) {
	return s.generator.ClosureCount(constraints)
}

// SuggestConstraints proposes constraints from the stored history
func (s *strategyService) SuggestConstraints(ctx context.Context) (entities.ConstraintSuggestion, error) {
	draws, err := s.drawRepo.GetRecent(ctx, suggestionWindow)
	if err != nil {
		return entities.ConstraintSuggestion{}, fmt.Errorf("failed to load recent draws: %w", err)
	}
	return SuggestConstraints(entities.History(draws), s.generator.Config().Groups)
}

// SaveManualTicket validates and stores a hand-entered ticket
func (s *strategyService) SaveManualTicket(ctx context.Context, label string, numbers []int) (*entities.Ticket, error) {
	ticket, err := entities.NewManualTicket(label, numbers...)
	if err != nil {
		return nil, err
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to save ticket: %w", err)
	}
	return ticket, nil
}

// Backtest scores numbers against the most recent window draws
func (s *strategyService) Backtest(ctx context.Context, numbers entities.NumberSet, window int) (*interfaces.BacktestResult, error) {
	if len(numbers) == 0 || !numbers.InRange(entities.UniverseSize) {
		return nil, fmt.Errorf("%w: numbers must be within 1..%d", entities.ErrInvalidTicket, entities.UniverseSize)
	}

	draws, err := s.drawRepo.GetRecent(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	history := entities.History(draws)

	return &interfaces.BacktestResult{
		Ticket:       &entities.Ticket{Numbers: numbers},
		Distribution: ScoreTicket(numbers, history),
		PerDraw:      DrawHits(numbers, history),
	}, nil
}

// BacktestTicket scores a saved ticket
func (s *strategyService) BacktestTicket(ctx context.Context, ticketID uuid.UUID, window int) (*interfaces.BacktestResult, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if ticket == nil {
		return nil, fmt.Errorf("%w: %s", entities.ErrTicketNotFound, ticketID)
	}

	result, err := s.Backtest(ctx, ticket.Numbers, window)
	if err != nil {
		return nil, err
	}
	result.Ticket = ticket
	return result, nil
}

// getDraw returns the requested contest, or the latest when contestID is 0
func (s *strategyService) getDraw(ctx context.Context, contestID int) (*entities.DrawResult, error) {
	var draw *entities.DrawResult
	var err error
	if contestID == 0 {
		draw, err = s.drawRepo.GetLatest(ctx)
	} else {
		draw, err = s.drawRepo.GetByContestID(ctx, contestID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draw result: %w", err)
	}
	if draw == nil {
		if contestID == 0 {
			return nil, entities.ErrInsufficientHistory
		}
		return nil, fmt.Errorf("%w: contest %d", entities.ErrDrawNotFound, contestID)
	}
	return draw, nil
}

// getPrevious returns the stored draw just before contestID, or nil
func (s *strategyService) getPrevious(ctx context.Context, contestID int) (*entities.DrawResult, error) {
	draws, err := s.drawRepo.GetUpTo(ctx, contestID-1, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to get previous draw: %w", err)
	}
	if len(draws) == 0 {
		return nil, nil
	}
	return draws[0], nil
}

// CheckTicket compares numbers with one contest (the latest when contestID is 0)
func (s *strategyService) CheckTicket(ctx context.Context, numbers entities.NumberSet, contestID int) (*entities.TicketCheck, error) {
	draw, err := s.getDraw(ctx, contestID)
	if err != nil {
		return nil, err
	}
	previous, err := s.getPrevious(ctx, draw.ContestID)
	if err != nil {
		return nil, err
	}

	check := CheckTicket(numbers, draw, previous)
	return &check, nil
}

// CheckSavedTickets scores every saved ticket against one contest
func (s *strategyService) CheckSavedTickets(ctx context.Context, contestID int) (*interfaces.PortfolioCheck, error) {
	draw, err := s.getDraw(ctx, contestID)
	if err != nil {
		return nil, err
	}

	tickets, err := s.ticketRepo.List(ctx, "", 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	results, distribution := CheckTicketsAgainstDraw(tickets, draw)
	return &interfaces.PortfolioCheck{
		Draw:         draw,
		Results:      results,
		Distribution: distribution,
	}, nil
}

// AnalyzeContest returns statistics for one contest relative to the previous one
func (s *strategyService) AnalyzeContest(ctx context.Context, contestID int) (*interfaces.ContestAnalysis, error) {
	draw, err := s.getDraw(ctx, contestID)
	if err != nil {
		return nil, err
	}
	previous, err := s.getPrevious(ctx, draw.ContestID)
	if err != nil {
		return nil, err
	}

	return &interfaces.ContestAnalysis{
		Draw:     draw,
		Previous: previous,
		Stats:    AnalyzeDraw(draw, previous),
	}, nil
}

// Frequencies counts number appearances over the most recent window draws
func (s *strategyService) Frequencies(ctx context.Context, window int) ([]entities.NumberFrequency, error) {
	draws, err := s.drawRepo.GetRecent(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return NumberFrequencies(entities.History(draws), 0), nil
}

// SearchPattern returns every stored draw that contains all of numbers
func (s *strategyService) SearchPattern(ctx context.Context, numbers entities.NumberSet) (entities.History, error) {
	if err := ValidatePattern(numbers); err != nil {
		return nil, err
	}

	draws, err := s.drawRepo.GetRecent(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return DrawsContaining(entities.History(draws), numbers)
}

// AuditGroups measures every configured group in one contest (the latest when contestID is 0)
// and over the window draws leading up to it
func (s *strategyService) AuditGroups(ctx context.Context, contestID int, window int) (*interfaces.GroupAuditReport, error) {
	draw, err := s.getDraw(ctx, contestID)
	if err != nil {
		return nil, err
	}

	draws, err := s.drawRepo.GetUpTo(ctx, draw.ContestID, window)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	history := entities.History(draws)

	return &interfaces.GroupAuditReport{
		Draw:   draw,
		Window: len(history),
		Groups: AuditGroups(draw, history, window, s.generator.Config().Groups),
	}, nil
}

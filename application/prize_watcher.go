package application

import (
	"context"
	"fmt"

	"lotofacil/domain/entities"
	"lotofacil/events"

	log "github.com/sirupsen/logrus"
)

// PrizeWatcher checks the saved portfolio whenever a new draw is stored
type PrizeWatcher struct {
	checker PortfolioChecker
}

// NewPrizeWatcher creates a watcher; call Subscribe to attach it to a bus
func NewPrizeWatcher(checker PortfolioChecker) *PrizeWatcher {
	return &PrizeWatcher{checker: checker}
}

// Subscribe registers the watcher for draw events
func (w *PrizeWatcher) Subscribe(bus *events.Bus) {
	bus.Subscribe(events.EventTypeDrawStored, w.HandleDrawStored)
}

// HandleDrawStored logs every saved ticket that reached a prize tier in the stored contest
func (w *PrizeWatcher) HandleDrawStored(ctx context.Context, event events.Event) {
	drawEvent, ok := event.(events.DrawStoredEvent)
	if !ok {
		log.Errorf("PrizeWatcher: unexpected event type %T", event)
		return
	}

	if _, err := w.Winners(ctx, drawEvent.ContestID); err != nil {
		log.WithError(err).WithField("contest", drawEvent.ContestID).Error("Failed to check saved tickets")
	}
}

// Winners returns the saved tickets that reached a prize tier in contestID
func (w *PrizeWatcher) Winners(ctx context.Context, contestID int) ([]entities.TicketHit, error) {
	portfolio, err := w.checker.CheckSavedTickets(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("failed to check saved tickets: %w", err)
	}

	var winners []entities.TicketHit
	for _, result := range portfolio.Results {
		if !result.IsPrize() {
			continue
		}
		winners = append(winners, result)
		log.WithFields(log.Fields{
			"contest": contestID,
			"ticket":  result.Ticket.ID,
			"label":   result.Ticket.Label,
			"hits":    result.Hits,
		}).Info("Saved ticket reached a prize tier")
	}

	log.WithFields(log.Fields{
		"contest": contestID,
		"tickets": len(portfolio.Results),
		"prizes":  len(winners),
	}).Info("Checked saved tickets against new draw")

	return winners, nil
}

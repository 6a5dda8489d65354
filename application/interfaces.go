package application

import (
	"context"

	"lotofacil/domain/interfaces"
)

// PortfolioChecker scores saved tickets against a stored contest
type PortfolioChecker interface {
	CheckSavedTickets(ctx context.Context, contestID int) (*interfaces.PortfolioCheck, error)
}

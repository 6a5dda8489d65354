package services

import (
	"lotofacil/domain/entities"
)

// ScoreTicket counts, for every draw in history, how many of the ticket's numbers were drawn and
// buckets the counts by hits. Hits above DrawSize cannot occur for valid draws.
func ScoreTicket(numbers entities.NumberSet, history entities.History) entities.HitDistribution {
	var distribution entities.HitDistribution
	for _, draw := range history {
		distribution.Add(numbers.IntersectCount(draw.Numbers))
	}
	return distribution
}

// DrawHits returns the per-draw hit counts in history order
func DrawHits(numbers entities.NumberSet, history entities.History) []entities.DrawHit {
	hits := make([]entities.DrawHit, 0, len(history))
	for _, draw := range history {
		hits = append(hits, entities.DrawHit{
			ContestID: draw.ContestID,
			Hits:      numbers.IntersectCount(draw.Numbers),
		})
	}
	return hits
}

// CheckTicket compares a ticket with one draw. Grid holds each ticket number at its card cell
// (zero elsewhere) and the row/column counts tally ticket numbers, not hits. Repeats counts ticket
// numbers present in previous, which may be nil.
func CheckTicket(numbers entities.NumberSet, target, previous *entities.DrawResult) entities.TicketCheck {
	check := entities.TicketCheck{
		Hits: numbers.IntersectCount(target.Numbers),
	}
	if previous != nil {
		check.Repeats = numbers.IntersectCount(previous.Numbers)
	}

	for _, n := range numbers {
		if n < 1 || n > entities.UniverseSize {
			continue
		}
		row, col := entities.GridPosition(n)
		check.Grid[row][col] = n
		check.RowCounts[row]++
		check.ColCounts[col]++
	}
	return check
}

// CheckTicketsAgainstDraw scores a portfolio against one draw
func CheckTicketsAgainstDraw(tickets []*entities.Ticket, draw *entities.DrawResult) ([]entities.TicketHit, entities.HitDistribution) {
	var distribution entities.HitDistribution
	results := make([]entities.TicketHit, 0, len(tickets))
	for _, ticket := range tickets {
		hits := ticket.Hits(draw)
		distribution.Add(hits)
		results = append(results, entities.TicketHit{Ticket: ticket, Hits: hits})
	}
	return results, distribution
}

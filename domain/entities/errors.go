package entities

import "errors"

var (
	// ErrInsufficientHistory is returned by history-driven modes called without any draw results
	ErrInsufficientHistory = errors.New("insufficient history: at least one draw result is required")

	// ErrClosureTooLarge is returned when a closure would enumerate more combinations than the ceiling allows
	ErrClosureTooLarge = errors.New("closure too large")

	// ErrInfeasibleConstraints signals that fixed/excluded/size leave no valid completion
	ErrInfeasibleConstraints = errors.New("infeasible constraints")

	// ErrInvalidConstraints signals malformed constraints (out of range, overlapping fixed/excluded)
	ErrInvalidConstraints = errors.New("invalid constraints")

	// ErrInvalidDraw signals a draw result that does not hold exactly 15 distinct numbers in range
	ErrInvalidDraw = errors.New("invalid draw result")

	// ErrInvalidTicket signals a ticket outside the playable size or number range
	ErrInvalidTicket = errors.New("invalid ticket")

	// ErrInvalidQuantity signals a batch size outside the accepted bounds
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrUnknownMode signals an unsupported generation mode
	ErrUnknownMode = errors.New("unknown generation mode")

	// ErrInvalidPattern signals a pattern search with too few, too many or out-of-range numbers
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidGroups signals a malformed static group table
	ErrInvalidGroups = errors.New("invalid number groups")

	// ErrTicketNotFound and ErrDrawNotFound are returned by services when a lookup finds nothing
	ErrTicketNotFound = errors.New("ticket not found")
	ErrDrawNotFound   = errors.New("draw result not found")
)

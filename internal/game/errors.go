package game

import "errors"

var (
	// ErrIllegalMove is returned when the rules forbid a play or buy right now.
	// Game state is unchanged.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSelection marks a named card that is not in the zone an effect
	// reads. Effects recover from it by re-asking or doing nothing.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrExhaustedInput means a scripted decision source ran out of answers.
	// It indicates a driver or test defect, not a game outcome.
	ErrExhaustedInput = errors.New("decision source exhausted")

	// ErrSupplyEmpty is returned when buying from an empty pile. Gains from an
	// empty pile inside an effect are silent no-ops instead.
	ErrSupplyEmpty = errors.New("supply pile empty")

	// ErrRecursionLimit stops runaway duplication chains.
	ErrRecursionLimit = errors.New("effect recursion limit reached")

	// ErrUnknownCard is returned for names missing from the card registry.
	ErrUnknownCard = errors.New("unknown card")
)

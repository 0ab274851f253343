package fetch

import (
	"context"
	"errors"

	"garner/internal/domain"
)

// Class partitions low-level failures for the retry loop.
type Class int

const (
	// ClassTerminal failures surface immediately, without retry.
	ClassTerminal Class = iota
	// ClassRetryable failures may be re-attempted within the budget.
	ClassRetryable
	// ClassTimeout means the overall connect deadline elapsed.
	ClassTimeout
)

// Classify is the single place that decides which failures are
// transient. Only the network boundary's mid-negotiation miscellaneous
// close is retryable; a deadline hit is a timeout; everything else is
// terminal.
func Classify(err error) Class {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ClassTimeout
	case errors.Is(err, domain.ErrTransientNegotiation):
		return ClassRetryable
	default:
		return ClassTerminal
	}
}

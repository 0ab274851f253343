package fetch

import "time"

// retryBudget tracks the remaining attempts and the shared deadline of
// a single fetch. Created per fetch call, never persisted.
type retryBudget struct {
	remaining int
	deadline  time.Time
}

func newRetryBudget(attempts int, deadline time.Time) *retryBudget {
	return &retryBudget{remaining: attempts, deadline: deadline}
}

// spend consumes one attempt. It reports false when the budget is
// exhausted or the deadline leaves no room for another attempt.
func (b *retryBudget) spend(now time.Time) bool {
	if b.remaining <= 0 || !now.Before(b.deadline) {
		return false
	}
	b.remaining--
	return true
}

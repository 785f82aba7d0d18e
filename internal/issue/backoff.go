package issue

import "time"

// Backoff computes the wait inserted between retry attempts. The delay grows
// exponentially: Base after attempt 1, then 2*Base, 4*Base, and so on. It is
// consulted only between attempts, never before the first try.
type Backoff struct {
	Base time.Duration
}

// Delay returns the wait after the given failed attempt number (starting at 1).
func (b Backoff) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return b.Base << (attempt - 1)
}

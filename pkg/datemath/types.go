package datemath

import "time"

// Window is a bounded time range for relative phrases that describe a span
// rather than an instant ("tonight", "tomorrow morning").
type Window struct {
	Start time.Time
	End   time.Time
}
